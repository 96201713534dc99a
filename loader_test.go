package stylec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const buttonDecl = `
module: app/button

consts:
  smallRadius: 4px

vars:
  colors:
    accent:
      value: "#0af"
      syntax: "<color>"
    text:
      value:
        default: black
        "@media (prefers-color-scheme: dark)": white

themes:
  dark:
    of: colors
    overrides:
      accent: "#50afff"

keyframes:
  pulse:
    from: {opacity: 1}
    to: {opacity: 0.4}

rules:
  base:
    borderRadius: $consts.smallRadius
    color: $vars.colors.accent
  hover:
    color:
      default: blue
      ":hover": red
  stack:
    fontFamily: [Helvetica, Arial, sans-serif]
  grid:
    display:
      firstThatWorks: [grid, flex, block]
  sized:
    params: [w]
    decls:
      width: $param.w
`

func TestParseDeclFile(t *testing.T) {
	decl, err := ParseDeclFile([]byte(buttonDecl), "button.style.yaml")
	require.NoError(t, err)

	assert.Equal(t, "app/button", decl.Module)
	require.Len(t, decl.Consts, 1)
	assert.Equal(t, "smallRadius", decl.Consts[0].Name)
	assert.Equal(t, "4px", decl.Consts[0].Value)

	require.Len(t, decl.VarGroups, 1)
	group := decl.VarGroups[0]
	assert.Equal(t, "colors", group.Name)
	require.Len(t, group.Vars, 2)
	assert.Equal(t, "<color>", group.Vars[0].Syntax)
	assert.Equal(t, "#0af", group.Vars[0].Value)
	text, ok := group.Vars[1].Value.(Cond)
	require.True(t, ok)
	require.Len(t, text, 2)
	assert.Equal(t, "default", text[0].Key)

	require.Len(t, decl.Themes, 1)
	assert.Equal(t, "colors", decl.Themes[0].Of)
	require.Len(t, decl.Themes[0].Overrides, 1)

	require.Len(t, decl.Keyframes, 1)
	require.Len(t, decl.Keyframes[0].Frames, 2)
	assert.Equal(t, "from", decl.Keyframes[0].Frames[0].Key)

	require.Len(t, decl.Rules, 5)
}

func TestParseDeclFileReferences(t *testing.T) {
	decl, err := ParseDeclFile([]byte(buttonDecl), "button.style.yaml")
	require.NoError(t, err)

	base := decl.Rules[0]
	require.Len(t, base.Decls, 2)
	// consts inline, vars rewrite to their hashed custom property
	assert.Equal(t, "4px", base.Decls[0].Value)
	assert.Equal(t, "var("+VarCSSName("app/button", "colors", "accent")+")", base.Decls[1].Value)
}

func TestParseDeclFileValueShapes(t *testing.T) {
	decl, err := ParseDeclFile([]byte(buttonDecl), "button.style.yaml")
	require.NoError(t, err)

	hover := decl.Rules[1]
	cond, ok := hover.Decls[0].Value.(Cond)
	require.True(t, ok)
	require.Len(t, cond, 2)
	assert.Equal(t, "default", cond[0].Key)
	assert.Equal(t, ":hover", cond[1].Key)

	stack := decl.Rules[2]
	fb, ok := stack.Decls[0].Value.(Fallbacks)
	require.True(t, ok)
	assert.Equal(t, Fallbacks{"Helvetica", "Arial", "sans-serif"}, fb)

	grid := decl.Rules[3]
	fo, ok := grid.Decls[0].Value.(FirstOf)
	require.True(t, ok)
	assert.Equal(t, FirstOf{"grid", "flex", "block"}, fo)
}

func TestParseDeclFileDynamicRule(t *testing.T) {
	decl, err := ParseDeclFile([]byte(buttonDecl), "button.style.yaml")
	require.NoError(t, err)

	sized := decl.Rules[4]
	assert.Equal(t, []string{"w"}, sized.Params)
	require.Len(t, sized.Decls, 1)
	assert.Equal(t, Param{Name: "w"}, sized.Decls[0].Value)
}

func TestParseDeclFileModuleFallback(t *testing.T) {
	decl, err := ParseDeclFile([]byte("rules:\n  base:\n    color: red\n"), "widgets/card.style.yaml")
	require.NoError(t, err)
	assert.Equal(t, "card", decl.Module)
}

func TestParseDeclFileNullValue(t *testing.T) {
	decl, err := ParseDeclFile([]byte("rules:\n  unset:\n    color: null\n"), "a.style.yaml")
	require.NoError(t, err)
	assert.Nil(t, decl.Rules[0].Decls[0].Value)
}

func TestParseDeclFileUnknownKey(t *testing.T) {
	_, err := ParseDeclFile([]byte("mixins:\n  a: {}\n"), "a.style.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"mixins"`)
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "button.style.yaml"), []byte(buttonDecl), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not yaml"), 0o644))

	decls, err := LoadFiles([]string{filepath.Join(dir, "**", "*.style.yaml")}, nil)
	require.NoError(t, err)
	require.Len(t, decls, 1)
	assert.Equal(t, "app/button", decls[0].Module)
}

func TestLoadFilesBadYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.style.yaml"), []byte(":\n  - ["), 0o644))

	_, err := LoadFiles([]string{filepath.Join(dir, "*.style.yaml")}, nil)
	require.Error(t, err)
}
