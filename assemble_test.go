package stylec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleSectionOrder(t *testing.T) {
	c := newTestCompiler(t)

	err := c.CompileModule(ModuleDecl{
		Module: "app/page",
		VarGroups: []VarGroupDecl{{
			Name: "colors",
			Vars: []VarDecl{{Name: "accent", Value: "blue", Syntax: "<color>"}},
		}},
		Themes: []ThemeDecl{{
			Name:      "dark",
			Of:        "colors",
			Overrides: []Declaration{{Property: "accent", Value: "navy"}},
		}},
		Keyframes: []KeyframesDecl{{
			Name: "fade",
			Frames: []KeyframeBlock{
				{Key: "from", Decls: []Declaration{{Property: "opacity", Value: 0}}},
			},
		}},
		PositionTry: []PositionTryDecl{{
			Name:  "flip",
			Decls: []Declaration{{Property: "top", Value: 0}},
		}},
		ViewTransitions: []ViewTransitionDecl{{
			Name:  "slide",
			Parts: []ViewTransitionPart{{Part: "old", Decls: []Declaration{{Property: "opacity", Value: 0}}}},
		}},
		Rules: []RuleDecl{{
			Name:  "base",
			Decls: []Declaration{{Property: "color", Value: "red"}},
		}},
	})
	require.NoError(t, err)

	css := AssembleCSS(c.Manifest())

	sections := []string{
		":root{",
		"@property ",
		".t" + Hash("app/page//dark"),
		".x12ugx35{color:red}",
		"@keyframes ",
		"@position-try ",
		"::view-transition-old",
	}
	last := -1
	for _, marker := range sections {
		idx := strings.Index(css, marker)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", marker)
		assert.Greater(t, idx, last, "section %q out of order", marker)
		last = idx
	}
}

func TestAssembleClassesSortByPriority(t *testing.T) {
	c := newTestCompiler(t)

	err := c.CompileModule(ModuleDecl{
		Module: "app/box",
		Rules: []RuleDecl{{
			Name: "base",
			Decls: []Declaration{
				{Property: "color", Value: Cond{
					{":default", "blue"},
					{":hover", "red"},
				}},
				{Property: "margin", Value: "8px"},
			},
		}},
	})
	require.NoError(t, err)

	css := AssembleCSS(c.Manifest())
	lines := strings.Split(strings.TrimRight(css, "\n"), "\n")
	require.Len(t, lines, 3)

	// shorthand (1000) before longhand default (3000) before :hover (3130)
	assert.Contains(t, lines[0], "margin:8px")
	assert.Contains(t, lines[1], "color:blue")
	assert.Contains(t, lines[2], ":hover{color:red}")
}

func TestAssembleDeduplicatesSharedClasses(t *testing.T) {
	c := newTestCompiler(t)

	err := c.CompileModule(ModuleDecl{
		Module: "app/a",
		Rules: []RuleDecl{
			{Name: "one", Decls: []Declaration{{Property: "color", Value: "red"}}},
			{Name: "two", Decls: []Declaration{{Property: "color", Value: "red"}}},
		},
	})
	require.NoError(t, err)

	css := AssembleCSS(c.Manifest())
	assert.Equal(t, 1, strings.Count(css, ".x12ugx35{color:red}"))
}

func TestAssembleThemeSelector(t *testing.T) {
	c := newTestCompiler(t)

	err := c.CompileModule(ModuleDecl{
		Module: "app/theme",
		VarGroups: []VarGroupDecl{{
			Name: "colors",
			Vars: []VarDecl{{Name: "accent", Value: "blue"}},
		}},
		Themes: []ThemeDecl{{
			Name:      "dark",
			Of:        "colors",
			Overrides: []Declaration{{Property: "accent", Value: "navy"}},
		}},
	})
	require.NoError(t, err)

	css := AssembleCSS(c.Manifest())
	cls := "t" + Hash("app/theme//dark")
	cssName := VarCSSName("app/theme", "colors", "accent")
	assert.Contains(t, css, "."+cls+",."+cls+":root{"+cssName+":navy}")
}

func TestAssembleConditionalVarNesting(t *testing.T) {
	c := newTestCompiler(t)

	err := c.CompileModule(ModuleDecl{
		Module: "app/theme",
		VarGroups: []VarGroupDecl{{
			Name: "colors",
			Vars: []VarDecl{{
				Name: "text",
				Value: Cond{
					{":default", "black"},
					{"@media (prefers-color-scheme: dark)", Cond{
						{"@supports (color: oklch(0 0 0))", "oklch(0.2 0 0)"},
					}},
				},
			}},
		}},
	})
	require.NoError(t, err)

	css := AssembleCSS(c.Manifest())
	cssName := VarCSSName("app/theme", "colors", "text")

	assert.Contains(t, css, ":root{"+cssName+":black}")
	// variable rules nest innermost declared at-rule outermost
	assert.Contains(t, css,
		"@supports (color: oklch(0 0 0)){@media (prefers-color-scheme: dark){:root{"+
			cssName+":oklch(0.2 0 0)}}}")
}
