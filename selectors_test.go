package stylec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkers(t *testing.T) {
	assert.Equal(t, "x-default-marker", DefaultMarker("x").Class)
	assert.Equal(t, "app-default-marker", DefaultMarker("app").Class)

	a := DefineMarker("x", "sidebar")
	b := DefineMarker("x", "sidebar")
	other := DefineMarker("x", "header")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, other)
	assert.NotContains(t, a.Class, defaultMarkerSuffix)
}

func TestWhenBuilders(t *testing.T) {
	m := Marker{Class: "xm"}

	tests := []struct {
		name string
		fn   func(string, Marker) (string, error)
		want string
	}{
		{"ancestor", WhenAncestor, ":where(.xm:hover *)"},
		{"descendant", WhenDescendant, ":where(:has(.xm:hover))"},
		{"siblingBefore", WhenSiblingBefore, ":where(.xm:hover ~ *)"},
		{"siblingAfter", WhenSiblingAfter, ":where(:has(~ .xm:hover))"},
		{"anySibling", WhenAnySibling, ":where(.xm:hover ~ *, :has(~ .xm:hover))"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(":hover", m)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWhenRejectsBarePseudo(t *testing.T) {
	_, err := WhenAncestor("hover", Marker{Class: "xm"})
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Hint, `":hover"`)
}

func TestWhenRejectsPseudoElement(t *testing.T) {
	_, err := WhenDescendant("::before", Marker{Class: "xm"})
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Msg, "pseudo-elements are not supported")
	assert.Empty(t, cfgErr.Hint)
}

func TestWhenKeyCompilesAsCondition(t *testing.T) {
	marker := DefineMarker("x", "card")
	when, err := WhenAncestor(":hover", marker)
	require.NoError(t, err)

	c := newTestCompiler(t)
	require.NoError(t, c.CompileModule(ModuleDecl{
		Module: "app/card",
		Rules: []RuleDecl{{
			Name: "lift",
			Decls: []Declaration{{
				Property: "opacity",
				Value:    Cond{{when, "0.8"}},
			}},
		}},
	}))

	rule := c.Manifest().Classes["app/card.lift"]
	require.Len(t, rule.Props, 1)
	require.Len(t, rule.Props[0].Classes, 1)

	meta := rule.Props[0].Classes[0]
	assert.Contains(t, meta.LTR, when+"{opacity:0.8}")
	assert.Equal(t, priorityLonghand+priorityPseudoClassDefault, meta.Priority)
}
