package stylec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategyFor(t *testing.T) {
	for _, name := range []string{StrategyKeepShorthands, StrategyExpandLonghands, StrategyRejectShorthands, ""} {
		s, err := StrategyFor(name)
		require.NoError(t, err)
		require.NotNil(t, s)
	}

	_, err := StrategyFor("bogus")
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Hint, "keep-shorthands")
}

func TestKeepShorthands(t *testing.T) {
	s, _ := StrategyFor(StrategyKeepShorthands)

	out, err := s.Expand("margin", "10px 20px")
	require.NoError(t, err)
	assert.Equal(t, []propValue{{"margin", "10px 20px"}}, out)
}

func TestExpandToLonghands(t *testing.T) {
	s, _ := StrategyFor(StrategyExpandLonghands)

	tests := []struct {
		name     string
		property string
		value    string
		want     []propValue
	}{
		{
			name:     "two value margin",
			property: "margin",
			value:    "10px 20px",
			want: []propValue{
				{"margin-top", "10px"},
				{"margin-right", "20px"},
				{"margin-bottom", "10px"},
				{"margin-left", "20px"},
			},
		},
		{
			name:     "one value padding",
			property: "padding",
			value:    "4px",
			want: []propValue{
				{"padding-top", "4px"},
				{"padding-right", "4px"},
				{"padding-bottom", "4px"},
				{"padding-left", "4px"},
			},
		},
		{
			name:     "three value inset",
			property: "inset",
			value:    "0 auto 10px",
			want: []propValue{
				{"top", "0"},
				{"right", "auto"},
				{"bottom", "10px"},
				{"left", "auto"},
			},
		},
		{
			name:     "important preserved",
			property: "margin",
			value:    "1px 2px !important",
			want: []propValue{
				{"margin-top", "1px !important"},
				{"margin-right", "2px !important"},
				{"margin-bottom", "1px !important"},
				{"margin-left", "2px !important"},
			},
		},
		{
			name:     "calc is opaque",
			property: "margin",
			value:    "calc(100% - 2rem) 10px",
			want: []propValue{
				{"margin-top", "calc(100% - 2rem)"},
				{"margin-right", "10px"},
				{"margin-bottom", "calc(100% - 2rem)"},
				{"margin-left", "10px"},
			},
		},
		{
			name:     "single var fills all sides",
			property: "padding",
			value:    "var(--pad)",
			want: []propValue{
				{"padding-top", "var(--pad)"},
				{"padding-right", "var(--pad)"},
				{"padding-bottom", "var(--pad)"},
				{"padding-left", "var(--pad)"},
			},
		},
		{
			name:     "margin-block start end",
			property: "margin-block",
			value:    "1rem 2rem",
			want: []propValue{
				{"margin-block-start", "1rem"},
				{"margin-block-end", "2rem"},
			},
		},
		{
			name:     "gap row column",
			property: "gap",
			value:    "8px 16px",
			want: []propValue{
				{"row-gap", "8px"},
				{"column-gap", "16px"},
			},
		},
		{
			name:     "overflow single value",
			property: "overflow",
			value:    "hidden",
			want: []propValue{
				{"overflow-x", "hidden"},
				{"overflow-y", "hidden"},
			},
		},
		{
			name:     "unregistered passes through",
			property: "transition",
			value:    "opacity 0.2s ease",
			want:     []propValue{{"transition", "opacity 0.2s ease"}},
		},
		{
			name:     "custom property passes through",
			property: "--spacing",
			value:    "4px 8px",
			want:     []propValue{{"--spacing", "4px 8px"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := s.Expand(tt.property, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestExpandBorderRadius(t *testing.T) {
	s, _ := StrategyFor(StrategyExpandLonghands)

	t.Run("plain two value", func(t *testing.T) {
		out, err := s.Expand("border-radius", "4px 8px")
		require.NoError(t, err)
		assert.Equal(t, []propValue{
			{"border-top-left-radius", "4px"},
			{"border-top-right-radius", "8px"},
			{"border-bottom-right-radius", "4px"},
			{"border-bottom-left-radius", "8px"},
		}, out)
	})

	t.Run("slash syntax", func(t *testing.T) {
		out, err := s.Expand("border-radius", "10px / 20px")
		require.NoError(t, err)
		assert.Equal(t, []propValue{
			{"border-top-left-radius", "10px 20px"},
			{"border-top-right-radius", "10px 20px"},
			{"border-bottom-right-radius", "10px 20px"},
			{"border-bottom-left-radius", "10px 20px"},
		}, out)
	})

	t.Run("slash with equal values collapses", func(t *testing.T) {
		out, err := s.Expand("border-radius", "10px / 10px")
		require.NoError(t, err)
		assert.Equal(t, "10px", out[0].value)
	})
}

func TestExpandListStyle(t *testing.T) {
	s, _ := StrategyFor(StrategyExpandLonghands)

	t.Run("all three any order", func(t *testing.T) {
		out, err := s.Expand("list-style", "inside url(sq.png) square")
		require.NoError(t, err)
		assert.Equal(t, []propValue{
			{"list-style-type", "square"},
			{"list-style-position", "inside"},
			{"list-style-image", "url(sq.png)"},
		}, out)
	})

	t.Run("double none", func(t *testing.T) {
		out, err := s.Expand("list-style", "none none")
		require.NoError(t, err)
		assert.Equal(t, []propValue{
			{"list-style-type", "none"},
			{"list-style-image", "none"},
		}, out)
	})
}

func TestExpandCond(t *testing.T) {
	s, _ := StrategyFor(StrategyExpandLonghands)

	out, err := s.ExpandCond("margin-block", Cond{
		{":default", "1rem 2rem"},
		{":hover", "3rem"},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "margin-block-start", out[0].property)
	assert.Equal(t, Cond{{":default", "1rem"}, {":hover", "3rem"}}, out[0].cond)
	assert.Equal(t, "margin-block-end", out[1].property)
	assert.Equal(t, Cond{{":default", "2rem"}, {":hover", "3rem"}}, out[1].cond)
}

func TestRejectShorthands(t *testing.T) {
	s, _ := StrategyFor(StrategyRejectShorthands)

	t.Run("rejected with hint", func(t *testing.T) {
		_, err := s.Expand("transition", "all 0.2s")
		require.Error(t, err)
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Hint, "transition-property")
		assert.Contains(t, cfgErr.Hint, "transition-duration")
	})

	t.Run("border rejected", func(t *testing.T) {
		_, err := s.Expand("border", "1px solid red")
		require.Error(t, err)
	})

	t.Run("box shorthands allowed", func(t *testing.T) {
		for _, prop := range []string{"margin", "padding", "gap", "inset", "flex", "border-radius"} {
			out, err := s.Expand(prop, "1px")
			require.NoError(t, err, prop)
			assert.Equal(t, []propValue{{prop, "1px"}}, out)
		}
	})
}
