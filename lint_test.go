package stylec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lintFixture(t *testing.T, content string, opts LintOptions) *LintResult {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.style.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	result, err := LintFiles([]string{path}, opts, nil)
	require.NoError(t, err)
	return result
}

func issueTexts(result *LintResult) []string {
	texts := make([]string, len(result.Issues))
	for i, issue := range result.Issues {
		texts[i] = issue.Text
	}
	return texts
}

func TestLintCleanFile(t *testing.T) {
	result := lintFixture(t, `
module: app/button
rules:
  base:
    color: red
    display: flex
`, LintOptions{})

	assert.Empty(t, result.Issues)
	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 1, result.RulesChecked)
}

func TestLintDuplicateProperty(t *testing.T) {
	result := lintFixture(t, `
rules:
  base:
    color: red
    display: flex
    color: blue
`, LintOptions{})

	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, SeverityWarning, issue.Severity)
	assert.Contains(t, issue.Text, `duplicate declaration of "color"`)
	assert.Equal(t, 6, issue.Pos.Line)
	require.Len(t, issue.SourceLines, 1)
	assert.Contains(t, issue.SourceLines[0], "color: blue")
}

func TestLintCamelCaseDuplicate(t *testing.T) {
	// marginTop and margin-top name the same CSS property
	result := lintFixture(t, `
rules:
  base:
    marginTop: 4px
    margin-top: 8px
`, LintOptions{})

	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0].Text, `"margin-top"`)
}

func TestLintBarePseudo(t *testing.T) {
	result := lintFixture(t, `
rules:
  link:
    color:
      default: blue
      hover: red
`, LintOptions{})

	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, SeverityError, issue.Severity)
	assert.Contains(t, issue.Text, `did you mean ":hover"`)
}

func TestLintInvalidConditionKey(t *testing.T) {
	result := lintFixture(t, `
rules:
  link:
    color:
      dark: red
`, LintOptions{})

	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0].Text, `invalid condition key "dark"`)
	assert.Equal(t, 1, result.ErrorCount)
}

func TestLintRejectedShorthand(t *testing.T) {
	content := `
rules:
  base:
    background: red
    margin: 8px
`
	// margin expands unambiguously, so only background is rejected
	strict := lintFixture(t, content, LintOptions{Strategy: StrategyRejectShorthands})
	require.Len(t, strict.Issues, 1)
	assert.Contains(t, strict.Issues[0].Text, `"background"`)
	assert.Contains(t, strict.Issues[0].Text, "background-color")

	// default strategy allows shorthands
	loose := lintFixture(t, content, LintOptions{})
	assert.Empty(t, loose.Issues)
}

func TestLintUnknownConstRef(t *testing.T) {
	result := lintFixture(t, `
consts:
  radius: 4px
rules:
  base:
    borderRadius: $consts.radius
    padding: $consts.spacing
`, LintOptions{})

	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0].Text, `"$consts.spacing"`)
}

func TestLintUnknownParamRef(t *testing.T) {
	result := lintFixture(t, `
rules:
  sized:
    params: [w]
    decls:
      width: $param.w
      height: $param.h
`, LintOptions{})

	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0].Text, `param "h"`)
}

func TestLintConditionInKeyframes(t *testing.T) {
	result := lintFixture(t, `
keyframes:
  fade:
    from:
      opacity:
        ":hover": 0
`, LintOptions{})

	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0].Text, "not supported inside keyframes")
}

func TestLintUnknownSection(t *testing.T) {
	result := lintFixture(t, `
mixins:
  a: {}
`, LintOptions{})

	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0].Text, `unknown top-level section "mixins"`)
}

func TestLintInvalidYAMLReportsIssue(t *testing.T) {
	result := lintFixture(t, ":\n  - [", LintOptions{})

	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0].Text, "invalid YAML")
	assert.Equal(t, 1, result.ErrorCount)
}

func TestLintMaxSameIssues(t *testing.T) {
	result := lintFixture(t, `
rules:
  a:
    color: red
    color: blue
  b:
    color: red
    color: blue
  c:
    color: red
    color: blue
`, LintOptions{MaxSameIssues: 2})

	assert.Len(t, result.Issues, 2)
	assert.Equal(t, 1, result.TruncatedCount)
}

func TestLintNestedConditions(t *testing.T) {
	result := lintFixture(t, `
rules:
  cell:
    display:
      "@media (min-width: 600px)":
        focus: grid
`, LintOptions{})

	texts := issueTexts(result)
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], `did you mean ":focus"`)
}

func TestLintUnknownStrategy(t *testing.T) {
	_, err := LintFiles(nil, LintOptions{Strategy: "bogus"}, nil)
	require.Error(t, err)
}
