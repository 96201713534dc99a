package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/stylec"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".stylec.yaml")
	configContent := `
class-prefix: app
strategy: expand-to-longhands
verbose: true

compile:
  out: build/app.css
  include:
    - "ui/**/*.style.yaml"

lint:
  strict: true
  max-issues: 25
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "app", k.String("class-prefix"))
	assert.Equal(t, "expand-to-longhands", k.String("strategy"))
	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "build/app.css", k.String("compile.out"))
	assert.True(t, k.Bool("lint.strict"))
	assert.Equal(t, 25, k.Int("lint.max-issues"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Pointing to a non-existent config should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.stylec.yaml"))

	opts := buildCompilerOptions()
	assert.Equal(t, "x", opts.ClassPrefix)
	assert.Equal(t, stylec.StrategyKeepShorthands, opts.Strategy)
	assert.Equal(t, []string{"**/*.style.yaml"}, includePatterns())
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".stylec.yaml")
	configContent := `
compile:
  out: from-file.css
lint:
  strict: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	t.Setenv("STYLEC_COMPILE_OUT", "from-env.css")
	t.Setenv("STYLEC_LINT_STRICT", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "from-env.css", k.String("compile.out"))
	assert.True(t, k.Bool("lint.strict"))
}

func TestBuildCompilerOptions_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".stylec.yaml")
	configContent := `
class-prefix: css
strategy: reject-shorthands
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))
	require.NoError(t, loadConfigFromPath(configPath))

	opts := buildCompilerOptions()
	assert.Equal(t, "css", opts.ClassPrefix)
	assert.Equal(t, stylec.StrategyRejectShorthands, opts.Strategy)
}

func TestBuildLintOptions_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".stylec.yaml")
	configContent := `
lint:
  max-issues: 10
  max-same-issues: 3
  print-lines: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))
	require.NoError(t, loadConfigFromPath(configPath))

	lintOpts := buildLintOptions()
	assert.Equal(t, 10, lintOpts.MaxIssues)
	assert.Equal(t, 3, lintOpts.MaxSameIssues)

	reportOpts := buildReportOptions()
	assert.False(t, reportOpts.PrintLines)
	assert.True(t, reportOpts.PrintLinterName)
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".stylec.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "class-prefix: x")
	assert.Contains(t, string(data), "compile:")
	assert.Contains(t, string(data), "lint:")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	require.NoError(t, os.WriteFile(".stylec.yaml", []byte("existing"), 0o644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	require.NoError(t, os.WriteFile(".stylec.yaml", []byte("existing"), 0o644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".stylec.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "class-prefix: x")
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()
	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}
