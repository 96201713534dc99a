package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/stylec"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".stylec.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags win (only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a cobra
// command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// STYLEC_COMPILE_OUT -> compile.out
	// STYLEC_LINT_STRICT -> lint.strict
	// STYLEC_VERBOSE -> verbose
	if err := k.Load(env.Provider("STYLEC_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "STYLEC_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildCompilerOptions constructs the library's Options from koanf state.
func buildCompilerOptions() stylec.Options {
	return stylec.Options{
		ClassPrefix: getStringWithFallback("class-prefix", "class-prefix", "x"),
		Strategy:    getStringWithFallback("strategy", "strategy", stylec.StrategyKeepShorthands),
	}
}

// buildLintOptions constructs the library's LintOptions from koanf state.
func buildLintOptions() stylec.LintOptions {
	return stylec.LintOptions{
		Strategy:      getStringWithFallback("strategy", "strategy", stylec.StrategyKeepShorthands),
		MaxIssues:     getIntWithFallback("max-issues", "lint.max-issues", 0),
		MaxSameIssues: getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
	}
}

// buildReportOptions constructs the lint reporter options from koanf state.
func buildReportOptions() stylec.ReportOptions {
	return stylec.ReportOptions{
		PrintLines:      getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName: getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:       getBoolWithFallback("color", "color", false),
	}
}

// includePatterns resolves the declaration include globs: flag key first,
// then config key, then the default.
func includePatterns() []string {
	if includes := k.Strings("include"); len(includes) > 0 {
		return includes
	}
	if includes := k.Strings("compile.include"); len(includes) > 0 {
		return includes
	}
	return []string{"**/*.style.yaml"}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
