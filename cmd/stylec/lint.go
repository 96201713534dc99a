package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/stylec"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint style declaration files",
	Long: `Check declaration files for problems the compiler would reject or
silently paper over: duplicate properties, invalid condition keys,
rejected shorthands, and dangling $consts or $param references.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		log := newLogger(getBoolWithFallback("verbose", "verbose", false))
		defer func() { _ = log.Sync() }()

		result, err := stylec.LintFiles(includePatterns(), buildLintOptions(), log)
		if err != nil {
			return fmt.Errorf("lint failed: %w", err)
		}

		quiet := getBoolWithFallback("quiet", "quiet", false)
		if !quiet {
			format := stylec.DetermineOutputFormat(
				getStringWithFallback("output-format", "lint.output-format", ""), quiet)
			stylec.WriteOutput(os.Stdout, result, format, buildReportOptions())
		}

		// Soft gate: only errors fail the build unless --strict
		strict := getBoolWithFallback("strict", "lint.strict", false)
		if strict && len(result.Issues) > 0 {
			os.Exit(1)
		}
		if result.ErrorCount > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("include", nil, "Glob patterns for declaration files")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (stylelint) suffix on issues")
}
