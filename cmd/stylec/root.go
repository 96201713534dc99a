package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stylec",
	Short: "Atomic CSS compiler for style declaration files",
	Long: `Compile *.style.yaml declaration files into a single atomic stylesheet.
Every (property, condition, value) triple becomes one content-hashed class;
cascade conflicts resolve by numeric priority baked into the output order.`,
	// Default behavior: run compile when no subcommand is given.
	// loadConfig must run here because compileCmd's PreRunE is not
	// triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runCompile(compileCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".stylec.yaml", "Config file path")
	rootCmd.PersistentFlags().String("class-prefix", "x", "Prefix for generated class names")
	rootCmd.PersistentFlags().String("strategy", "keep-shorthands",
		"Shorthand strategy: keep-shorthands|expand-to-longhands|reject-shorthands")

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
