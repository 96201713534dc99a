package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .stylec.yaml config file",
	Long:  `Create a .stylec.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".stylec.yaml"); err == nil && !force {
			return fmt.Errorf(".stylec.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".stylec.yaml", []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .stylec.yaml")
		return nil
	},
}

const defaultConfig = `# stylec configuration
# Docs: https://github.com/yacobolo/stylec

# Shared settings
class-prefix: x
strategy: keep-shorthands  # keep-shorthands | expand-to-longhands | reject-shorthands
verbose: false

# Compilation settings
compile:
  include:
    - "**/*.style.yaml"
  out: dist/styles.css
  gen-go: ""               # path for a generated Go constants file ("" = skip)
  package: styles

# Linting settings
lint:
  strict: false
  output-format: issues    # issues | summary | full | json
  max-issues: 0            # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
