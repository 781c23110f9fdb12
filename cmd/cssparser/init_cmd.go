package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssparser.yaml config file",
	Long:  `Create a .cssparser.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".cssparser.yaml"); err == nil && !force {
			return fmt.Errorf(".cssparser.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".cssparser.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .cssparser.yaml")
		return nil
	},
}

const defaultConfig = `# cssparser configuration
#
# Every key can also be set from the environment: CSSPARSER_ prefix, "_"
# between sections and "__" for a hyphen, e.g.
#   CSSPARSER_CHECK_MAX__ISSUES=10    -> check.max-issues
#   CSSPARSER_CHECK_OUTPUT__FORMAT=json -> check.output-format

# Shared settings
verbose: false
color: false

# Syntax checking
check:
  paths:
    - "**/*.css"
  output-format: issues    # issues | summary | full | json | markdown
  max-issues: 0            # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
  gitignore: true

# Token listing
tokens:
  format: text             # text | json
  kind: []                 # e.g. ["Identifier", "Number"]

# Element tree
tree:
  format: text             # text | json
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
