package main

import (
	"errors"

	"github.com/spf13/cobra"
)

// errIssuesFound makes the process exit 1 without printing anything more
var errIssuesFound = errors.New("stylesheets have errors")

var rootCmd = &cobra.Command{
	Use:   "cssparser",
	Short: "CSS tokenizer, parser and syntax checker",
	Long: `Tokenize and parse CSS stylesheets into a concrete syntax tree.

Print the tokens, the element tree or the custom properties of a stylesheet,
or check whole directory trees of stylesheets for syntax errors.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".cssparser.yaml", "Config file path")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(varsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
