package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lancerrevx/cssparser"
)

var checkCmd = &cobra.Command{
	Use:   "check [patterns...]",
	Short: "Check stylesheets for syntax errors",
	Long: `Tokenize and parse every stylesheet matched by the given glob patterns
(or the configured check.paths) and report lexical and syntax errors in
golangci-lint style. Exits 1 when any stylesheet fails.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd.OutOrStdout(), args)
	},
}

func init() {
	f := checkCmd.Flags()
	f.StringSlice("paths", []string{"**/*.css"}, "Glob patterns of stylesheets to check")
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (parser) suffix on issues")
	f.Bool("gitignore", true, "Skip files matched by .gitignore")
}

func runCheck(w io.Writer, args []string) error {
	config := buildCheckConfig()
	if len(args) > 0 {
		config.Paths = args
	}

	result, err := cssparser.Check(config)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "check.output-format", "")
	format := cssparser.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		cssparser.WriteOutput(w, result, format, config)
	}

	if result.ErrorCount > 0 {
		return errIssuesFound
	}
	return nil
}
