package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lancerrevx/cssparser"
	"github.com/lancerrevx/cssparser/internal/css"
)

var treeCmd = &cobra.Command{
	Use:   "tree FILE...",
	Short: "Print the element tree of stylesheets",
	Long: `Parse each file and print its concrete syntax tree, one element per line,
indented by depth. Declarations print as "property: value;".`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTree(cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
	},
}

func init() {
	treeCmd.Flags().String("format", "text", "Output format: text|json")
}

func runTree(w, errOut io.Writer, args []string) error {
	sheets, err := loadStylesheets(errOut, args, false)
	if err != nil {
		return err
	}

	format := getStringWithFallback("format", "tree.format", "text")
	for _, sheet := range sheets {
		if format == "json" {
			err = cssparser.WriteTreeJSON(w, sheet.tokens, sheet.elements)
		} else {
			if len(sheets) > 1 {
				fmt.Fprintf(w, "%s:\n", sheet.path)
			}
			err = css.PrintTree(w, sheet.tokens, sheet.elements)
		}
		if err != nil {
			return fmt.Errorf("writing tree: %w", err)
		}
	}

	return nil
}
