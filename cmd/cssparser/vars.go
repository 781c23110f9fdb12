package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lancerrevx/cssparser/internal/css"
)

var varsCmd = &cobra.Command{
	Use:   "vars FILE...",
	Short: "Print the custom property declarations of stylesheets",
	Long: `Parse each file and print every custom property declaration
("--name: value;") in source order, including those nested in at-rules.`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVars(cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
	},
}

func runVars(w, errOut io.Writer, args []string) error {
	sheets, err := loadStylesheets(errOut, args, false)
	if err != nil {
		return err
	}

	for _, sheet := range sheets {
		for _, decl := range css.CustomProperties(sheet.tokens, sheet.elements) {
			fmt.Fprintln(w, css.FormatDeclaration(sheet.tokens, decl))
		}
	}

	return nil
}
