package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lancerrevx/cssparser"
	"github.com/lancerrevx/cssparser/internal/css"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE...",
	Short: "Print the tokens of stylesheets",
	Long: `Tokenize each file and print one token per line as
file:line:col<TAB>"Kind"<TAB>"text". Use --kind to keep only some token
kinds, e.g. --kind Identifier --kind "Quoted string".`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTokens(cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
	},
}

func init() {
	f := tokensCmd.Flags()
	f.StringSlice("kind", nil, "Only print tokens of these kinds")
	f.String("format", "text", "Output format: text|json")
}

func runTokens(w, errOut io.Writer, args []string) error {
	filter, err := kindFilter(getStringsWithFallback("kind", "tokens.kind", nil))
	if err != nil {
		return err
	}

	sheets, err := loadStylesheets(errOut, args, true)
	if err != nil {
		return err
	}

	format := getStringWithFallback("format", "tokens.format", "text")
	for _, sheet := range sheets {
		if format == "json" {
			if err := cssparser.WriteTokensJSON(w, sheet.tokens, filter); err != nil {
				return fmt.Errorf("writing tokens: %w", err)
			}
			continue
		}

		for _, tok := range cssparser.BuildJSONTokens(sheet.tokens, filter) {
			fmt.Fprintf(w, "%s:%d:%d\t%q\t%q\n", sheet.path, tok.Line, tok.Column, tok.Kind, tok.Text)
		}
	}

	return nil
}

// kindFilter builds a token filter from kind names. No names keeps every token.
func kindFilter(names []string) (func(cssparser.Token) bool, error) {
	if len(names) == 0 {
		return nil, nil
	}

	kinds := make(map[cssparser.TokenKind]bool, len(names))
	for _, name := range names {
		kind, ok := css.ParseTokenKind(name)
		if !ok {
			return nil, fmt.Errorf("unknown token kind %q", name)
		}
		kinds[kind] = true
	}

	return func(tok cssparser.Token) bool {
		return kinds[tok.Kind]
	}, nil
}
