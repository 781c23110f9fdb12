package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lancerrevx/cssparser"
)

// stylesheet is one parsed input file
type stylesheet struct {
	path     string
	tokens   cssparser.TokenList
	elements []*cssparser.Element
}

// loadStylesheets reads and parses every file in paths. With tokenizeOnly
// the parser is not run. The first file that fails is reported to errOut
// as a check issue and stops the load.
func loadStylesheets(errOut io.Writer, paths []string, tokenizeOnly bool) ([]stylesheet, error) {
	sheets := make([]stylesheet, 0, len(paths))

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		source := string(data)

		var tl cssparser.TokenList
		var elements []*cssparser.Element
		if tokenizeOnly {
			tl, err = cssparser.Tokenize(source)
		} else {
			tl, elements, err = cssparser.ParseString(source)
		}
		if err != nil {
			reportIssue(errOut, cssparser.IssueFromError(path, source, err))
			return nil, errIssuesFound
		}

		sheets = append(sheets, stylesheet{path: path, tokens: tl, elements: elements})
	}

	return sheets, nil
}

func reportIssue(w io.Writer, issue cssparser.Issue) {
	if getBoolWithFallback("quiet", "quiet", false) {
		return
	}
	reporter := cssparser.NewReporter(w, buildCheckConfig())
	reporter.PrintIssues([]cssparser.Issue{issue})
}
