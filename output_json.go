package cssparser

import (
	"encoding/json"
	"io"
	"time"

	"github.com/lancerrevx/cssparser/internal/css"
)

// JSONOutput represents the structured JSON export schema of a check run
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Stats     JSONStats   `json:"stats"`
	Issues    []JSONIssue `json:"issues"`
	Warnings  []string    `json:"warnings,omitempty"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	FilesScanned int `json:"files_scanned"`
	FilesFailed  int `json:"files_failed"`
	Truncated    int `json:"truncated"`
}

// JSONStats contains element counts over the files that parsed
type JSONStats struct {
	Tokens           int `json:"tokens"`
	AtRules          int `json:"at_rules"`
	RuleSets         int `json:"rule_sets"`
	Selectors        int `json:"selectors"`
	Declarations     int `json:"declarations"`
	CustomProperties int `json:"custom_properties"`
}

// JSONIssue represents a single issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Offset   int    `json:"offset"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// WriteJSON writes the check result as JSON
func WriteJSON(w io.Writer, result *CheckResult) error {
	return encodeJSON(w, buildJSONOutput(result))
}

func encodeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// buildJSONOutput converts CheckResult to JSONOutput
func buildJSONOutput(result *CheckResult) JSONOutput {
	var errors, warnings int
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Offset:   issue.Pos.Offset,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
			FilesScanned: result.FilesScanned,
			FilesFailed:  result.FilesFailed,
			Truncated:    result.TruncatedCount,
		},
		Stats: JSONStats{
			Tokens:           result.Stats.Tokens,
			AtRules:          result.Stats.AtRules,
			RuleSets:         result.Stats.RuleSets,
			Selectors:        result.Stats.Selectors,
			Declarations:     result.Stats.Declarations,
			CustomProperties: result.Stats.CustomProperties,
		},
		Issues:   jsonIssues,
		Warnings: result.Warnings,
	}
}

// JSONToken is one token in a token listing
type JSONToken struct {
	Kind   string   `json:"kind"`
	Text   string   `json:"text"`
	Offset int      `json:"offset"`
	Line   int      `json:"line"`
	Column int      `json:"column"`
	Number *float64 `json:"number,omitempty"` // decoded value of number tokens
}

// BuildJSONTokens converts tokens to their JSON form. A nil filter keeps
// every token.
func BuildJSONTokens(tl TokenList, filter func(Token) bool) []JSONToken {
	index := css.NewLineIndex(tl.Source)
	tokens := make([]JSONToken, 0, tl.Len())

	for _, tok := range tl.Tokens {
		if filter != nil && !filter(tok) {
			continue
		}

		line, col := index.Position(tok.Offset)
		jt := JSONToken{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			Offset: tok.Offset,
			Line:   line,
			Column: col,
		}
		if f, ok := tok.Number(); ok {
			jt.Number = &f
		}
		tokens = append(tokens, jt)
	}

	return tokens
}

// WriteTokensJSON writes a token listing as JSON
func WriteTokensJSON(w io.Writer, tl TokenList, filter func(Token) bool) error {
	return encodeJSON(w, BuildJSONTokens(tl, filter))
}

// JSONElement is one node of a syntax tree in JSON form
type JSONElement struct {
	Kind     string        `json:"kind"`
	Text     string        `json:"text"`
	Start    int           `json:"start"` // byte offset of the first token
	End      int           `json:"end"`   // byte offset just past the last token
	Children []JSONElement `json:"children,omitempty"`
}

// BuildJSONTree converts a syntax tree to its JSON form
func BuildJSONTree(tl TokenList, elements []*Element) []JSONElement {
	nodes := make([]JSONElement, len(elements))
	for i, el := range elements {
		nodes[i] = JSONElement{
			Kind:     el.Kind.String(),
			Text:     el.Text(tl),
			Start:    tl.At(el.Start).Offset,
			End:      tl.At(el.End).End(),
			Children: BuildJSONTree(tl, el.Children),
		}
	}
	return nodes
}

// WriteTreeJSON writes a syntax tree as JSON
func WriteTreeJSON(w io.Writer, tl TokenList, elements []*Element) error {
	return encodeJSON(w, BuildJSONTree(tl, elements))
}
