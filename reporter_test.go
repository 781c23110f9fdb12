package cssparser

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	tests := []struct {
		name       string
		sourceLine string
		column     int
		width      int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  a {",
			column:     5,
			width:      1,
			want:       "    ^",
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\tcolor red;",
			column:     9,
			width:      3,
			want:       "\t\t      ^^^", // 2 tabs + 6 spaces
		},
		{
			name:       "start of line",
			sourceLine: "@abcdefg x;",
			column:     1,
			width:      1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			width:      2,
			want:       "^^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			width:      1,
			want:       "     ^", // Pads to line length only
		},
		{
			name:       "zero width still marks one character",
			sourceLine: "a",
			column:     2,
			width:      0,
			want:       " ^",
		},
		{
			name:       "multi-byte characters count once",
			sourceLine: "é { x",
			column:     3,
			width:      1,
			want:       "  ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildCaretIndicator(tt.sourceLine, tt.column, tt.width)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestReporterPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf, printLines: true, printLinterName: true}

	reporter.PrintIssues([]Issue{
		{
			FromLinter:  LinterParser,
			Text:        "unknown at-rule identifier",
			Severity:    SeverityError,
			SourceLines: []string{"\t@abcdefg x;"},
			Pos:         IssuePos{Filename: "b.css", Line: 4, Column: 3},
			Length:      7,
		},
		{
			FromLinter:  LinterLexer,
			Text:        "unmatched quote",
			Severity:    SeverityError,
			SourceLines: []string{"a { b: 'x }"},
			Pos:         IssuePos{Filename: "a.css", Line: 1, Column: 8},
			Length:      1,
		},
	})

	want := "a.css:1:8: unmatched quote (lexer)\n" +
		"\ta { b: 'x }\n" +
		"\t       ^\n" +
		"b.css:4:3: unknown at-rule identifier (parser)\n" +
		"\t\t@abcdefg x;\n" +
		"\t\t ^^^^^^^\n"
	require.Equal(t, want, buf.String())
}

func TestReporterWithoutSourceLines(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf}

	reporter.PrintIssues([]Issue{{
		FromLinter:  LinterParser,
		Text:        "unexpected token",
		SourceLines: []string{"}"},
		Pos:         IssuePos{Filename: "a.css", Line: 2, Column: 1},
	}})

	require.Equal(t, "a.css:2:1: unexpected token\n", buf.String())
}

func TestReporterPrintSummary(t *testing.T) {
	tests := []struct {
		name   string
		result CheckResult
		want   string
	}{
		{
			name:   "no issues",
			result: CheckResult{},
			want:   "\n0 issues:\n",
		},
		{
			name: "issues by linter",
			result: CheckResult{Issues: []Issue{
				{FromLinter: LinterParser},
				{FromLinter: LinterLexer},
				{FromLinter: LinterParser},
			}},
			want: "\n3 issues:\n* lexer: 1\n* parser: 2\n\nHint: Run with --output-format full to see statistics\n",
		},
		{
			name: "truncated",
			result: CheckResult{
				Issues:         []Issue{{FromLinter: LinterParser}},
				TruncatedCount: 4,
			},
			want: "\n1 issue (4 issues truncated):\n* parser: 1\n\nHint: Run with --output-format full to see statistics\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reporter := &Reporter{w: &buf}
			reporter.PrintSummary(tt.result)
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestVerboseReporter(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewVerboseReporter(&buf, false)

	result := CheckResult{
		FilesScanned: 2,
		FilesFailed:  1,
		Files: []FileResult{
			{Path: "good.css", Valid: true},
			{Path: "bad.css"},
		},
		Stats:    Stats{RuleSets: 3, Declarations: 5, CustomProperties: 1},
		Warnings: []string{"something to look at"},
	}
	reporter.PrintStatistics(result)
	reporter.PrintFailedFiles(result)
	reporter.PrintWarnings(result)

	out := buf.String()
	require.Contains(t, out, "Files Scanned:     2")
	require.Contains(t, out, "Rule Sets:         3")
	require.Contains(t, out, "Declarations:      5")
	require.Contains(t, out, "Custom Properties: 1")
	require.Contains(t, out, "• bad.css")
	require.NotContains(t, out, "• good.css")
	require.Contains(t, out, "• something to look at")
}
