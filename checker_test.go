package cssparser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSource(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		linter     string
		message    string
		line       int
		column     int
		length     int
		sourceLine string
	}{
		{
			name:       "unterminated block",
			source:     "a {\n  color: red;\n",
			linter:     LinterParser,
			message:    "missing '}' at the end of declaration block",
			line:       1,
			column:     3,
			length:     1,
			sourceLine: "a {",
		},
		{
			name:       "unterminated string",
			source:     "a {\n  b: \"x\n}",
			linter:     LinterLexer,
			message:    "unmatched quote",
			line:       2,
			column:     6,
			length:     1,
			sourceLine: "  b: \"x",
		},
		{
			name:       "unknown at-rule",
			source:     "a {}\n@abcdefg x;",
			linter:     LinterParser,
			message:    "unknown at-rule identifier",
			line:       2,
			column:     2,
			length:     7,
			sourceLine: "@abcdefg x;",
		},
		{
			name:       "line separator inside a comment",
			source:     "/* a\u2028b */\n}",
			linter:     LinterParser,
			message:    "unexpected token",
			line:       3,
			column:     1,
			length:     1,
			sourceLine: "}",
		},
		{
			name:       "error at end of input",
			source:     "@media screen",
			linter:     LinterParser,
			message:    "block must start with '{'",
			line:       1,
			column:     14,
			length:     1,
			sourceLine: "@media screen",
		},
		{
			name:       "comment span is cut at the line end",
			source:     "a {} /* open\ncomment",
			linter:     LinterLexer,
			message:    "unmatched comment start",
			line:       1,
			column:     6,
			length:     2,
			sourceLine: "a {} /* open",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, issue := CheckSource("test.css", tt.source)
			require.NotNil(t, issue)

			assert.Equal(t, tt.linter, issue.FromLinter)
			assert.Equal(t, tt.message, issue.Text)
			assert.Equal(t, SeverityError, issue.Severity)
			assert.Equal(t, "test.css", issue.Pos.Filename)
			assert.Equal(t, tt.line, issue.Pos.Line)
			assert.Equal(t, tt.column, issue.Pos.Column)
			assert.Equal(t, tt.length, issue.Length)
			assert.Equal(t, []string{tt.sourceLine}, issue.SourceLines)
		})
	}
}

func TestCheckSourceValid(t *testing.T) {
	stats, issue := CheckSource("ok.css", ":root { --a: 1px } @media print { a { b: var(--a) } }")
	require.Nil(t, issue)

	assert.Equal(t, 2, stats.RuleSets)
	assert.Equal(t, 1, stats.AtRules)
	assert.Equal(t, 2, stats.Declarations)
	assert.Equal(t, 1, stats.CustomProperties)
	assert.Positive(t, stats.Tokens)
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "good.css"), "a { color: red }\n.b, .c { --x: 1 }\n")
	writeFile(t, filepath.Join(dir, "nested", "bad.css"), "a {\n  color: red;\n")
	writeFile(t, filepath.Join(dir, "nested", "also-bad.css"), "} a {}")

	result, err := Check(CheckConfig{
		Paths: []string{filepath.Join(dir, "**", "*.css")},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.FilesScanned)
	assert.Equal(t, 2, result.FilesFailed)
	assert.Equal(t, 2, result.ErrorCount)
	require.Len(t, result.Issues, 2)
	require.Len(t, result.Files, 3)

	assert.Equal(t, 2, result.Stats.RuleSets)
	assert.Equal(t, 2, result.Stats.Declarations)
	assert.Equal(t, 1, result.Stats.CustomProperties)
	assert.Empty(t, result.Warnings)
}

func TestCheckNoFiles(t *testing.T) {
	result, err := Check(CheckConfig{
		Paths: []string{filepath.Join(t.TempDir(), "*.css")},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.FilesScanned)
	assert.Len(t, result.Warnings, 1)
}

func TestCheckLimitsIssues(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.css", "b.css", "c.css"} {
		writeFile(t, filepath.Join(dir, name), "a {")
	}
	writeFile(t, filepath.Join(dir, "d.css"), "}")

	result, err := Check(CheckConfig{
		Paths:         []string{filepath.Join(dir, "*.css")},
		MaxSameIssues: 1,
	})
	require.NoError(t, err)

	require.Len(t, result.Issues, 2)
	assert.Equal(t, 2, result.TruncatedCount)
	assert.Equal(t, 4, result.FilesFailed)
}

func TestLimitIssues(t *testing.T) {
	issues := []Issue{
		{Text: "a"}, {Text: "a"}, {Text: "b"}, {Text: "a"}, {Text: "c"},
	}

	tests := []struct {
		name          string
		config        CheckConfig
		wantTexts     []string
		wantTruncated int
	}{
		{
			name:          "max issues",
			config:        CheckConfig{MaxIssues: 2},
			wantTexts:     []string{"a", "a"},
			wantTruncated: 3,
		},
		{
			name:          "max same issues",
			config:        CheckConfig{MaxSameIssues: 1},
			wantTexts:     []string{"a", "b", "c"},
			wantTruncated: 2,
		},
		{
			name:          "both",
			config:        CheckConfig{MaxIssues: 3, MaxSameIssues: 1},
			wantTexts:     []string{"a", "b"},
			wantTruncated: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := limitIssues(issues, tt.config)
			texts := make([]string, len(got))
			for i, issue := range got {
				texts[i] = issue.Text
			}
			assert.Equal(t, tt.wantTexts, texts)
			assert.Equal(t, tt.wantTruncated, truncated)
		})
	}
}

func TestParseString(t *testing.T) {
	tl, elements, err := ParseString("a { b: c }")
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, "a { b: c }", elements[0].Text(tl))

	tl, elements, err = ParseString("a { b: c")
	require.Error(t, err)
	assert.Nil(t, elements)
	assert.Positive(t, tl.Len())

	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	line, col := Position(tl.Source, synErr.Offset())
	assert.Equal(t, 1, line)
	assert.Equal(t, 3, col)

	tl, _, err = ParseString("a { b: 'c }")
	var lexErr *LexicalError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, "a { b: 'c }", tl.Source)
	assert.Zero(t, tl.Len())
}
