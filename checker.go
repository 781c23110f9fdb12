package cssparser

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/lancerrevx/cssparser/internal/css"
)

// CheckConfig holds checking configuration
type CheckConfig struct {
	Paths        []string // Glob patterns of stylesheets (e.g., "web/styles/**/*.css")
	Verbose      bool
	UseGitignore bool // Skip files matched by ./.gitignore

	// golangci-style output configuration
	MaxIssues        int  // 0 = unlimited (default)
	MaxSameIssues    int  // 0 = unlimited (default)
	PrintIssuedLines bool // Show source lines with issues (default: true)
	PrintLinterName  bool // Show (parser) suffix (default: true)
	UseColors        bool // Enable color output (default: auto-detect)
}

// FileResult is the outcome of checking one stylesheet
type FileResult struct {
	Path  string
	Stats Stats
	Valid bool
}

// CheckResult contains the results of checking a set of stylesheets
type CheckResult struct {
	Issues []Issue
	Files  []FileResult

	FilesScanned   int
	FilesSkipped   int
	FilesFailed    int   // Files with at least one issue
	Stats          Stats // Totals over the files that parsed
	ErrorCount     int
	TruncatedCount int // Issues removed due to limits

	Warnings []string
}

// Check tokenizes and parses every stylesheet matched by config.Paths.
// A file that fails to parse yields an issue; it never aborts the batch.
func Check(config CheckConfig) (*CheckResult, error) {
	files, scanStats, err := expandGlobPatterns(config.Paths, config.UseGitignore)
	if err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	if config.Verbose {
		fmt.Fprintf(os.Stderr, "Found %d CSS files", scanStats.FilesScanned)
		if scanStats.FilesSkipped > 0 {
			fmt.Fprintf(os.Stderr, " (skipped %d vendored/ignored files)", scanStats.FilesSkipped)
		}
		fmt.Fprintln(os.Stderr)
	}

	result := &CheckResult{
		FilesScanned: scanStats.FilesScanned,
		FilesSkipped: scanStats.FilesSkipped,
	}
	if len(files) == 0 {
		result.Warnings = append(result.Warnings, "no stylesheets matched the configured paths")
	}

	for _, file := range files {
		if config.Verbose {
			fmt.Fprintf(os.Stderr, "Parsing %s\n", file)
		}

		data, err := os.ReadFile(file)
		if err != nil {
			result.addIssue(file, Issue{
				FromLinter: LinterIO,
				Text:       fmt.Sprintf("reading file: %v", err),
				Severity:   SeverityError,
				Pos:        IssuePos{Filename: file, Line: 1, Column: 1},
				Length:     1,
			})
			continue
		}

		stats, issue := CheckSource(file, string(data))
		if issue != nil {
			result.addIssue(file, *issue)
			continue
		}

		result.Files = append(result.Files, FileResult{Path: file, Stats: stats, Valid: true})
		result.Stats = result.Stats.Add(stats)
	}

	if config.MaxIssues > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	return result, nil
}

func (r *CheckResult) addIssue(file string, issue Issue) {
	r.Files = append(r.Files, FileResult{Path: file})
	r.Issues = append(r.Issues, issue)
	r.FilesFailed++
	if issue.Severity == SeverityError {
		r.ErrorCount++
	}
}

// CheckSource parses one stylesheet. It returns the element counts on
// success, or the issue describing the first error.
func CheckSource(filename, source string) (Stats, *Issue) {
	tl, elements, err := ParseString(source)
	if err != nil {
		issue := IssueFromError(filename, source, err)
		return Stats{Tokens: tl.Len()}, &issue
	}
	return css.Collect(tl, elements), nil
}

// IssueFromError positions a lexical or syntax error within source
func IssueFromError(filename, source string, err error) Issue {
	offset, length := 0, 1
	linter := LinterParser
	message := err.Error()

	var lexErr *css.LexicalError
	var synErr *css.SyntaxError
	switch {
	case errors.As(err, &lexErr):
		offset, length = lexErr.Offset, lexErr.Length
		linter = LinterLexer
		message = lexErr.Message
	case errors.As(err, &synErr):
		offset, length = synErr.Offset(), synErr.Length()
		message = synErr.Message
	}

	line, col := css.Position(source, offset)
	index := css.NewLineIndex(source)
	sourceLine := index.Line(line)

	return Issue{
		FromLinter:  linter,
		Text:        message,
		Severity:    SeverityError,
		SourceLines: []string{sourceLine},
		Pos: IssuePos{
			Filename: filename,
			Offset:   offset,
			Line:     line,
			Column:   col,
		},
		Length: spanOnLine(source, offset, length, index.LineStart(offset)+len(sourceLine)),
	}
}

// spanOnLine counts the characters of source[offset:offset+length] that lie
// before lineEnd, at least 1
func spanOnLine(source string, offset, length, lineEnd int) int {
	end := offset + length
	if end > lineEnd {
		end = lineEnd
	}
	if end > len(source) {
		end = len(source)
	}
	if end <= offset {
		return 1
	}
	return utf8.RuneCountInString(source[offset:end])
}

// limitIssues applies max-issues and max-same-issues
func limitIssues(issues []Issue, config CheckConfig) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssues > 0 && len(issues) > config.MaxIssues {
		issues = issues[:config.MaxIssues]
	}

	// Deduplication by message text
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	truncatedCount := originalCount - len(issues)
	return issues, truncatedCount
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
