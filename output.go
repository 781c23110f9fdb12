package cssparser

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// OutputFormat represents the checker output format
type OutputFormat string

const (
	// OutputIssues shows only errors in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues and statistics
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format
	OutputJSON OutputFormat = "json"
	// OutputMarkdown generates a Markdown report
	OutputMarkdown OutputFormat = "markdown"
)

// DetermineOutputFormat selects the output format from flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// quiet means exit code only; the format is irrelevant
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	}

	return DetermineDefaultOutputFormat()
}

// DetermineDefaultOutputFormat returns the default output format.
// Issues only, like golangci-lint.
func DetermineDefaultOutputFormat() OutputFormat {
	return OutputIssues
}

// WriteOutput writes the check result in the specified format
func WriteOutput(w io.Writer, result *CheckResult, format OutputFormat, config CheckConfig) {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

	case OutputSummary:
		verboseReporter := NewVerboseReporter(w, shouldUseColors(config))
		verboseReporter.PrintStatistics(*result)
		verboseReporter.PrintFailedFiles(*result)
		verboseReporter.PrintWarnings(*result)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

		verboseReporter := NewVerboseReporter(w, reporter.UseColors())
		verboseReporter.PrintStatistics(*result)
		verboseReporter.PrintFailedFiles(*result)
		verboseReporter.PrintWarnings(*result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}

	case OutputMarkdown:
		if err := WriteMarkdown(w, result); err != nil {
			os.Stderr.WriteString("Error writing Markdown: " + err.Error() + "\n")
		}
	}
}

// WriteMarkdown writes the check result as a Markdown report
func WriteMarkdown(w io.Writer, result *CheckResult) error {
	var sb strings.Builder

	sb.WriteString("# Stylesheet Check Report\n\n")

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Metric | Count |\n")
	sb.WriteString("|---|---|\n")
	fmt.Fprintf(&sb, "| Files scanned | %d |\n", result.FilesScanned)
	fmt.Fprintf(&sb, "| Files failed | %d |\n", result.FilesFailed)
	fmt.Fprintf(&sb, "| Issues | %d |\n", len(result.Issues))
	fmt.Fprintf(&sb, "| At-rules | %d |\n", result.Stats.AtRules)
	fmt.Fprintf(&sb, "| Rule sets | %d |\n", result.Stats.RuleSets)
	fmt.Fprintf(&sb, "| Declarations | %d |\n", result.Stats.Declarations)
	fmt.Fprintf(&sb, "| Custom properties | %d |\n", result.Stats.CustomProperties)

	if len(result.Issues) > 0 {
		sb.WriteString("\n## Issues\n\n")
		for _, issue := range result.Issues {
			fmt.Fprintf(&sb, "- `%s:%d:%d` %s (%s)\n",
				issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column, issue.Text, issue.FromLinter)
		}
	}

	if len(result.Warnings) > 0 {
		sb.WriteString("\n## Warnings\n\n")
		for _, warning := range result.Warnings {
			fmt.Fprintf(&sb, "- %s\n", warning)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
