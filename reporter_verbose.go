package cssparser

import (
	"fmt"
	"io"
)

// VerboseReporter prints statistics about a check run
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs file and element counts
func (r *VerboseReporter) PrintStatistics(result CheckResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Stylesheet Statistics", r.useColors))
	fmt.Fprintln(r.w, "---------------------")

	fmt.Fprintf(r.w, "Files Scanned:     %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Files Skipped:     %d\n", result.FilesSkipped)
	fmt.Fprintf(r.w, "Files Failed:      %d\n", result.FilesFailed)
	fmt.Fprintf(r.w, "Tokens:            %d\n", result.Stats.Tokens)
	fmt.Fprintf(r.w, "At-rules:          %d\n", result.Stats.AtRules)
	fmt.Fprintf(r.w, "Rule Sets:         %d\n", result.Stats.RuleSets)
	fmt.Fprintf(r.w, "Selectors:         %d\n", result.Stats.Selectors)
	fmt.Fprintf(r.w, "Declarations:      %d\n", result.Stats.Declarations)
	fmt.Fprintf(r.w, "Custom Properties: %d\n", result.Stats.CustomProperties)
}

// PrintFailedFiles lists the files that did not parse
func (r *VerboseReporter) PrintFailedFiles(result CheckResult) {
	if result.FilesFailed == 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "All stylesheets parsed", r.useColors))
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleRed, "Failed Files", r.useColors))
	fmt.Fprintln(r.w, "------------")

	for _, file := range result.Files {
		if !file.Valid {
			fmt.Fprintf(r.w, "• %s\n", GetRelativePath(file.Path))
		}
	}
}

// PrintWarnings shows checker warnings
func (r *VerboseReporter) PrintWarnings(result CheckResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}
