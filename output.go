package stylec

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// OutputFormat selects how lint results are written.
type OutputFormat int

// Output formats, golangci-lint flavored: issues only by default.
const (
	OutputIssues OutputFormat = iota
	OutputSummary
	OutputFull
	OutputJSON
)

// DetermineOutputFormat selects the output format from the flag value.
// Unrecognized values fall back to the issues-only default.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputIssues
	}
	switch formatFlag {
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	default:
		return OutputIssues
	}
}

// Terminal styles for lint output. Lipgloss degrades colors automatically
// based on terminal capabilities.
var (
	styleLocation = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	styleError    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	styleWarning  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	styleHint     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// ReportOptions configures the textual lint reporter.
type ReportOptions struct {
	PrintLines      bool // Show source lines with issues
	PrintLinterName bool // Show (stylelint) suffix
	UseColors       bool // Force color output
}

// Reporter writes lint results as text.
type Reporter struct {
	w    io.Writer
	opts ReportOptions
}

// NewReporter creates a reporter. Colors follow opts.UseColors, the
// FORCE_COLOR and GITHUB_ACTIONS environment variables, or TTY detection.
func NewReporter(w io.Writer, opts ReportOptions) *Reporter {
	opts.UseColors = opts.UseColors || detectColors()
	return &Reporter{w: w, opts: opts}
}

func detectColors() bool {
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

func (r *Reporter) render(style lipgloss.Style, text string) string {
	if !r.opts.UseColors {
		return text
	}
	return style.Render(text)
}

// PrintIssues outputs issues sorted by file, line and column.
func (r *Reporter) PrintIssues(issues []Issue) {
	sorted := make([]Issue, len(issues))
	copy(sorted, issues)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Pos.Filename != sorted[j].Pos.Filename {
			return sorted[i].Pos.Filename < sorted[j].Pos.Filename
		}
		if sorted[i].Pos.Line != sorted[j].Pos.Line {
			return sorted[i].Pos.Line < sorted[j].Pos.Line
		}
		return sorted[i].Pos.Column < sorted[j].Pos.Column
	})

	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue formats one issue as "file:line:col: message (linter)".
func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.opts.PrintLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		r.render(styleLocation, location),
		issue.Text,
		r.render(styleHint, linterSuffix))

	if r.opts.PrintLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", r.render(styleWarning, caret))
	}
}

// buildCaretIndicator aligns a "^" under the issue column, matching any
// tabs in the source line so the caret lines up in the terminal.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}
	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}
	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary.
func (r *Reporter) PrintSummary(result *LintResult) {
	total := len(result.Issues)

	fmt.Fprintln(r.w, "")
	switch {
	case result.ErrorCount > 0 && result.WarningCount > 0:
		fmt.Fprintf(r.w, "%s (%s, %s)\n",
			pluralizeCount(total, "issue", "issues"),
			pluralizeCount(result.ErrorCount, "error", "errors"),
			pluralizeCount(result.WarningCount, "warning", "warnings"))
	case result.TruncatedCount > 0:
		fmt.Fprintf(r.w, "%s (%s truncated)\n",
			pluralizeCount(total, "issue", "issues"),
			pluralizeCount(result.TruncatedCount, "issue", "issues"))
	default:
		fmt.Fprintf(r.w, "%s\n", pluralizeCount(total, "issue", "issues"))
	}

	if total > 0 {
		fmt.Fprintln(r.w, r.render(styleHint, "Hint: run with --output-format full for statistics"))
	}
}

// PrintStatistics outputs scan statistics for the summary and full formats.
func (r *Reporter) PrintStatistics(result *LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, r.render(styleLocation, "STATISTICS"))
	fmt.Fprintf(r.w, "Files scanned:  %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Rules checked:  %d\n", result.RulesChecked)
	if result.ErrorCount > 0 {
		fmt.Fprintf(r.w, "Errors:         %s\n", r.render(styleError, fmt.Sprintf("%d", result.ErrorCount)))
	}
	if result.WarningCount > 0 {
		fmt.Fprintf(r.w, "Warnings:       %s\n", r.render(styleWarning, fmt.Sprintf("%d", result.WarningCount)))
	}
	if result.ErrorCount == 0 && result.WarningCount == 0 {
		fmt.Fprintln(r.w, r.render(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")), "No issues found"))
	}
}

// WriteOutput writes the lint result in the selected format.
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, opts ReportOptions) {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result)

	case OutputSummary:
		reporter := NewReporter(w, opts)
		reporter.PrintStatistics(result)

	case OutputFull:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result)
		reporter.PrintStatistics(result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			os.Stderr.WriteString("error writing JSON: " + err.Error() + "\n")
		}
	}
}

// pluralizeCount formats a count with its singular or plural noun.
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
