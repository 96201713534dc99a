// Package report renders compile summaries for the stylec CLI.
package report

import (
	"fmt"
	"io"

	"github.com/yacobolo/stylec"
)

// Summary captures what a compile run produced.
type Summary struct {
	FilesLoaded int
	Rules       int
	Classes     int
	VarGroups   int
	Themes      int
	Keyframes   int
	OutputPath  string
	OutputBytes int
	Warnings    []string
}

// Summarize counts the compiled entities in a manifest. Classes counts
// distinct atomic classes, not per-rule references.
func Summarize(m *stylec.Manifest) Summary {
	s := Summary{
		Rules:     len(m.Classes),
		VarGroups: len(m.Vars),
		Themes:    len(m.Themes),
		Keyframes: len(m.Keyframes),
	}

	seen := make(map[string]bool)
	for _, rule := range m.Classes {
		for _, p := range rule.Props {
			for _, cls := range p.Classes {
				if !seen[cls.ClassName] {
					seen[cls.ClassName] = true
					s.Classes++
				}
			}
		}
	}
	return s
}

// Reporter writes compile summaries.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter for the given writer.
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, useColors: useColors}
}

// Print writes the compile summary.
func (r *Reporter) Print(s Summary) {
	if s.OutputPath != "" {
		fmt.Fprintf(r.w, "%s %s %s\n",
			Render(StyleSuccess, "Wrote", r.useColors),
			Render(StyleHeader, s.OutputPath, r.useColors),
			Render(StyleDim, fmt.Sprintf("(%d bytes)", s.OutputBytes), r.useColors))
	}
	fmt.Fprintf(r.w, "  Files loaded:   %d\n", s.FilesLoaded)
	fmt.Fprintf(r.w, "  Rules compiled: %d\n", s.Rules)
	fmt.Fprintf(r.w, "  Atomic classes: %d\n", s.Classes)
	if s.VarGroups > 0 {
		fmt.Fprintf(r.w, "  Var groups:     %d\n", s.VarGroups)
	}
	if s.Themes > 0 {
		fmt.Fprintf(r.w, "  Themes:         %d\n", s.Themes)
	}
	if s.Keyframes > 0 {
		fmt.Fprintf(r.w, "  Keyframes:      %d\n", s.Keyframes)
	}

	for _, warning := range s.Warnings {
		fmt.Fprintf(r.w, "  %s %s\n", Render(StyleWarning, "warning:", r.useColors), warning)
	}
}

// PrintError writes a failure message.
func (r *Reporter) PrintError(err error) {
	fmt.Fprintln(r.w, Render(StyleError, "Error:", r.useColors), err)
}
