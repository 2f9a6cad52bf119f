// Package report prints the outcome of in-place rewrites on the error stream.
package report

import (
	"fmt"
	"io"

	"github.com/google/go-cmp/cmp"
	"github.com/gubarz/schemetools/internal/syntaxtable"
)

// Reporter writes status lines, warnings and diffs
type Reporter struct {
	w      io.Writer
	styles *Styles
	quiet  bool
}

// New creates a reporter writing to w. A quiet reporter prints warnings only.
func New(w io.Writer, quiet bool) *Reporter {
	return &Reporter{w: w, styles: DefaultStyles(w), quiet: quiet}
}

// WithStyles replaces the styles (useful for config-driven colors)
func (r *Reporter) WithStyles(s *Styles) *Reporter {
	r.styles = s
	return r
}

// Status returns the word describing res
func Status(res *syntaxtable.Result) string {
	switch {
	case res.Written:
		return "updated"
	case res.Changed:
		return "would update"
	default:
		return "unchanged"
	}
}

// Result prints the status line of res followed by its diagnostics
func (r *Reporter) Result(res *syntaxtable.Result) {
	for _, d := range res.Diagnostics {
		fmt.Fprintf(r.w, "%s: %s %s\n",
			r.styles.Path.Render(res.Path),
			r.styles.Warning.Render("warning:"),
			d)
	}

	if r.quiet {
		return
	}

	style := r.styles.Unchanged
	if res.Changed {
		style = r.styles.Changed
	}
	fmt.Fprintf(r.w, "%s: %s (%d handlers)\n",
		r.styles.Path.Render(res.Path),
		style.Render(Status(res)),
		res.Registrations)
}

// Diff prints the line differences between the old and new content of res
func (r *Reporter) Diff(res *syntaxtable.Result) {
	if !res.Changed {
		return
	}
	fmt.Fprintf(r.w, "--- %s\n+++ %s\n%s", res.Path, res.Path, cmp.Diff(res.Old, res.New))
}
