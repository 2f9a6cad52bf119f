package syntaxtable

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/gubarz/schemetools/internal/textio"
)

// Options controls RewriteFile
type Options struct {
	DryRun bool // Compute the result but never write the file
}

// Result describes one in-place rewrite
type Result struct {
	Path          string
	Changed       bool // New content differs from the file
	Written       bool // The file was overwritten
	Registrations int
	Old           []string // Original lines, terminators kept
	New           []string // Rewritten lines, terminators kept
	Diagnostics   []Diagnostic
}

// RewriteFile regenerates the dispatch block of the file at path and writes
// the file back only when its content changes. Lines outside the block are
// kept byte for byte and generated lines use the file's line ending. Line
// endings alone never count as a change.
func RewriteFile(path string, opts Options) (*Result, error) {
	old, err := readFile(path)
	if err != nil {
		return nil, err
	}

	m := Scan(old)
	updated := rewriteTerminated(old, m)

	result := &Result{
		Path:          path,
		Changed:       !sameContent(old, updated),
		Registrations: len(m),
		Old:           old,
		New:           updated,
		Diagnostics:   Check(old),
	}

	if !result.Changed || opts.DryRun {
		return result, nil
	}

	if err := os.WriteFile(path, []byte(textio.Join(updated)), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	result.Written = true
	return result, nil
}

func readFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := textio.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// rewriteTerminated is Rewrite for lines that carry their terminators
func rewriteTerminated(lines []string, m KeywordMap) []string {
	eol := textio.Terminator(lines)
	kept := StripBlock(lines)
	if n := len(kept); n > 0 && !strings.HasSuffix(kept[n-1], "\n") {
		kept[n-1] += eol
	}

	block := GenerateBlock(m)
	out := make([]string, 0, len(kept)+len(block))
	out = append(out, kept...)
	for _, line := range block {
		out = append(out, line+eol)
	}
	return out
}

// sameContent compares a and b line by line, ignoring line terminators
func sameContent(a, b []string) bool {
	return slices.EqualFunc(a, b, func(x, y string) bool {
		return textio.StripTerminator(x) == textio.StripTerminator(y)
	})
}
