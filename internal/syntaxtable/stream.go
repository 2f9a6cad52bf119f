package syntaxtable

import (
	"fmt"
	"io"

	"github.com/gubarz/schemetools/internal/textio"
)

// Filter reads a C source from r and writes it to w with the dispatch block
// regenerated. Surviving lines lose their trailing whitespace. The output is
// always written in full.
func Filter(r io.Reader, w io.Writer) error {
	lines, err := textio.Lines(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	out := Rewrite(lines, Scan(lines))
	for i, line := range out {
		out[i] = textio.TrimRight(line)
	}

	if err := textio.WriteLines(w, out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
