// Package reindent converts space indentation to tabs.
package reindent

import (
	"fmt"
	"io"
	"strings"

	"github.com/gubarz/schemetools/internal/textio"
)

// SpacesToTabs rewrites the indentation of line. Each leading run of width
// spaces, and each leading tab, becomes one tab; conversion stops at the
// first character that starts neither. Trailing whitespace is removed.
func SpacesToTabs(line string, width int) string {
	spaces := strings.Repeat(" ", width)
	tabs := 0
	for {
		switch {
		case width > 0 && strings.HasPrefix(line, spaces):
			line = line[width:]
		case strings.HasPrefix(line, "\t"):
			line = line[1:]
		default:
			return textio.TrimRight(strings.Repeat("\t", tabs) + line)
		}
		tabs++
	}
}

// Filter reindents every line of r onto w
func Filter(r io.Reader, w io.Writer, width int) error {
	lines, err := textio.Lines(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	for i, line := range lines {
		lines[i] = SpacesToTabs(line, width)
	}
	if err := textio.WriteLines(w, lines); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
