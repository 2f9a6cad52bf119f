// Package textio reads and writes text as lines for the line filters.
package textio

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"
)

// Lines reads r and returns its lines without terminators.
// A trailing carriage return is dropped along with the newline.
// Lines may be of any length.
func Lines(r io.Reader) ([]string, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	for i, line := range lines {
		lines[i] = StripTerminator(line)
	}
	return lines, nil
}

// StripTerminator removes a trailing "\n", "\r\n" or lone "\r"
func StripTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// Terminator returns the line ending used by lines: "\r\n" when the first
// terminated line ends that way, "\n" otherwise.
func Terminator(lines []string) string {
	for _, line := range lines {
		if strings.HasSuffix(line, "\r\n") {
			return "\r\n"
		}
		if strings.HasSuffix(line, "\n") {
			return "\n"
		}
	}
	return "\n"
}

// ReadLines reads r and returns its lines with their terminators kept,
// so that joining the result reproduces the input byte for byte.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)

	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return lines, nil
			}
			return nil, err
		}
	}
}

// WriteLines writes each line followed by a newline
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Join concatenates lines that already carry their terminators
func Join(lines []string) string {
	return strings.Join(lines, "")
}

// TrimRight removes trailing whitespace, including the line terminator
func TrimRight(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}
