// Package markdown turns a commented C source into a Markdown document.
// Comment lines become prose and the code between them becomes fenced
// code blocks.
package markdown

import (
	"fmt"
	"io"
	"strings"

	"github.com/gubarz/schemetools/internal/textio"
)

const fence = "```"

// Options configures a Converter
type Options struct {
	CommentPrefix string // Lines starting with this are prose
	Lang          string // Info string of opening fences
	CloseFences   bool   // Fence code before the first comment and after the last one
}

// DefaultOptions returns the options used for scheme.c
func DefaultOptions() Options {
	return Options{CommentPrefix: "//", Lang: "c"}
}

type state int

const (
	stateInitial state = iota
	stateText
	stateCode
)

// Converter holds the toggling state between prose and code
type Converter struct {
	opts  Options
	state state
	out   []string
}

// NewConverter creates a converter with the given options
func NewConverter(opts Options) *Converter {
	if opts.CommentPrefix == "" {
		opts.CommentPrefix = "//"
	}
	return &Converter{opts: opts}
}

// Line converts one input line
func (c *Converter) Line(line string) {
	if strings.HasPrefix(line, c.opts.CommentPrefix) {
		if c.state == stateCode {
			c.out = append(c.out, fence)
		}
		c.state = stateText
		c.out = append(c.out, strings.TrimSpace(line[len(c.opts.CommentPrefix):]))
		return
	}

	if c.state == stateText || (c.state == stateInitial && c.opts.CloseFences) {
		c.out = append(c.out, fence+c.opts.Lang)
	}
	c.state = stateCode
	c.out = append(c.out, textio.TrimRight(line))
}

// Finish ends the document and returns the converted lines
func (c *Converter) Finish() []string {
	if c.state == stateCode && c.opts.CloseFences {
		c.out = append(c.out, fence)
	}
	out := c.out
	c.out = nil
	c.state = stateInitial
	return out
}

// Convert runs lines through a fresh Converter
func Convert(lines []string, opts Options) []string {
	c := NewConverter(opts)
	for _, line := range lines {
		c.Line(line)
	}
	return c.Finish()
}

// Filter converts the C source read from r and writes Markdown to w
func Filter(r io.Reader, w io.Writer, opts Options) error {
	lines, err := textio.Lines(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err := textio.WriteLines(w, Convert(lines, opts)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
