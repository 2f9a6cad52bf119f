package syntaxtable

import (
	"fmt"
	"strings"
)

// DiagnosticKind classifies a Diagnostic
type DiagnosticKind string

const (
	DuplicateKeyword  DiagnosticKind = "duplicate-keyword"
	MissingHeader     DiagnosticKind = "missing-header"
	UnterminatedBlock DiagnosticKind = "unterminated-block"
	MultipleHeaders   DiagnosticKind = "multiple-headers"
	NestedBrace       DiagnosticKind = "nested-brace"
)

// Diagnostic is a non-fatal observation about the input. Diagnostics never
// change what Rewrite produces.
type Diagnostic struct {
	Kind    DiagnosticKind
	Line    int // 1-based, 0 when the diagnostic applies to the whole input
	Message string
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("line %d: %s", d.Line, d.Message)
	}
	return d.Message
}

// Check reports inputs that the rewrite accepts silently but that are
// probably mistakes.
func Check(lines []string) []Diagnostic {
	var diags []Diagnostic

	seen := make(map[string]Annotation)
	for _, a := range ScanAnnotations(lines) {
		if prev, ok := seen[a.Keyword]; ok {
			diags = append(diags, Diagnostic{
				Kind: DuplicateKeyword,
				Line: a.Line,
				Message: fmt.Sprintf("keyword %q handled by %s replaces %s from line %d",
					a.Keyword, a.Function, prev.Function, prev.Line),
			})
		}
		seen[a.Keyword] = a
	}

	var s stripper
	headers, blockStart, secondHeader := 0, 0, 0
	for i, line := range lines {
		wasSkipping := s.state == stateSkipping
		s.keep(line)
		if strings.TrimSpace(line) == Header {
			headers++
			if headers == 2 {
				secondHeader = i + 1
			}
			if !wasSkipping {
				blockStart = i + 1
			}
			continue
		}
		if wasSkipping && s.state == stateSkipping {
			trimmed := strings.TrimSpace(line)
			if trimmed != "{" && strings.Contains(trimmed, "{") {
				diags = append(diags, Diagnostic{
					Kind:    NestedBrace,
					Line:    i + 1,
					Message: "brace inside setup_syntax; the block ends at the next lone '}'",
				})
			}
		}
	}

	if headers == 0 {
		diags = append(diags, Diagnostic{
			Kind:    MissingHeader,
			Message: fmt.Sprintf("no %q found; a new block is appended", Header),
		})
	}
	if headers > 1 {
		diags = append(diags, Diagnostic{
			Kind:    MultipleHeaders,
			Line:    secondHeader,
			Message: fmt.Sprintf("%d setup_syntax headers; every one is removed and a single block appended", headers),
		})
	}
	if s.state == stateSkipping {
		diags = append(diags, Diagnostic{
			Kind:    UnterminatedBlock,
			Line:    blockStart,
			Message: "setup_syntax is never closed; everything after it is dropped",
		})
	}
	return diags
}
