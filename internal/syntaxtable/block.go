package syntaxtable

import (
	"fmt"
	"strings"
)

const (
	// Header opens the generated dispatch block
	Header = "void setup_syntax(void)"
	// InitStatement clears the handler table before registration
	InitStatement = "bzero(&SYNTAX_HANDLERS, sizeof(struct dict));"

	closingBrace = "}"
)

type stripState int

const (
	stateNormal stripState = iota
	stateSkipping
)

// stripper drops the dispatch block from a stream of lines. A line equal to
// Header (ignoring surrounding whitespace) starts the skipped region and the
// next lone closing brace ends it. Both boundary lines are dropped.
type stripper struct {
	state stripState
}

// keep advances the state machine and reports whether line survives
func (s *stripper) keep(line string) bool {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == Header:
		s.state = stateSkipping
		return false
	case s.state == stateSkipping && trimmed == closingBrace:
		s.state = stateNormal
		return false
	case s.state == stateSkipping:
		return false
	default:
		return true
	}
}

// StripBlock returns lines without the dispatch block. An unterminated block
// swallows the rest of the input.
func StripBlock(lines []string) []string {
	var s stripper
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if s.keep(line) {
			kept = append(kept, line)
		}
	}
	return kept
}

// RegistrationLine renders the statement registering r. The keyword is
// copied verbatim between the quotes, without escaping.
func RegistrationLine(r Registration) string {
	return fmt.Sprintf(`register_syntax_handler("%s", %s);`, r.Keyword, r.Function)
}

// GenerateBlock renders the dispatch block for m, without line terminators
func GenerateBlock(m KeywordMap) []string {
	regs := m.Registrations()
	block := make([]string, 0, len(regs)+4)
	block = append(block, Header, "{", "\t"+InitStatement)
	for _, r := range regs {
		block = append(block, "\t"+RegistrationLine(r))
	}
	return append(block, closingBrace)
}

// Rewrite removes the dispatch block from lines and appends a fresh one
// generated from m
func Rewrite(lines []string, m KeywordMap) []string {
	return append(StripBlock(lines), GenerateBlock(m)...)
}
