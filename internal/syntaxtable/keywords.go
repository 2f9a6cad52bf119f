package syntaxtable

import (
	"sort"
)

// KeywordMap maps a syntax keyword to its handler function
type KeywordMap map[string]string

// Registration is one keyword/handler pair of the generated block
type Registration struct {
	Keyword  string
	Function string
}

// Scan builds the keyword map of lines. A later annotation for a keyword
// replaces an earlier one.
func Scan(lines []string) KeywordMap {
	m := make(KeywordMap)
	for _, line := range lines {
		if a, ok := ParseAnnotation(line); ok {
			m[a.Keyword] = a.Function
		}
	}
	return m
}

// Registrations returns the entries of m in ascending keyword order
func (m KeywordMap) Registrations() []Registration {
	regs := make([]Registration, 0, len(m))
	for keyword, function := range m {
		regs = append(regs, Registration{Keyword: keyword, Function: function})
	}
	sort.Slice(regs, func(i, j int) bool {
		return regs[i].Keyword < regs[j].Keyword
	})
	return regs
}
