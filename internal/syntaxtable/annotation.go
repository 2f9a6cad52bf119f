// Package syntaxtable regenerates the setup_syntax dispatch block of a C
// source file from the syntax annotations on its handler definitions.
//
// A handler is annotated on its definition line:
//
//	void syntax_if(void) /* syntax: if */
//
// and the generated block registers every annotated handler, sorted by
// keyword:
//
//	void setup_syntax(void)
//	{
//		bzero(&SYNTAX_HANDLERS, sizeof(struct dict));
//		register_syntax_handler("if", syntax_if);
//	}
package syntaxtable

import (
	"regexp"
)

// Annotation is one annotated handler definition
type Annotation struct {
	Line     int    // 1-based line number in the scanned input
	Function string // Handler function name
	Keyword  string // Syntax keyword the handler implements
}

var annotationRegex = regexp.MustCompile(`^void (.+?)\(void\) /\* syntax: (.+?) \*/`)

// ParseAnnotation matches line against the annotation syntax.
// Text after the closing comment marker is ignored.
func ParseAnnotation(line string) (Annotation, bool) {
	matches := annotationRegex.FindStringSubmatch(line)
	if matches == nil {
		return Annotation{}, false
	}
	return Annotation{Function: matches[1], Keyword: matches[2]}, true
}

// ScanAnnotations returns every annotation in lines, in input order
func ScanAnnotations(lines []string) []Annotation {
	var found []Annotation
	for i, line := range lines {
		if a, ok := ParseAnnotation(line); ok {
			a.Line = i + 1
			found = append(found, a)
		}
	}
	return found
}
