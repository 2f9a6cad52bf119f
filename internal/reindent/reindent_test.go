package reindent

import (
	"bytes"
	"strings"
	"testing"
)

func TestSpacesToTabs(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		width int
		want  string
	}{
		{name: "no indent", line: "int x;", width: 4, want: "int x;"},
		{name: "one level", line: "    return;", width: 4, want: "\treturn;"},
		{name: "two levels", line: "        return;", width: 4, want: "\t\treturn;"},
		{name: "mixed tab and spaces", line: "\t    x", width: 4, want: "\t\tx"},
		{name: "spaces then tab", line: "    \tx", width: 4, want: "\t\tx"},
		{name: "partial indent kept", line: "      x", width: 4, want: "\t  x"},
		{name: "inner spaces untouched", line: "a    b", width: 4, want: "a    b"},
		{name: "trailing whitespace", line: "    x  \t", width: 4, want: "\tx"},
		{name: "blank line", line: "        ", width: 4, want: ""},
		{name: "width eight", line: "        x", width: 8, want: "\tx"},
		{name: "width eight partial", line: "    x", width: 8, want: "    x"},
		{name: "zero width only tabs", line: "\t  x", width: 0, want: "\t  x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpacesToTabs(tt.line, tt.width); got != tt.want {
				t.Errorf("SpacesToTabs(%q, %d) = %q, want %q", tt.line, tt.width, got, tt.want)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	input := "int main(void)\n{\n    if (x) {\n        y();   \n    }\n}"
	want := "int main(void)\n{\n\tif (x) {\n\t\ty();\n\t}\n}\n"

	var out bytes.Buffer
	if err := Filter(strings.NewReader(input), &out, 4); err != nil {
		t.Fatalf("Filter() error: %v", err)
	}
	if got := out.String(); got != want {
		t.Errorf("Filter() = %q, want %q", got, want)
	}
}
