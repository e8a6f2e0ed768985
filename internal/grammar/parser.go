package grammar

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	"exprparser/internal/lexer"
)

var parser = participle.MustBuild[Expression](
	participle.Lexer(lexer.Definition),
	participle.Elide("Whitespace"),
)

// ParseString parses input strictly. The first unexpected token or a
// premature end of input is returned as a participle.Error.
func ParseString(filename, input string) (*Expression, error) {
	return parser.ParseString(filename, input)
}

// FormatError renders a parse error with the offending line and a caret
// under the position it was detected at.
func FormatError(src string, err error) string {
	pe, ok := err.(participle.Error)
	if !ok {
		return color.RedString("Unexpected error: %s", err) + "\n"
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		return color.RedString("Syntax error at unknown location: %s", err) + "\n"
	}

	var b strings.Builder
	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", max(pos.Column-1, 0)) + "^"

	name := pos.Filename
	if name == "" {
		name = "input"
	}
	b.WriteString(color.RedString("Syntax error in %s at line %d, column %d:", name, pos.Line, pos.Column) + "\n")
	b.WriteString(line + "\n")
	b.WriteString(color.HiRedString(caret) + "\n")
	fmt.Fprintf(&b, "→ %s\n", pe.Message())
	return b.String()
}
