package syntax

import (
	"fmt"
	"strings"
)

// Format renders the debug dump of a tree: one line per element showing
// kind and range, plus the quoted text for tokens, indented two spaces per
// level.
//
//	Root@0..3
//	  Operation@0..3
//	    Number@0..1 "1"
//	    Add@1..2 "+"
//	    Number@2..3 "2"
func Format(n *Node) string {
	var sb strings.Builder
	for depth, el := range n.Preorder() {
		sb.WriteString(strings.Repeat("  ", depth))
		fmt.Fprintf(&sb, "%s@%s", el.Kind(), el.TextRange())
		if tok, ok := el.(*Token); ok {
			fmt.Fprintf(&sb, " %q", tok.Text())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
