package syntax

import (
	"iter"
	"strings"
)

// GreenElement is a child of a GreenNode: either a *GreenNode or a
// *GreenToken. Green elements carry no offsets and no parent, so identical
// subtrees can be shared freely.
type GreenElement interface {
	Kind() SyntaxKind
	TextLen() int
	green()
}

// GreenToken is an immutable leaf holding its exact source text.
type GreenToken struct {
	kind SyntaxKind
	text string
}

// NewGreenToken creates a leaf.
func NewGreenToken(kind SyntaxKind, text string) *GreenToken {
	return &GreenToken{kind: kind, text: text}
}

func (t *GreenToken) Kind() SyntaxKind { return t.kind }
func (t *GreenToken) Text() string     { return t.text }
func (t *GreenToken) TextLen() int     { return len(t.text) }
func (t *GreenToken) green()           {}

// GreenNode is an immutable interior node. Its children slice is never
// handed out, so a *GreenNode can be shared between parse results and
// goroutines without copying.
type GreenNode struct {
	kind     SyntaxKind
	textLen  int
	children []GreenElement
}

// NewGreenNode creates an interior node that owns children.
func NewGreenNode(kind SyntaxKind, children []GreenElement) *GreenNode {
	n := &GreenNode{kind: kind, children: children}
	for _, c := range children {
		n.textLen += c.TextLen()
	}
	return n
}

func (n *GreenNode) Kind() SyntaxKind { return n.kind }
func (n *GreenNode) TextLen() int     { return n.textLen }
func (n *GreenNode) green()           {}

func (n *GreenNode) ChildCount() int {
	return len(n.children)
}

// Child returns the i-th child.
func (n *GreenNode) Child(i int) GreenElement {
	return n.children[i]
}

// Children iterates over the direct children in order.
func (n *GreenNode) Children() iter.Seq[GreenElement] {
	return func(yield func(GreenElement) bool) {
		for _, c := range n.children {
			if !yield(c) {
				return
			}
		}
	}
}

// Tokens iterates over every leaf below n in source order.
func (n *GreenNode) Tokens() iter.Seq[*GreenToken] {
	return func(yield func(*GreenToken) bool) {
		type frame struct {
			node *GreenNode
			next int
		}
		stack := []frame{{node: n}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.node.children) {
				stack = stack[:len(stack)-1]
				continue
			}
			child := top.node.children[top.next]
			top.next++
			switch c := child.(type) {
			case *GreenToken:
				if !yield(c) {
					return
				}
			case *GreenNode:
				stack = append(stack, frame{node: c})
			}
		}
	}
}

// Text concatenates every leaf below n.
func (n *GreenNode) Text() string {
	var sb strings.Builder
	sb.Grow(n.textLen)
	for tok := range n.Tokens() {
		sb.WriteString(tok.text)
	}
	return sb.String()
}
