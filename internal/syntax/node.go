package syntax

import "iter"

// Element is a positioned view of a tree element: a *Node or a *Token.
type Element interface {
	Kind() SyntaxKind
	TextRange() TextRange
	Parent() *Node
	element()
}

// Node is a positioned cursor over a GreenNode. Nodes are created on demand
// while walking and are cheap to throw away; the green tree is the data.
type Node struct {
	green  *GreenNode
	parent *Node
	offset int
	index  int
}

// Token is a positioned cursor over a GreenToken.
type Token struct {
	green  *GreenToken
	parent *Node
	offset int
	index  int
}

// NewRoot creates the positioned view of a whole tree, starting at offset 0.
func NewRoot(green *GreenNode) *Node {
	return &Node{green: green}
}

func (n *Node) Kind() SyntaxKind     { return n.green.kind }
func (n *Node) Green() *GreenNode    { return n.green }
func (n *Node) Parent() *Node        { return n.parent }
func (n *Node) Index() int           { return n.index }
func (n *Node) Text() string         { return n.green.Text() }
func (n *Node) TextRange() TextRange { return NewRange(n.offset, n.green.textLen) }
func (n *Node) element()             {}

func (t *Token) Kind() SyntaxKind     { return t.green.kind }
func (t *Token) Green() *GreenToken   { return t.green }
func (t *Token) Parent() *Node        { return t.parent }
func (t *Token) Index() int           { return t.index }
func (t *Token) Text() string         { return t.green.text }
func (t *Token) TextRange() TextRange { return NewRange(t.offset, len(t.green.text)) }
func (t *Token) element()             {}

// ChildrenWithTokens iterates over the direct children, nodes and tokens
// alike, with their absolute offsets.
func (n *Node) ChildrenWithTokens() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		offset := n.offset
		for i, c := range n.green.children {
			if !yield(n.wrap(c, i, offset)) {
				return
			}
			offset += c.TextLen()
		}
	}
}

// Children iterates over the direct child nodes, skipping tokens.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for el := range n.ChildrenWithTokens() {
			if child, ok := el.(*Node); ok && !yield(child) {
				return
			}
		}
	}
}

// ChildTokens iterates over the direct child tokens, skipping nodes.
func (n *Node) ChildTokens() iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		for el := range n.ChildrenWithTokens() {
			if tok, ok := el.(*Token); ok && !yield(tok) {
				return
			}
		}
	}
}

func (n *Node) wrap(c GreenElement, index, offset int) Element {
	switch c := c.(type) {
	case *GreenNode:
		return &Node{green: c, parent: n, offset: offset, index: index}
	case *GreenToken:
		return &Token{green: c, parent: n, offset: offset, index: index}
	}
	panic("syntax: unknown green element")
}

// Preorder walks the subtree rooted at n (n included) in source order and
// yields each element with its depth relative to n. The walk keeps its own
// stack, so deep trees do not grow the goroutine stack.
func (n *Node) Preorder() iter.Seq2[int, Element] {
	return func(yield func(int, Element) bool) {
		type frame struct {
			node   *Node
			next   int
			offset int
		}
		if !yield(0, n) {
			return
		}
		stack := []frame{{node: n, offset: n.offset}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.node.green.children) {
				stack = stack[:len(stack)-1]
				continue
			}
			c := top.node.green.children[top.next]
			el := top.node.wrap(c, top.next, top.offset)
			top.next++
			top.offset += c.TextLen()

			if !yield(len(stack), el) {
				return
			}
			if child, ok := el.(*Node); ok {
				stack = append(stack, frame{node: child, offset: child.offset})
			}
		}
	}
}

// TokenAt returns the leaf whose range contains offset. When offset sits on
// the boundary between two tokens the left one wins.
func (n *Node) TokenAt(offset int) (*Token, bool) {
	if !n.TextRange().Contains(offset) {
		return nil, false
	}
	for _, el := range n.Preorder() {
		tok, ok := el.(*Token)
		if ok && tok.TextRange().Contains(offset) {
			return tok, true
		}
	}
	return nil, false
}

// Ancestors yields the parent chain of el, innermost first.
func Ancestors(el Element) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for p := el.Parent(); p != nil; p = p.Parent() {
			if !yield(p) {
				return
			}
		}
	}
}
