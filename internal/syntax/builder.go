package syntax

import "fmt"

// Checkpoint marks a position in the builder's child buffer. A node opened
// with StartNodeAt adopts every child appended after the checkpoint.
type Checkpoint struct {
	index int
}

type openNode struct {
	kind       SyntaxKind
	firstChild int
}

// Builder assembles a green tree from a stream of start/token/finish calls.
// Children of all open nodes share one flat buffer; each open node only
// remembers where its own children begin.
type Builder struct {
	parents  []openNode
	children []GreenElement
}

func NewBuilder() *Builder {
	return &Builder{}
}

// StartNode opens a node of the given kind.
func (b *Builder) StartNode(kind SyntaxKind) {
	b.parents = append(b.parents, openNode{kind: kind, firstChild: len(b.children)})
}

// Token appends a leaf to the innermost open node.
func (b *Builder) Token(kind SyntaxKind, text string) {
	b.children = append(b.children, NewGreenToken(kind, text))
}

// FinishNode closes the innermost open node.
func (b *Builder) FinishNode() {
	if len(b.parents) == 0 {
		panic("syntax: FinishNode called without an open node")
	}
	top := b.parents[len(b.parents)-1]
	b.parents = b.parents[:len(b.parents)-1]

	children := make([]GreenElement, len(b.children)-top.firstChild)
	copy(children, b.children[top.firstChild:])
	b.children = b.children[:top.firstChild]
	b.children = append(b.children, NewGreenNode(top.kind, children))
}

// Checkpoint records the current position so a node can later be opened
// around whatever gets appended from here on.
func (b *Builder) Checkpoint() Checkpoint {
	return Checkpoint{index: len(b.children)}
}

// StartNodeAt opens a node that retroactively wraps every child appended
// since cp was taken.
func (b *Builder) StartNodeAt(cp Checkpoint, kind SyntaxKind) {
	if cp.index > len(b.children) {
		panic(fmt.Sprintf("syntax: checkpoint %d is past the end of the buffer (%d)", cp.index, len(b.children)))
	}
	if n := len(b.parents); n > 0 && b.parents[n-1].firstChild > cp.index {
		panic(fmt.Sprintf("syntax: checkpoint %d predates the open %s node", cp.index, b.parents[n-1].kind))
	}
	b.parents = append(b.parents, openNode{kind: kind, firstChild: cp.index})
}

// Finish returns the completed tree. Exactly one root node must have been
// started and finished.
func (b *Builder) Finish() *GreenNode {
	if len(b.parents) != 0 {
		panic(fmt.Sprintf("syntax: Finish called with %d open nodes", len(b.parents)))
	}
	if len(b.children) != 1 {
		panic(fmt.Sprintf("syntax: Finish expects a single root, found %d elements", len(b.children)))
	}
	root, ok := b.children[0].(*GreenNode)
	if !ok {
		panic("syntax: Finish expects the root to be a node")
	}
	b.children = nil
	return root
}
