package syntax

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1 + 2*3
func sampleTree() *Node {
	b := NewBuilder()
	b.StartNode(Root)
	cp := b.Checkpoint()
	b.Token(Number, "1")
	b.Token(Whitespace, " ")
	b.StartNodeAt(cp, Operation)
	b.Token(Add, "+")
	b.Token(Whitespace, " ")
	inner := b.Checkpoint()
	b.Token(Number, "2")
	b.StartNodeAt(inner, Operation)
	b.Token(Mul, "*")
	b.Token(Number, "3")
	b.FinishNode()
	b.FinishNode()
	b.FinishNode()
	return NewRoot(b.Finish())
}

func TestNodeOffsetsAndParents(t *testing.T) {
	root := sampleTree()
	assert.Equal(t, TextRange{0, 7}, root.TextRange())
	assert.Nil(t, root.Parent())

	ops := slices.Collect(root.Children())
	require.Len(t, ops, 1)
	outer := ops[0]
	assert.Equal(t, Operation, outer.Kind())
	assert.Same(t, root, outer.Parent())

	inners := slices.Collect(outer.Children())
	require.Len(t, inners, 1)
	assert.Equal(t, TextRange{4, 7}, inners[0].TextRange())
	assert.Equal(t, "2*3", inners[0].Text())

	var kinds []SyntaxKind
	for tok := range outer.ChildTokens() {
		kinds = append(kinds, tok.Kind())
	}
	assert.Equal(t, []SyntaxKind{Number, Whitespace, Add, Whitespace}, kinds)
}

func TestPreorderReconstructsText(t *testing.T) {
	root := sampleTree()

	var sb strings.Builder
	for _, el := range root.Preorder() {
		if tok, ok := el.(*Token); ok {
			sb.WriteString(tok.Text())
		}
	}
	assert.Equal(t, "1 + 2*3", sb.String())
	assert.Equal(t, "1 + 2*3", root.Text())
}

func TestPreorderStopsEarly(t *testing.T) {
	count := 0
	for range sampleTree().Preorder() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestTokenAtAndAncestors(t *testing.T) {
	root := sampleTree()

	tok, ok := root.TokenAt(5)
	require.True(t, ok)
	assert.Equal(t, Number, tok.Kind())
	assert.Equal(t, "2", tok.Text())

	var chain []SyntaxKind
	for n := range Ancestors(tok) {
		chain = append(chain, n.Kind())
	}
	assert.Equal(t, []SyntaxKind{Operation, Operation, Root}, chain)

	_, ok = root.TokenAt(100)
	assert.False(t, ok)
}

func TestKindPhrases(t *testing.T) {
	assert.Equal(t, "a number literal", Number.Phrase())
	assert.Equal(t, "a plus sign", Add.Phrase())
	assert.Equal(t, "a minus sign", Sub.Phrase())
	assert.Equal(t, "an asterisk", Mul.Phrase())
	assert.Equal(t, "a slash", Div.Phrase())
	assert.True(t, Error.IsToken())
	assert.False(t, Operation.IsToken())
	assert.True(t, Div.IsOperator())
	assert.False(t, Number.IsOperator())
}

func TestOpConversions(t *testing.T) {
	for _, kind := range OperatorKinds() {
		op, ok := OpFromKind(kind)
		require.True(t, ok)
		fromText, ok := OpFromText(op.String())
		require.True(t, ok)
		assert.Equal(t, op, fromText)
	}
	_, ok := OpFromKind(Number)
	assert.False(t, ok)
	_, ok = OpFromText("%")
	assert.False(t, ok)
}

func TestOperatorKindsReturnsFreshSlice(t *testing.T) {
	kinds := OperatorKinds()
	kinds[0] = Number

	assert.Equal(t, []SyntaxKind{Add, Sub, Mul, Div}, OperatorKinds())
}

func TestIsTrivia(t *testing.T) {
	assert.True(t, Whitespace.IsTrivia())
	for _, kind := range []SyntaxKind{Number, Add, Error, Root} {
		assert.False(t, kind.IsTrivia(), kind.String())
	}
}
