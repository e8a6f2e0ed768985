package ast

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exprparser/internal/syntax"
)

// build assembles "1 + 2" by hand, optionally dropping pieces to produce
// the malformed shapes error recovery can leave behind.
func build(withOperator, withRHS bool) *syntax.Node {
	b := syntax.NewBuilder()
	b.StartNode(syntax.Root)
	b.StartNode(syntax.Operation)
	b.Token(syntax.Number, "1")
	b.Token(syntax.Whitespace, " ")
	if withOperator {
		b.Token(syntax.Add, "+")
	}
	b.Token(syntax.Whitespace, " ")
	if withRHS {
		b.Token(syntax.Number, "2")
	}
	b.FinishNode()
	b.FinishNode()
	return syntax.NewRoot(b.Finish())
}

func TestCasts(t *testing.T) {
	root := build(true, true)

	r, ok := CastRoot(root)
	require.True(t, ok)
	_, ok = CastOperation(root)
	assert.False(t, ok)

	e, ok := r.Expr()
	require.True(t, ok)
	op, ok := e.(Operation)
	require.True(t, ok, "root expression should be an operation")
	assert.Equal(t, syntax.TextRange{Start: 0, End: 5}, op.TextRange())

	lhs, ok := op.LHS()
	require.True(t, ok)
	assert.Equal(t, "1", lhs.(Number).Text())

	rhs, ok := op.RHS()
	require.True(t, ok)
	assert.Equal(t, "2", rhs.(Number).Text())

	operator, ok := op.Operator()
	require.True(t, ok)
	kind, ok := operator.Op()
	require.True(t, ok)
	assert.Equal(t, syntax.OpAdd, kind)
	assert.Equal(t, syntax.TextRange{Start: 2, End: 3}, operator.TextRange())
}

func TestCastExprOnlyAcceptsExpressions(t *testing.T) {
	root := build(true, true)

	var kinds []syntax.SyntaxKind
	for _, el := range root.Preorder() {
		if _, ok := CastExpr(el); ok {
			kinds = append(kinds, el.Kind())
		}
	}
	assert.Equal(t, []syntax.SyntaxKind{syntax.Operation, syntax.Number, syntax.Number}, kinds)

	_, ok := CastExpr(nil)
	assert.False(t, ok)
	_, ok = CastNumber(nil)
	assert.False(t, ok)
}

func TestMalformedOperationHasNoValue(t *testing.T) {
	tests := []struct {
		name         string
		withOperator bool
		withRHS      bool
	}{
		{"missing operator", false, true},
		{"missing right operand", true, false},
		{"missing both", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := CastRoot(build(tt.withOperator, tt.withRHS))
			_, err := r.Eval()
			assert.ErrorIs(t, err, ErrNoValue)
		})
	}
}

func TestRootWithoutExpression(t *testing.T) {
	b := syntax.NewBuilder()
	b.StartNode(syntax.Root)
	b.Token(syntax.Whitespace, "  ")
	b.Token(syntax.Error, "x")
	b.FinishNode()

	r, ok := CastRoot(syntax.NewRoot(b.Finish()))
	require.True(t, ok)
	_, err := r.Eval()
	assert.True(t, stderrors.Is(err, ErrNoValue))
}
