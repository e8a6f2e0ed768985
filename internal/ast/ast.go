// Package ast provides typed views over the syntax tree. A view is a kind
// check on a tree element; it holds no data of its own.
package ast

import "exprparser/internal/syntax"

// Expr is either a Number or an Operation.
type Expr interface {
	Syntax() syntax.Element
	Text() string
	TextRange() syntax.TextRange
	expr()
}

// Root is the top-level node of every parse.
type Root struct {
	node *syntax.Node
}

// Operation is a binary operation node.
type Operation struct {
	node *syntax.Node
}

// Number is a number literal token.
type Number struct {
	token *syntax.Token
}

// Operator is an operator token.
type Operator struct {
	token *syntax.Token
}

func CastRoot(n *syntax.Node) (Root, bool) {
	if n == nil || n.Kind() != syntax.Root {
		return Root{}, false
	}
	return Root{node: n}, true
}

func CastOperation(n *syntax.Node) (Operation, bool) {
	if n == nil || n.Kind() != syntax.Operation {
		return Operation{}, false
	}
	return Operation{node: n}, true
}

func CastNumber(t *syntax.Token) (Number, bool) {
	if t == nil || t.Kind() != syntax.Number {
		return Number{}, false
	}
	return Number{token: t}, true
}

func CastOperator(t *syntax.Token) (Operator, bool) {
	if t == nil || !t.Kind().IsOperator() {
		return Operator{}, false
	}
	return Operator{token: t}, true
}

// CastExpr views a Number token or an Operation node as an Expr.
func CastExpr(el syntax.Element) (Expr, bool) {
	switch el := el.(type) {
	case *syntax.Token:
		if n, ok := CastNumber(el); ok {
			return n, true
		}
	case *syntax.Node:
		if op, ok := CastOperation(el); ok {
			return op, true
		}
	}
	return nil, false
}

func (r Root) Syntax() *syntax.Node { return r.node }

// Expr returns the first child that is an expression. Whitespace and error
// leaves before it are skipped.
func (r Root) Expr() (Expr, bool) {
	return nthExpr(r.node, 0)
}

func (o Operation) Syntax() syntax.Element      { return o.node }
func (o Operation) Node() *syntax.Node          { return o.node }
func (o Operation) Text() string                { return o.node.Text() }
func (o Operation) TextRange() syntax.TextRange { return o.node.TextRange() }
func (o Operation) expr()                       {}

// LHS returns the left operand.
func (o Operation) LHS() (Expr, bool) {
	return nthExpr(o.node, 0)
}

// RHS returns the right operand.
func (o Operation) RHS() (Expr, bool) {
	return nthExpr(o.node, 1)
}

// Operator returns the first operator token among the direct children.
func (o Operation) Operator() (Operator, bool) {
	for t := range o.node.ChildTokens() {
		if op, ok := CastOperator(t); ok {
			return op, true
		}
	}
	return Operator{}, false
}

func (n Number) Syntax() syntax.Element      { return n.token }
func (n Number) Token() *syntax.Token        { return n.token }
func (n Number) Text() string                { return n.token.Text() }
func (n Number) TextRange() syntax.TextRange { return n.token.TextRange() }
func (n Number) expr()                       {}

func (o Operator) Token() *syntax.Token        { return o.token }
func (o Operator) Text() string                { return o.token.Text() }
func (o Operator) TextRange() syntax.TextRange { return o.token.TextRange() }

// Op converts the operator by its literal text.
func (o Operator) Op() (syntax.Op, bool) {
	return syntax.OpFromText(o.token.Text())
}

func nthExpr(n *syntax.Node, i int) (Expr, bool) {
	for el := range n.ChildrenWithTokens() {
		e, ok := CastExpr(el)
		if !ok {
			continue
		}
		if i == 0 {
			return e, true
		}
		i--
	}
	return nil, false
}
