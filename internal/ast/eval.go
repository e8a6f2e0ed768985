package ast

import (
	"math/bits"
	"strconv"
	"strings"

	"exprparser/internal/errors"
	"exprparser/internal/syntax"
)

// ErrNoValue is returned when the tree lacks a complete expression.
var ErrNoValue = errors.ErrNoValue

// Eval parses the literal as an unsigned 64-bit value.
func (n Number) Eval() (uint64, error) {
	v, err := strconv.ParseUint(n.Text(), 10, 64)
	if err != nil {
		return 0, &errors.EvalError{
			Kind:  errors.LiteralTooLarge,
			Range: n.TextRange(),
			Text:  n.Text(),
		}
	}
	return v, nil
}

func (o Operation) Eval() (uint64, error) {
	return evalExpr(o)
}

func (r Root) Eval() (uint64, error) {
	e, ok := r.Expr()
	if !ok {
		return 0, ErrNoValue
	}
	return evalExpr(e)
}

// EvalExpr evaluates either kind of expression.
func EvalExpr(e Expr) (uint64, error) {
	return evalExpr(e)
}

type evalFrame struct {
	node    Operation
	op      syntax.Op
	rhs     Expr
	lhs     uint64
	haveLHS bool
}

// evalExpr walks the tree with an explicit stack so that chains of any
// length evaluate without growing the goroutine stack.
func evalExpr(e Expr) (uint64, error) {
	var stack []evalFrame
	cur := e

	for {
		// Descend along left operands, checking each operation's shape.
		for {
			op, ok := cur.(Operation)
			if !ok {
				break
			}
			frame, err := newEvalFrame(op)
			if err != nil {
				return 0, err
			}
			lhs, _ := op.LHS()
			stack = append(stack, frame)
			cur = lhs
		}

		n, ok := cur.(Number)
		if !ok {
			return 0, ErrNoValue
		}
		value, err := n.Eval()
		if err != nil {
			return 0, err
		}

		// Ascend, applying finished operations until one still needs its
		// right operand.
		for {
			if len(stack) == 0 {
				return value, nil
			}
			top := &stack[len(stack)-1]
			if !top.haveLHS {
				top.lhs = value
				top.haveLHS = true
				cur = top.rhs
				break
			}
			value, err = apply(top.node, top.op, top.lhs, value)
			if err != nil {
				return 0, err
			}
			stack = stack[:len(stack)-1]
		}
	}
}

func newEvalFrame(o Operation) (evalFrame, error) {
	if _, ok := o.LHS(); !ok {
		return evalFrame{}, ErrNoValue
	}
	rhs, ok := o.RHS()
	if !ok {
		return evalFrame{}, ErrNoValue
	}
	operator, ok := o.Operator()
	if !ok {
		return evalFrame{}, ErrNoValue
	}
	op, ok := operator.Op()
	if !ok {
		return evalFrame{}, ErrNoValue
	}
	return evalFrame{node: o, op: op, rhs: rhs}, nil
}

func apply(node Operation, op syntax.Op, lhs, rhs uint64) (uint64, error) {
	fail := func(kind errors.EvalErrorKind) error {
		return &errors.EvalError{
			Kind:  kind,
			Op:    op,
			Range: node.TextRange(),
			Text:  strings.TrimSpace(node.Text()),
		}
	}

	switch op {
	case syntax.OpAdd:
		sum, carry := bits.Add64(lhs, rhs, 0)
		if carry != 0 {
			return 0, fail(errors.Overflow)
		}
		return sum, nil
	case syntax.OpSub:
		diff, borrow := bits.Sub64(lhs, rhs, 0)
		if borrow != 0 {
			return 0, fail(errors.Overflow)
		}
		return diff, nil
	case syntax.OpMul:
		hi, lo := bits.Mul64(lhs, rhs)
		if hi != 0 {
			return 0, fail(errors.Overflow)
		}
		return lo, nil
	default:
		if rhs == 0 {
			return 0, fail(errors.DivisionByZero)
		}
		return lhs / rhs, nil
	}
}
