package errors

import (
	"errors"
	"fmt"

	"exprparser/internal/syntax"
)

// ErrNoValue is returned by evaluation when the tree is missing an operand
// or operator. It only happens for trees that parsing had to recover from.
var ErrNoValue = errors.New("expression has no value")

// EvalErrorKind classifies arithmetic failures.
type EvalErrorKind int

const (
	DivisionByZero EvalErrorKind = iota
	Overflow
	LiteralTooLarge
)

func (k EvalErrorKind) String() string {
	switch k {
	case DivisionByZero:
		return "division by zero"
	case Overflow:
		return "arithmetic overflow"
	case LiteralTooLarge:
		return "number literal too large"
	}
	return fmt.Sprintf("EvalErrorKind(%d)", int(k))
}

// EvalError is an arithmetic failure located at the operation or literal
// that caused it.
type EvalError struct {
	Kind  EvalErrorKind
	Op    syntax.Op
	Range syntax.TextRange
	Text  string
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case DivisionByZero:
		return fmt.Sprintf("attempt to divide by zero at %s", e.Range)
	case Overflow:
		return fmt.Sprintf("attempt to compute %q with overflow at %s", e.Text, e.Range)
	case LiteralTooLarge:
		return fmt.Sprintf("number literal %q does not fit in 64 bits at %s", e.Text, e.Range)
	}
	return e.Kind.String()
}

// Code returns the stable error code for the failure.
func (e *EvalError) Code() string {
	switch e.Kind {
	case DivisionByZero:
		return ErrorDivisionByZero
	case Overflow:
		return ErrorOverflow
	default:
		return ErrorLiteralTooLarge
	}
}

// Diagnostic converts the failure into a diagnostic labelled at its range.
func (e *EvalError) Diagnostic(fileID string) Diagnostic {
	builder := NewError(e.Code(), e.Kind.String())
	switch e.Kind {
	case DivisionByZero:
		builder = builder.WithPrimaryLabel(fileID, e.Range, "the divisor evaluates to zero")
	case Overflow:
		builder = builder.WithPrimaryLabel(fileID, e.Range, fmt.Sprintf("this %s overflows", opNoun(e.Op)))
		if e.Op == syntax.OpSub {
			builder = builder.WithNote("values are unsigned, so results below zero overflow")
		}
	case LiteralTooLarge:
		builder = builder.WithPrimaryLabel(fileID, e.Range, "this literal is too large").
			WithNote("the largest supported value is 18446744073709551615")
	}
	return builder.Build()
}

func opNoun(op syntax.Op) string {
	switch op {
	case syntax.OpAdd:
		return "addition"
	case syntax.OpSub:
		return "subtraction"
	case syntax.OpMul:
		return "multiplication"
	default:
		return "division"
	}
}
