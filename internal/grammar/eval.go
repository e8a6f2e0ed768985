package grammar

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOutOfRange     = errors.New("value out of range")
)

var maxValue = new(big.Int).SetUint64(math.MaxUint64)

// Eval computes the value of the expression. Every intermediate result must
// fit an unsigned 64-bit integer, the same as for the recovering evaluator.
func (e *Expression) Eval() (uint64, error) {
	acc, err := e.Head.eval()
	if err != nil {
		return 0, err
	}
	for _, t := range e.Tail {
		rhs, err := t.Term.eval()
		if err != nil {
			return 0, err
		}
		if err := apply(acc, t.Op, rhs); err != nil {
			return 0, fmt.Errorf("%s at %s: %w", t.Op, t.Pos, err)
		}
	}
	return acc.Uint64(), nil
}

func (t *Term) eval() (*big.Int, error) {
	acc, err := t.Head.eval()
	if err != nil {
		return nil, err
	}
	for _, f := range t.Tail {
		rhs, err := f.Literal.eval()
		if err != nil {
			return nil, err
		}
		if err := apply(acc, f.Op, rhs); err != nil {
			return nil, fmt.Errorf("%s at %s: %w", f.Op, f.Pos, err)
		}
	}
	return acc, nil
}

func (l *Literal) eval() (*big.Int, error) {
	v, ok := new(big.Int).SetString(l.Value, 10)
	if !ok {
		return nil, fmt.Errorf("invalid literal %q at %s", l.Value, l.Pos)
	}
	if v.Cmp(maxValue) > 0 {
		return nil, fmt.Errorf("literal %q at %s: %w", l.Value, l.Pos, ErrOutOfRange)
	}
	return v, nil
}

// apply stores acc op rhs in acc.
func apply(acc *big.Int, op string, rhs *big.Int) error {
	switch op {
	case "+":
		acc.Add(acc, rhs)
	case "-":
		acc.Sub(acc, rhs)
	case "*":
		acc.Mul(acc, rhs)
	case "/":
		if rhs.Sign() == 0 {
			return ErrDivisionByZero
		}
		acc.Quo(acc, rhs)
	default:
		return fmt.Errorf("unknown operator %q", op)
	}
	if acc.Sign() < 0 || acc.Cmp(maxValue) > 0 {
		return ErrOutOfRange
	}
	return nil
}
