package syntax

import "fmt"

// Op is an arithmetic operator independent of how it was spelled.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// OpFromKind maps an operator token kind to its Op.
func OpFromKind(k SyntaxKind) (Op, bool) {
	switch k {
	case Add:
		return OpAdd, true
	case Sub:
		return OpSub, true
	case Mul:
		return OpMul, true
	case Div:
		return OpDiv, true
	}
	return 0, false
}

// OpFromText maps the literal spelling of an operator to its Op.
func OpFromText(text string) (Op, bool) {
	switch text {
	case "+":
		return OpAdd, true
	case "-":
		return OpSub, true
	case "*":
		return OpMul, true
	case "/":
		return OpDiv, true
	}
	return 0, false
}
