package syntax

import "fmt"

// SyntaxKind tags every token and node in the tree.
type SyntaxKind uint16

const (
	// Tokens
	Whitespace SyntaxKind = iota
	Number
	Add
	Sub
	Mul
	Div
	Error

	// Nodes
	Root
	Operation
)

// OperatorKinds returns the operator tokens in the order they are reported
// when an operator is expected. Each call returns a new slice.
func OperatorKinds() []SyntaxKind {
	return []SyntaxKind{Add, Sub, Mul, Div}
}

func (k SyntaxKind) String() string {
	switch k {
	case Whitespace:
		return "Whitespace"
	case Number:
		return "Number"
	case Add:
		return "Add"
	case Sub:
		return "Sub"
	case Mul:
		return "Mul"
	case Div:
		return "Div"
	case Error:
		return "Error"
	case Root:
		return "Root"
	case Operation:
		return "Operation"
	}
	return fmt.Sprintf("SyntaxKind(%d)", uint16(k))
}

// Phrase returns the wording used for the kind in diagnostics.
func (k SyntaxKind) Phrase() string {
	switch k {
	case Whitespace:
		return "whitespace"
	case Number:
		return "a number literal"
	case Add:
		return "a plus sign"
	case Sub:
		return "a minus sign"
	case Mul:
		return "an asterisk"
	case Div:
		return "a slash"
	case Error:
		return "an unrecognized character"
	case Root:
		return "the root node"
	case Operation:
		return "an operation"
	}
	return k.String()
}

// IsToken reports whether k labels a leaf.
func (k SyntaxKind) IsToken() bool {
	return k <= Error
}

// IsTrivia reports whether k can be skipped between significant tokens.
func (k SyntaxKind) IsTrivia() bool {
	return k == Whitespace
}

// IsOperator reports whether k is one of the four arithmetic operator tokens.
func (k SyntaxKind) IsOperator() bool {
	switch k {
	case Add, Sub, Mul, Div:
		return true
	}
	return false
}
