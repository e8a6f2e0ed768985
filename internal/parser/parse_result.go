package parser

import (
	"slices"

	"exprparser/internal/ast"
	"exprparser/internal/errors"
	"exprparser/internal/syntax"
)

// ParseResult is the outcome of a parse: the tree and the errors recorded
// while building it. The tree is immutable and may be shared.
type ParseResult struct {
	green  *syntax.GreenNode
	errors []errors.SyntaxError

	Telemetry *ParseTelemetry // nil unless WithTelemetry was given
}

// Green returns the structural tree.
func (pr *ParseResult) Green() *syntax.GreenNode {
	return pr.green
}

// Syntax returns a positioned cursor over the root of the tree.
func (pr *ParseResult) Syntax() *syntax.Node {
	return syntax.NewRoot(pr.green)
}

// Root returns the typed view of the root. Every parse produces a Root.
func (pr *ParseResult) Root() ast.Root {
	root, _ := ast.CastRoot(pr.Syntax())
	return root
}

// Eval evaluates the expression. It returns ast.ErrNoValue when the tree
// has no complete expression and *errors.EvalError on arithmetic failure.
func (pr *ParseResult) Eval() (uint64, error) {
	return pr.Root().Eval()
}

// Errors returns the syntax errors in input order.
func (pr *ParseResult) Errors() []errors.SyntaxError {
	return slices.Clone(pr.errors)
}

// Format renders the debug dump of the tree.
func (pr *ParseResult) Format() string {
	return syntax.Format(pr.Syntax())
}

// Diagnostics converts the syntax errors into diagnostics against fileID.
func (pr *ParseResult) Diagnostics(fileID string) []errors.Diagnostic {
	return errors.Diagnostics(pr.errors, fileID)
}

// Text reconstructs the parsed input from the tree.
func (pr *ParseResult) Text() string {
	return pr.green.Text()
}
