package errors

import (
	"fmt"
	"strings"

	"exprparser/internal/syntax"
)

// SyntaxErrorKind is either FoundExpected or Expected.
type SyntaxErrorKind interface {
	fmt.Stringer
	ExpectedKinds() []syntax.SyntaxKind
	syntaxErrorKind()
}

// FoundExpected reports a token of kind Found where one of Expected was
// required.
type FoundExpected struct {
	Found    syntax.SyntaxKind
	Expected []syntax.SyntaxKind
}

// Expected reports that input ended where one of Expected was required.
type Expected struct {
	Expected []syntax.SyntaxKind
}

func (k FoundExpected) ExpectedKinds() []syntax.SyntaxKind { return k.Expected }
func (k Expected) ExpectedKinds() []syntax.SyntaxKind      { return k.Expected }

func (FoundExpected) syntaxErrorKind() {}
func (Expected) syntaxErrorKind()      {}

func (k FoundExpected) String() string {
	return fmt.Sprintf("found %s, expected %s", k.Found.Phrase(), joinExpected(k.Expected))
}

func (k Expected) String() string {
	return "expected " + joinExpected(k.Expected)
}

// joinExpected renders a, "a or b", "a, b or c".
func joinExpected(kinds []syntax.SyntaxKind) string {
	var sb strings.Builder
	for i, kind := range kinds {
		switch {
		case i == 0:
		case i == len(kinds)-1:
			sb.WriteString(" or ")
		default:
			sb.WriteString(", ")
		}
		sb.WriteString(kind.Phrase())
	}
	return sb.String()
}

// SyntaxError is a problem found while parsing, located by byte range.
type SyntaxError struct {
	Kind  SyntaxErrorKind
	Range syntax.TextRange
}

// UnexpectedToken builds a FoundExpected error.
func UnexpectedToken(found syntax.SyntaxKind, expected []syntax.SyntaxKind, r syntax.TextRange) SyntaxError {
	return SyntaxError{Kind: FoundExpected{Found: found, Expected: expected}, Range: r}
}

// UnexpectedEnd builds an Expected error at the end of the input.
func UnexpectedEnd(expected []syntax.SyntaxKind, end int) SyntaxError {
	return SyntaxError{Kind: Expected{Expected: expected}, Range: syntax.EmptyRange(end)}
}

func (e SyntaxError) Error() string {
	return e.Kind.String()
}

// Code returns the stable error code for the error's kind.
func (e SyntaxError) Code() string {
	if _, ok := e.Kind.(Expected); ok {
		return ErrorUnexpectedEnd
	}
	return ErrorUnexpectedToken
}

// Diagnostic converts the error into a diagnostic with a single primary
// label over its range.
func (e SyntaxError) Diagnostic(fileID string) Diagnostic {
	switch k := e.Kind.(type) {
	case FoundExpected:
		builder := NewError(ErrorUnexpectedToken, "unexpected token").
			WithPrimaryLabel(fileID, e.Range, e.Error())
		switch {
		case k.Found == syntax.Error:
			builder = builder.WithReplacement("remove this character", "", e.Range)
		case k.Found.IsOperator() && len(k.Expected) == 1 && k.Expected[0] == syntax.Number:
			builder = builder.WithHelp("operators must be written between two numbers")
		case k.Found == syntax.Number:
			builder = builder.WithHelp("numbers must be separated by an operator")
		case k.Found.IsTrivia():
			builder = builder.WithSuggestion("remove the stray characters before this whitespace")
		}
		return builder.Build()
	default:
		return NewError(ErrorUnexpectedEnd, "unexpected end of input").
			WithPrimaryLabel(fileID, e.Range, e.Error()).
			WithNote("the expression is incomplete").
			Build()
	}
}

// Diagnostics converts every error, preserving order.
func Diagnostics(errs []SyntaxError, fileID string) []Diagnostic {
	diagnostics := make([]Diagnostic, 0, len(errs))
	for _, err := range errs {
		diagnostics = append(diagnostics, err.Diagnostic(fileID))
	}
	return diagnostics
}
