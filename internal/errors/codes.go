package errors

// Error codes for the expression toolchain.
// These codes appear in rendered diagnostics and in LSP diagnostics so that
// every message can be identified independently of its wording.
//
// Error code ranges:
// E0100-E0199: Parser errors
// E0200-E0299: Evaluation errors
// E0900-E0999: Reserved for tooling errors

const (
	// Parser errors (E0100-E0199)

	// E0100: A token of the wrong kind sits where another kind was required
	ErrorUnexpectedToken = "E0100"

	// E0101: Input ended where a token was still required
	ErrorUnexpectedEnd = "E0101"

	// Evaluation errors (E0200-E0299)

	// E0200: Right-hand side of a division evaluated to zero
	ErrorDivisionByZero = "E0200"

	// E0201: Result does not fit an unsigned 64-bit integer
	ErrorOverflow = "E0201"

	// E0202: Number literal does not fit an unsigned 64-bit integer
	ErrorLiteralTooLarge = "E0202"
)

// GetErrorDescription returns a human-readable description for an error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedToken:
		return "A token of the wrong kind appears where another was required"
	case ErrorUnexpectedEnd:
		return "Input ended before the expression was complete"
	case ErrorDivisionByZero:
		return "Division by zero"
	case ErrorOverflow:
		return "Result does not fit an unsigned 64-bit integer"
	case ErrorLiteralTooLarge:
		return "Number literal does not fit an unsigned 64-bit integer"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0200" && code < "E0300":
		return "Evaluation"
	case code >= "E0900" && code < "E1000":
		return "Tooling"
	default:
		return "Unknown"
	}
}
