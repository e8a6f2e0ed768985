package lsp

import (
	stderrors "errors"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"exprparser/internal/errors"
)

// collectDiagnostics reports the syntax errors of a document followed by its
// evaluation failure, if any.
func collectDiagnostics(doc *document) []protocol.Diagnostic {
	diagnostics := ConvertDiagnostics(doc.index, doc.result.Diagnostics(""))

	_, err := doc.result.Eval()
	var evalErr *errors.EvalError
	if stderrors.As(err, &evalErr) {
		diagnostics = append(diagnostics, ConvertDiagnostics(doc.index, []errors.Diagnostic{evalErr.Diagnostic("")})...)
	}

	return diagnostics
}

// ConvertDiagnostics transforms diagnostics into LSP diagnostics for IDE display.
// Byte ranges become 0-based line / UTF-16 character positions.
func ConvertDiagnostics(index *errors.LineIndex, diagnostics []errors.Diagnostic) []protocol.Diagnostic {
	converted := make([]protocol.Diagnostic, 0, len(diagnostics))

	for _, d := range diagnostics {
		label, ok := d.PrimaryLabel()
		if !ok {
			continue
		}

		message := d.Message
		if label.Message != "" {
			message += ": " + label.Message
		}
		if d.HelpText != "" {
			message += "\n" + d.HelpText
		}

		converted = append(converted, protocol.Diagnostic{
			Range:    toRange(index, label.Range.Start, label.Range.End),
			Severity: ptrSeverity(severity(d.Level)),
			Code:     &protocol.IntegerOrString{Value: d.Code},
			Source:   ptrString("expr"),
			Message:  message,
		})
	}

	return converted
}

func toRange(index *errors.LineIndex, start, end int) protocol.Range {
	startLine, startChar := index.LSPPosition(start)
	endLine, endChar := index.LSPPosition(end)
	return protocol.Range{
		Start: protocol.Position{Line: startLine, Character: startChar},
		End:   protocol.Position{Line: endLine, Character: endChar},
	}
}

func severity(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case errors.Warning:
		return protocol.DiagnosticSeverityWarning
	case errors.Note:
		return protocol.DiagnosticSeverityInformation
	case errors.Help:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityError
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
