package errors

import "exprparser/internal/syntax"

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// LabelStyle marks the label that explains a diagnostic.
type LabelStyle int

const (
	LabelPrimary LabelStyle = iota
)

// Label attaches a message to a byte range of a file.
type Label struct {
	Style   LabelStyle
	FileID  string
	Range   syntax.TextRange
	Message string
}

// Suggestion represents a suggested fix
type Suggestion struct {
	Message     string           // Description of the suggestion
	Replacement string           // Suggested replacement text (optional)
	Range       syntax.TextRange // Range the replacement applies to (optional)
}

// Diagnostic is a renderer-independent description of a problem in the
// source. The Reporter prints it for terminals; the language server maps it
// onto LSP diagnostics.
type Diagnostic struct {
	Level       ErrorLevel
	Code        string
	Message     string
	Labels      []Label
	Suggestions []Suggestion
	Notes       []string
	HelpText    string
}

// PrimaryLabel returns the first primary label, if any.
func (d Diagnostic) PrimaryLabel() (Label, bool) {
	for _, l := range d.Labels {
		if l.Style == LabelPrimary {
			return l, true
		}
	}
	return Label{}, false
}

// DiagnosticBuilder provides a fluent interface for creating diagnostics
type DiagnosticBuilder struct {
	d Diagnostic
}

// NewError starts an error-level diagnostic
func NewError(code, message string) *DiagnosticBuilder {
	return &DiagnosticBuilder{d: Diagnostic{Level: Error, Code: code, Message: message}}
}

// WithPrimaryLabel marks the range the diagnostic is about
func (b *DiagnosticBuilder) WithPrimaryLabel(fileID string, r syntax.TextRange, message string) *DiagnosticBuilder {
	b.d.Labels = append(b.d.Labels, Label{Style: LabelPrimary, FileID: fileID, Range: r, Message: message})
	return b
}

// WithSuggestion adds a suggestion to the diagnostic
func (b *DiagnosticBuilder) WithSuggestion(message string) *DiagnosticBuilder {
	b.d.Suggestions = append(b.d.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *DiagnosticBuilder) WithReplacement(message, replacement string, r syntax.TextRange) *DiagnosticBuilder {
	b.d.Suggestions = append(b.d.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Range:       r,
	})
	return b
}

// WithNote adds a note to the diagnostic
func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.d.Notes = append(b.d.Notes, note)
	return b
}

// WithHelp adds help text to the diagnostic
func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.d.HelpText = help
	return b
}

// Build returns the completed diagnostic
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.d
}
