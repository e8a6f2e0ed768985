package errors

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// ErrorReporter renders diagnostics against the source they refer to
type ErrorReporter struct {
	filename string
	source   string
	index    *LineIndex
}

// NewErrorReporter creates a new error reporter for a file
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		source:   source,
		index:    NewLineIndex(source),
	}
}

// FormatDiagnostic formats a diagnostic with Rust-like styling and suggestions
func (er *ErrorReporter) FormatDiagnostic(d Diagnostic) string {
	var result strings.Builder

	// Color setup
	levelColor := er.getLevelColor(d.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// Header: error[E0100]: message
	if d.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(d.Level)), d.Code, d.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(d.Level)), d.Message))
	}

	label, ok := d.PrimaryLabel()
	if !ok {
		result.WriteString("\n")
		return result.String()
	}

	filename := label.FileID
	if filename == "" {
		filename = er.filename
	}

	line, column := er.index.LineCol(label.Range.Start)
	lineNumberWidth := er.getLineNumberWidth(line + 1)
	indent := strings.Repeat(" ", lineNumberWidth)

	// Location line: --> filename:line:column
	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), filename, line, column))

	// Separator line
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	// Context line before if available
	if line > 1 {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", lineNumberWidth, line-1)),
			dim("│"),
			er.index.Line(line-1)))
	}

	// Main error line
	lineContent := er.index.Line(line)
	result.WriteString(fmt.Sprintf("%s %s %s\n",
		bold(fmt.Sprintf("%*d", lineNumberWidth, line)),
		dim("│"),
		lineContent))

	// Error marker line, clipped to the end of the line
	rest := lineContent[min(len(lineContent), utf8RuneOffset(lineContent, column-1)):]
	spanText := er.source[er.clamp(label.Range.Start):er.clamp(label.Range.End)]
	if i := strings.IndexByte(spanText, '\n'); i >= 0 {
		spanText = spanText[:i]
	}
	length := min(utf8.RuneCountInString(spanText), utf8.RuneCountInString(rest))
	marker := er.createMarker(column, length, d.Level)
	if label.Message != "" {
		marker += " " + levelColor(label.Message)
	}
	result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), marker))

	// Context line after if available
	if line < er.index.LineCount() && er.index.Line(line+1) != "" {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", lineNumberWidth, line+1)),
			dim("│"),
			er.index.Line(line+1)))
	}

	// Add suggestions
	if len(d.Suggestions) > 0 {
		result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))
		suggestionColor := color.New(color.FgCyan).SprintFunc()
		for i, suggestion := range d.Suggestions {
			if i == 0 {
				result.WriteString(fmt.Sprintf("%s %s %s: %s\n",
					indent, suggestionColor("help"), suggestionColor("try"), suggestion.Message))
			} else {
				result.WriteString(fmt.Sprintf("%s %s %s\n",
					indent, suggestionColor("    "), suggestion.Message))
			}

			// If suggestion has replacement text, show it
			if suggestion.Replacement != "" {
				result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))
				replacement := strings.ReplaceAll(suggestion.Replacement, "\n", fmt.Sprintf("\n%s %s ", indent, dim("│")))
				result.WriteString(fmt.Sprintf("%s %s %s\n",
					indent, suggestionColor("│"), suggestionColor(replacement)))
			}
		}
	}

	// Add notes
	for _, note := range d.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), noteColor("note:"), note))
	}

	// Add help text
	if d.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), helpColor("help:"), d.HelpText))
	}

	result.WriteString("\n")
	return result.String()
}

// FormatDiagnostics formats every diagnostic in order
func (er *ErrorReporter) FormatDiagnostics(diagnostics []Diagnostic) string {
	var result strings.Builder
	for _, d := range diagnostics {
		result.WriteString(er.FormatDiagnostic(d))
	}
	return result.String()
}

func (er *ErrorReporter) clamp(offset int) int {
	return min(max(offset, 0), len(er.source))
}

// getLevelColor returns the appropriate color function for an error level
func (er *ErrorReporter) getLevelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Error:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// createMarker creates the underline marker for errors
func (er *ErrorReporter) createMarker(column, length int, level ErrorLevel) string {
	if length <= 0 {
		length = 1
	}

	spaces := strings.Repeat(" ", max(0, column-1))

	var markerColor func(...interface{}) string
	switch level {
	case Warning:
		markerColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	default:
		markerColor = color.New(color.FgRed, color.Bold).SprintFunc()
	}

	marker := strings.Repeat("^", length)
	return spaces + markerColor(marker)
}

// getLineNumberWidth calculates the width needed for line numbers
func (er *ErrorReporter) getLineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3 // minimum width for visual alignment
	}
	return width
}

// utf8RuneOffset returns the byte offset of the n-th rune of s.
func utf8RuneOffset(s string, n int) int {
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}
