package errors

import (
	"sort"
	"unicode/utf16"
	"unicode/utf8"
)

// LineIndex maps byte offsets in a source text to line/column positions.
type LineIndex struct {
	source     string
	lineStarts []int
}

// NewLineIndex indexes the line starts of source.
func NewLineIndex(source string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{source: source, lineStarts: starts}
}

func (li *LineIndex) LineCount() int {
	return len(li.lineStarts)
}

// Line returns the text of a 1-based line without its newline.
func (li *LineIndex) Line(line int) string {
	if line < 1 || line > len(li.lineStarts) {
		return ""
	}
	start := li.lineStarts[line-1]
	end := len(li.source)
	if line < len(li.lineStarts) {
		end = li.lineStarts[line] - 1
	}
	return li.source[start:end]
}

func (li *LineIndex) clamp(offset int) int {
	return min(max(offset, 0), len(li.source))
}

func (li *LineIndex) lineOf(offset int) int {
	// index of the last line start <= offset
	return sort.Search(len(li.lineStarts), func(i int) bool {
		return li.lineStarts[i] > offset
	}) - 1
}

// LineCol returns the 1-based line and 1-based column (counted in
// characters) of a byte offset.
func (li *LineIndex) LineCol(offset int) (line, column int) {
	offset = li.clamp(offset)
	l := li.lineOf(offset)
	prefix := li.source[li.lineStarts[l]:offset]
	return l + 1, utf8.RuneCountInString(prefix) + 1
}

// LSPPosition returns the 0-based line and the 0-based character offset in
// UTF-16 code units, as the language server protocol expects.
func (li *LineIndex) LSPPosition(offset int) (line, character uint32) {
	offset = li.clamp(offset)
	l := li.lineOf(offset)
	units := 0
	for _, r := range li.source[li.lineStarts[l]:offset] {
		units += utf16.RuneLen(r)
	}
	return uint32(l), uint32(units)
}

// Offset converts an LSP position back to a byte offset. Positions past the
// end of a line clamp to the line end.
func (li *LineIndex) Offset(line, character uint32) int {
	if int(line) >= len(li.lineStarts) {
		return len(li.source)
	}
	start := li.lineStarts[line]
	end := len(li.source)
	if int(line)+1 < len(li.lineStarts) {
		end = li.lineStarts[line+1] - 1
	}

	units := uint32(0)
	for i, r := range li.source[start:end] {
		if units >= character {
			return start + i
		}
		units += uint32(utf16.RuneLen(r))
	}
	return end
}
