package syntax

import "fmt"

// TextRange is a half-open byte range [Start, End) into the parsed text.
type TextRange struct {
	Start int
	End   int
}

// NewRange builds the range covering length bytes starting at offset.
func NewRange(offset, length int) TextRange {
	return TextRange{Start: offset, End: offset + length}
}

// EmptyRange returns the zero-width range at offset.
func EmptyRange(offset int) TextRange {
	return TextRange{Start: offset, End: offset}
}

func (r TextRange) Len() int {
	return r.End - r.Start
}

func (r TextRange) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether offset lies inside r. The end offset is
// included so that a cursor placed right after a token still hits it.
func (r TextRange) Contains(offset int) bool {
	return r.Start <= offset && offset <= r.End
}

func (r TextRange) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}
