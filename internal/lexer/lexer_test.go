package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exprparser/internal/syntax"
)

func TestLexerYieldsKindsTextAndRanges(t *testing.T) {
	l := New("1 + 2")

	expected := []Lexeme{
		{Kind: syntax.Number, Text: "1", Range: syntax.TextRange{Start: 0, End: 1}},
		{Kind: syntax.Whitespace, Text: " ", Range: syntax.TextRange{Start: 1, End: 2}},
		{Kind: syntax.Add, Text: "+", Range: syntax.TextRange{Start: 2, End: 3}},
		{Kind: syntax.Whitespace, Text: " ", Range: syntax.TextRange{Start: 3, End: 4}},
		{Kind: syntax.Number, Text: "2", Range: syntax.TextRange{Start: 4, End: 5}},
	}

	for i, want := range expected {
		got, ok := l.Next()
		require.True(t, ok, "lexeme %d", i)
		assert.Equal(t, want, got, "lexeme %d", i)
	}

	_, ok := l.Next()
	assert.False(t, ok)
	_, ok = l.Next()
	assert.False(t, ok, "exhausted lexer stays exhausted")
}

func TestSingleKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kinds []syntax.SyntaxKind
	}{
		{"nothing", "", nil},
		{"spaces", "    ", []syntax.SyntaxKind{syntax.Whitespace}},
		{"spaces and newlines", " \n \n", []syntax.SyntaxKind{syntax.Whitespace}},
		{"numbers", "1234567890", []syntax.SyntaxKind{syntax.Number}},
		{"operators", "+-*/", []syntax.SyntaxKind{syntax.Add, syntax.Sub, syntax.Mul, syntax.Div}},
		{"one error per character", "abc", []syntax.SyntaxKind{syntax.Error, syntax.Error, syntax.Error}},
		{"tab is not whitespace", "\t", []syntax.SyntaxKind{syntax.Error}},
		{"multibyte character", "é", []syntax.SyntaxKind{syntax.Error}},
		{"mixed", "12ab 3", []syntax.SyntaxKind{syntax.Number, syntax.Error, syntax.Error, syntax.Whitespace, syntax.Number}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var kinds []syntax.SyntaxKind
			for lx := range All(tt.input) {
				kinds = append(kinds, lx.Kind)
			}
			assert.Equal(t, tt.kinds, kinds)
		})
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := New("7*")

	first, ok := l.Peek()
	require.True(t, ok)
	again, ok := l.Peek()
	require.True(t, ok)
	assert.Equal(t, first, again)

	next, _ := l.Next()
	assert.Equal(t, first, next)

	op, ok := l.Next()
	require.True(t, ok)
	assert.Equal(t, syntax.Mul, op.Kind)

	_, ok = l.Peek()
	assert.False(t, ok)
}

func TestLexemesCoverInputWithoutGaps(t *testing.T) {
	inputs := []string{
		"",
		" 14 +26- 27 /  3 * 2 ",
		"abc1",
		"1 a+ 2",
		"héllo wörld 42\n",
		"\xff\xfe1",
	}

	for _, input := range inputs {
		var sb strings.Builder
		next := 0
		for lx := range All(input) {
			assert.Equal(t, next, lx.Range.Start, "gap before %q in %q", lx.Text, input)
			assert.Equal(t, lx.Text, input[lx.Range.Start:lx.Range.End])
			next = lx.Range.End
			sb.WriteString(lx.Text)
		}
		assert.Equal(t, len(input), next)
		assert.Equal(t, input, sb.String())
	}
}

func TestAllIsRestartable(t *testing.T) {
	seq := All("1+2")
	assert.Equal(t, Tokenize("1+2"), collect(seq))
	assert.Equal(t, Tokenize("1+2"), collect(seq))
}

func collect(seq func(func(Lexeme) bool)) []Lexeme {
	var out []Lexeme
	for lx := range seq {
		out = append(out, lx)
	}
	return out
}
