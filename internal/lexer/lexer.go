package lexer

import (
	"fmt"
	"iter"

	plexer "github.com/alecthomas/participle/v2/lexer"

	"exprparser/internal/syntax"
)

// Definition is the rule table. Rules are tried in order and the first
// match wins; the trailing Error rule matches any single character, so every
// input is covered.
var Definition = plexer.MustSimple([]plexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \n]+`},
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Add", Pattern: `\+`},
	{Name: "Sub", Pattern: `-`},
	{Name: "Mul", Pattern: `\*`},
	{Name: "Div", Pattern: `/`},
	{Name: "Error", Pattern: `(?s).`},
})

var kindByType = buildKindTable()

func buildKindTable() map[plexer.TokenType]syntax.SyntaxKind {
	kinds := map[string]syntax.SyntaxKind{
		"Whitespace": syntax.Whitespace,
		"Number":     syntax.Number,
		"Add":        syntax.Add,
		"Sub":        syntax.Sub,
		"Mul":        syntax.Mul,
		"Div":        syntax.Div,
		"Error":      syntax.Error,
	}

	table := make(map[plexer.TokenType]syntax.SyntaxKind, len(kinds))
	for name, typ := range Definition.Symbols() {
		if kind, ok := kinds[name]; ok {
			table[typ] = kind
		}
	}
	if len(table) != len(kinds) {
		panic(fmt.Errorf("lexer rules and syntax kinds are out of sync: %d of %d mapped", len(table), len(kinds)))
	}
	return table
}

// Lexeme is a classified slice of the input.
type Lexeme struct {
	Kind  syntax.SyntaxKind
	Text  string
	Range syntax.TextRange
}

// Lexer produces lexemes one at a time with a single lexeme of lookahead.
type Lexer struct {
	lex    plexer.Lexer
	peeked *Lexeme
	done   bool
}

// New starts scanning input from the beginning.
func New(input string) *Lexer {
	lex, err := Definition.LexString("", input)
	if err != nil {
		panic(fmt.Errorf("failed to start lexer: %w", err))
	}
	return &Lexer{lex: lex}
}

// Peek returns the next lexeme without consuming it.
func (l *Lexer) Peek() (Lexeme, bool) {
	if l.peeked == nil && !l.done {
		lx, ok := l.scan()
		if !ok {
			l.done = true
		} else {
			l.peeked = &lx
		}
	}
	if l.peeked == nil {
		return Lexeme{}, false
	}
	return *l.peeked, true
}

// Next consumes and returns the next lexeme. It reports false once the input
// is exhausted.
func (l *Lexer) Next() (Lexeme, bool) {
	lx, ok := l.Peek()
	l.peeked = nil
	return lx, ok
}

func (l *Lexer) scan() (Lexeme, bool) {
	tok, err := l.lex.Next()
	if err != nil {
		// Unreachable: the Error rule accepts any character.
		panic(fmt.Errorf("lexer rejected input: %w", err))
	}
	if tok.EOF() {
		return Lexeme{}, false
	}
	return Lexeme{
		Kind:  kindByType[tok.Type],
		Text:  tok.Value,
		Range: syntax.NewRange(tok.Pos.Offset, len(tok.Value)),
	}, true
}

// All yields every lexeme of input. Each iteration rescans from the start.
func All(input string) iter.Seq[Lexeme] {
	return func(yield func(Lexeme) bool) {
		l := New(input)
		for {
			lx, ok := l.Next()
			if !ok || !yield(lx) {
				return
			}
		}
	}
}

// Tokenize returns every lexeme of input.
func Tokenize(input string) []Lexeme {
	var out []Lexeme
	for lx := range All(input) {
		out = append(out, lx)
	}
	return out
}
