// Package grammar is a strict, non-recovering grammar for expressions built
// with participle. It rejects any input the recovering parser would have to
// repair, and serves as the reference for canonical formatting.
package grammar

import plexer "github.com/alecthomas/participle/v2/lexer"

// Expression is a chain of terms joined by additive operators.
type Expression struct {
	Pos plexer.Position

	Head *Term      `@@`
	Tail []*AddTerm `@@*`
}

type AddTerm struct {
	Pos plexer.Position

	Op   string `@("+" | "-")`
	Term *Term  `@@`
}

// Term is a chain of literals joined by multiplicative operators.
type Term struct {
	Pos plexer.Position

	Head *Literal     `@@`
	Tail []*MulFactor `@@*`
}

type MulFactor struct {
	Pos plexer.Position

	Op      string   `@("*" | "/")`
	Literal *Literal `@@`
}

type Literal struct {
	Pos plexer.Position

	Value string `@Number`
}
