package parser

import (
	"slices"

	"exprparser/internal/errors"
	"exprparser/internal/lexer"
	"exprparser/internal/syntax"
)

func (p *Parser) startNode(kind syntax.SyntaxKind) {
	p.builder.StartNode(kind)
	p.nodes++
}

// bump consumes the next lexeme as a token of its own kind.
func (p *Parser) bump() {
	lx, _ := p.lexer.Next()
	p.lexemes++
	p.builder.Token(lx.Kind, lx.Text)
}

// eat consumes the next lexeme as a token of the given kind.
func (p *Parser) eat(kind syntax.SyntaxKind) {
	lx, _ := p.lexer.Next()
	p.lexemes++
	p.builder.Token(kind, lx.Text)
}

func (p *Parser) skipWhitespace() {
	for {
		lx, ok := p.lexer.Peek()
		if !ok || !lx.Kind.IsTrivia() {
			return
		}
		p.bump()
	}
}

func (p *Parser) errorAtCurrent(found lexer.Lexeme, expected ...syntax.SyntaxKind) {
	p.errors = append(p.errors, errors.UnexpectedToken(found.Kind, slices.Clone(expected), found.Range))
}

func (p *Parser) errorAtEnd(expected ...syntax.SyntaxKind) {
	p.errors = append(p.errors, errors.UnexpectedEnd(expected, len(p.input)))
}
