package parser

import (
	"time"

	"exprparser/internal/errors"
	"exprparser/internal/lexer"
	"exprparser/internal/syntax"
)

// Parser turns an input string into a lossless syntax tree. Errors never
// stop a parse: offending characters become Error leaves and are recorded.
type Parser struct {
	input   string
	lexer   *lexer.Lexer
	builder *syntax.Builder
	errors  []errors.SyntaxError
	config  *ParserConfig

	lexemes int
	nodes   int
}

func New(input string, opts ...ParserOpt) *Parser {
	config := &ParserConfig{}
	for _, opt := range opts {
		opt(config)
	}

	return &Parser{
		input:   input,
		lexer:   lexer.New(input),
		builder: syntax.NewBuilder(),
		config:  config,
	}
}

// Parse consumes the parser and returns the finished tree with its errors.
func (p *Parser) Parse() *ParseResult {
	var start time.Time
	if p.config.telemetry {
		start = time.Now()
	}

	p.startNode(syntax.Root)

	p.skipWhitespace()
	p.exprBP(0)
	p.skipWhitespace()

	p.builder.FinishNode()

	result := &ParseResult{
		green:  p.builder.Finish(),
		errors: p.errors,
	}

	if p.config.telemetry {
		result.Telemetry = &ParseTelemetry{
			LexemeCount: p.lexemes,
			NodeCount:   p.nodes,
			ErrorCount:  len(p.errors),
			ParseTime:   time.Since(start),
		}
	}

	return result
}

func (p *Parser) exprBP(minBP uint8) {
	checkpoint := p.builder.Checkpoint()

	// Operand: anything but a number is skipped and reported, whitespace
	// included, since leading whitespace was already consumed by the caller.
	for {
		lx, ok := p.lexer.Peek()
		if !ok {
			p.errorAtEnd(syntax.Number)
			return
		}
		if lx.Kind == syntax.Number {
			p.bump()
			break
		}
		p.errorAtCurrent(lx, syntax.Number)
		p.eat(syntax.Error)
	}

	p.skipWhitespace()

	for {
		op, ok := p.operator()
		if !ok {
			return
		}

		leftBP, rightBP := infixBP(op)
		if leftBP < minBP {
			return
		}

		// The operation node is opened only once the operator is known to
		// bind here, so an early return never leaves a half-built node.
		p.builder.StartNodeAt(checkpoint, syntax.Operation)
		p.nodes++

		// The operator and any whitespace after it.
		p.bump()
		p.skipWhitespace()

		p.exprBP(rightBP)

		p.builder.FinishNode()
	}
}

// operator skips to the next operator without consuming it. It reports
// false at the end of the input.
func (p *Parser) operator() (syntax.Op, bool) {
	for {
		lx, ok := p.lexer.Peek()
		if !ok {
			return 0, false
		}
		if op, isOp := syntax.OpFromKind(lx.Kind); isOp {
			return op, true
		}
		if lx.Kind.IsTrivia() {
			p.bump()
			continue
		}
		p.errorAtCurrent(lx, syntax.OperatorKinds()...)
		p.eat(syntax.Error)
	}
}

func infixBP(op syntax.Op) (uint8, uint8) {
	switch op {
	case syntax.OpAdd, syntax.OpSub:
		return 1, 2
	default:
		return 3, 4
	}
}
