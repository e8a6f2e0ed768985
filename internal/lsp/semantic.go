package lsp

import (
	"exprparser/internal/syntax"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

func collectSemanticTokens(doc *document) []SemanticToken {
	var tokens []SemanticToken

	for _, el := range doc.result.Syntax().Preorder() {
		tok, ok := el.(*syntax.Token)
		if !ok {
			continue
		}

		var tokenType string
		switch {
		case tok.Kind() == syntax.Number:
			tokenType = "number"
		case tok.Kind().IsOperator():
			tokenType = "operator"
		default:
			continue
		}

		r := tok.TextRange()
		line, startChar := doc.index.LSPPosition(r.Start)
		_, endChar := doc.index.LSPPosition(r.End)
		tokens = append(tokens, SemanticToken{
			Line:      line,
			StartChar: startChar,
			Length:    endChar - startChar,
			TokenType: indexOf(tokenType, SemanticTokenTypes),
		})
	}

	return tokens
}

// encodeSemanticTokens encodes tokens into LSP wire format (using delta-line,
// delta-start compression)
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
