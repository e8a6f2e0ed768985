package lsp

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"exprparser/internal/ast"
	"exprparser/internal/syntax"
)

// TextDocumentHover shows the value of the innermost expression under the
// cursor, or the whole expression when the cursor is outside any.
func (h *Handler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, err := h.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	offset := doc.index.Offset(params.Position.Line, params.Position.Character)
	expr, ok := exprAt(doc, offset)
	if !ok {
		return nil, nil
	}

	text := strings.TrimSpace(expr.Text())
	value, err := ast.EvalExpr(expr)

	var contents string
	switch {
	case err == nil:
		contents = fmt.Sprintf("```\n%s = %d\n```", text, value)
	case stderrors.Is(err, ast.ErrNoValue):
		return nil, nil
	default:
		contents = fmt.Sprintf("```\n%s\n```\n%s", text, err)
	}

	r := expr.TextRange()
	rng := toRange(doc.index, r.Start, r.End)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: contents,
		},
		Range: &rng,
	}, nil
}

// exprAt finds the innermost expression around the character at offset.
func exprAt(doc *document, offset int) (ast.Expr, bool) {
	root := doc.result.Syntax()
	if tok, ok := tokenUnder(root, offset); ok {
		if e, ok := ast.CastExpr(tok); ok {
			return e, true
		}
		for n := range syntax.Ancestors(tok) {
			if e, ok := ast.CastExpr(n); ok {
				return e, true
			}
		}
	}
	return doc.result.Root().Expr()
}

// tokenUnder returns the token covering the character at offset. Past the
// last character it falls back to the token ending there.
func tokenUnder(root *syntax.Node, offset int) (*syntax.Token, bool) {
	for _, el := range root.Preorder() {
		tok, ok := el.(*syntax.Token)
		if !ok {
			continue
		}
		if r := tok.TextRange(); r.Start <= offset && offset < r.End {
			return tok, true
		}
	}
	return root.TokenAt(offset)
}
