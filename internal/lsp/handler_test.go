package lsp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"exprparser/internal/lsp"
)

const testURI = "file:///tmp/test.expr"

// recorder captures published diagnostics.
type recorder struct {
	published []*protocol.PublishDiagnosticsParams
}

func (r *recorder) context() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method == protocol.ServerTextDocumentPublishDiagnostics {
				r.published = append(r.published, params.(*protocol.PublishDiagnosticsParams))
			}
		},
	}
}

func (r *recorder) last(t *testing.T) *protocol.PublishDiagnosticsParams {
	t.Helper()
	require.NotEmpty(t, r.published, "no diagnostics were published")
	return r.published[len(r.published)-1]
}

func open(t *testing.T, h *lsp.Handler, ctx *glsp.Context, text string) {
	t.Helper()
	require.NoError(t, h.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: testURI, LanguageID: "expr", Version: 1, Text: text},
	}))
}

func TestInitializeAdvertisesCapabilities(t *testing.T) {
	h := lsp.NewHandler("test")

	result, err := h.Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	init, ok := result.(*protocol.InitializeResult)
	require.True(t, ok)
	assert.Equal(t, true, init.Capabilities.HoverProvider)
	require.NotNil(t, init.ServerInfo)
	assert.Equal(t, "expr", init.ServerInfo.Name)

	sync, ok := init.Capabilities.TextDocumentSync.(*protocol.TextDocumentSyncOptions)
	require.True(t, ok)
	assert.Equal(t, protocol.TextDocumentSyncKindFull, *sync.Change)

	tokens, ok := init.Capabilities.SemanticTokensProvider.(*protocol.SemanticTokensOptions)
	require.True(t, ok)
	assert.Equal(t, lsp.SemanticTokenTypes, tokens.Legend.TokenTypes)
}

func TestDidOpenPublishesSyntaxDiagnostics(t *testing.T) {
	h := lsp.NewHandler("test")
	rec := &recorder{}

	open(t, h, rec.context(), "1 +\n2 $")

	params := rec.last(t)
	assert.Equal(t, testURI, params.URI)
	require.Len(t, params.Diagnostics, 1)

	d := params.Diagnostics[0]
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 1, Character: 2},
		End:   protocol.Position{Line: 1, Character: 3},
	}, d.Range)
	assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
	assert.Equal(t, "E0100", d.Code.Value)
	assert.Contains(t, d.Message, "found an unrecognized character")
}

func TestDidOpenPublishesEvaluationFailure(t *testing.T) {
	h := lsp.NewHandler("test")
	rec := &recorder{}

	open(t, h, rec.context(), "5 + 4/0")

	d := rec.last(t).Diagnostics
	require.Len(t, d, 1)
	assert.Equal(t, "E0200", d[0].Code.Value)
	assert.Equal(t, uint32(4), d[0].Range.Start.Character)
	assert.Equal(t, uint32(7), d[0].Range.End.Character)
}

func TestDidOpenCleanDocumentPublishesEmptyList(t *testing.T) {
	h := lsp.NewHandler("test")
	rec := &recorder{}

	open(t, h, rec.context(), "1 + 2")

	assert.Empty(t, rec.last(t).Diagnostics)
	assert.NotNil(t, rec.last(t).Diagnostics, "an empty list clears stale diagnostics")
}

func TestDidChangeAppliesEdits(t *testing.T) {
	h := lsp.NewHandler("test")
	rec := &recorder{}
	ctx := rec.context()

	open(t, h, ctx, "1 + x")
	// The stray character, then the missing right operand.
	require.Len(t, rec.last(t).Diagnostics, 2)

	// Replace "x" with "2".
	require.NoError(t, h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEvent{
				Range: &protocol.Range{
					Start: protocol.Position{Line: 0, Character: 4},
					End:   protocol.Position{Line: 0, Character: 5},
				},
				Text: "2",
			},
		},
	}))
	assert.Empty(t, rec.last(t).Diagnostics)

	hover := hoverAt(t, h, 0, 0)
	require.NotNil(t, hover)
	assert.Contains(t, markup(t, hover), "1")

	// Whole-document replacement.
	require.NoError(t, h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                3,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: "1-"},
		},
	}))
	d := rec.last(t).Diagnostics
	require.Len(t, d, 1)
	assert.Equal(t, "E0101", d[0].Code.Value)
}

func TestDidChangeUnknownDocument(t *testing.T) {
	h := lsp.NewHandler("test")

	err := h.TextDocumentDidChange(&glsp.Context{}, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: "file:///missing"},
		},
	})
	assert.Error(t, err)
}

func TestDidCloseClearsDiagnostics(t *testing.T) {
	h := lsp.NewHandler("test")
	rec := &recorder{}
	ctx := rec.context()

	open(t, h, ctx, "1 $")
	require.NoError(t, h.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	}))

	assert.Empty(t, rec.last(t).Diagnostics)
	_, err := h.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	assert.Error(t, err)
}

func hoverAt(t *testing.T, h *lsp.Handler, line, char uint32) *protocol.Hover {
	t.Helper()
	hover, err := h.TextDocumentHover(&glsp.Context{}, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: line, Character: char},
		},
	})
	require.NoError(t, err)
	return hover
}

func markup(t *testing.T, hover *protocol.Hover) string {
	t.Helper()
	content, ok := hover.Contents.(protocol.MarkupContent)
	require.True(t, ok)
	return content.Value
}

func TestHover(t *testing.T) {
	h := lsp.NewHandler("test")
	open(t, h, &glsp.Context{}, "1 + 2 * 3")

	// On the asterisk: the multiplication.
	hover := hoverAt(t, h, 0, 6)
	require.NotNil(t, hover)
	assert.Equal(t, "```\n2 * 3 = 6\n```", markup(t, hover))
	assert.Equal(t, uint32(4), hover.Range.Start.Character)
	assert.Equal(t, uint32(9), hover.Range.End.Character)

	// On the plus sign: the whole expression.
	hover = hoverAt(t, h, 0, 2)
	require.NotNil(t, hover)
	assert.Equal(t, "```\n1 + 2 * 3 = 7\n```", markup(t, hover))

	// On a number: its own value.
	hover = hoverAt(t, h, 0, 8)
	require.NotNil(t, hover)
	assert.Equal(t, "```\n3 = 3\n```", markup(t, hover))
}

func TestHoverShowsFailure(t *testing.T) {
	h := lsp.NewHandler("test")
	open(t, h, &glsp.Context{}, "8/0")

	hover := hoverAt(t, h, 0, 1)
	require.NotNil(t, hover)
	assert.Contains(t, markup(t, hover), "attempt to divide by zero")
}

func TestHoverWithoutValue(t *testing.T) {
	h := lsp.NewHandler("test")
	open(t, h, &glsp.Context{}, "1 +")

	assert.Nil(t, hoverAt(t, h, 0, 2))
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	h := lsp.NewHandler("test")
	open(t, h, &glsp.Context{}, "12 + x\n 3*45")

	tokens, err := h.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.Len(t, decoded, 5)

	assertToken(t, &decoded[0], 1, 1, 2, "number")
	assertToken(t, &decoded[1], 1, 4, 1, "operator")
	assertToken(t, &decoded[2], 2, 2, 1, "number")
	assertToken(t, &decoded[3], 2, 3, 1, "operator")
	assertToken(t, &decoded[4], 2, 4, 2, "number")
}

type DecodedToken struct {
	Index  int
	Line   uint32
	Char   uint32
	Length uint32
	Type   string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		decoded = append(decoded, DecodedToken{
			Index:  i / 5,
			Line:   line + 1, // LSP uses 0-based indexing
			Char:   char + 1, // LSP uses 0-based indexing
			Length: raw[i+2],
			Type:   lsp.SemanticTokenTypes[raw[i+3]],
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string) {
	t.Helper()
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
}
