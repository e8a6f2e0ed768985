package lsp

import (
	"fmt"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"exprparser/internal/errors"
	"exprparser/internal/parser"
)

const serverName = "expr"

// Define the set of supported semantic token types, in legend order
var SemanticTokenTypes = []string{
	"number",
	"operator",
}

// No modifiers are reported; the legend still needs the list.
var SemanticTokenModifiers = []string{}

// document is one open text buffer and the parse of its current content.
type document struct {
	text   string
	result *parser.ParseResult
	index  *errors.LineIndex
}

func newDocument(text string) *document {
	return &document{
		text:   text,
		result: parser.ParseSource(text),
		index:  errors.NewLineIndex(text),
	}
}

// Handler implements the LSP server handlers for arithmetic expressions
type Handler struct {
	mu        sync.RWMutex
	documents map[protocol.DocumentUri]*document
	version   string
	log       commonlog.Logger
}

// NewHandler creates and returns a new Handler instance
func NewHandler(version string) *Handler {
	return &Handler{
		documents: make(map[protocol.DocumentUri]*document),
		version:   version,
		log:       commonlog.GetLogger("exprparser.lsp"),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	h.log.Info("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true), // notify on open/close events
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			HoverProvider: true,
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true), // support full-document semantic token requests
			},
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &h.version,
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	h.log.Info("LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *Handler) Shutdown(ctx *glsp.Context) error {
	h.log.Info("LSP Shutdown")
	return nil
}

func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen parses the opened buffer and publishes its diagnostics
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	h.log.Debugf("opened %s", uri)

	doc := newDocument(params.TextDocument.Text)

	h.mu.Lock()
	h.documents[uri] = doc
	h.mu.Unlock()

	publishDiagnostics(ctx, uri, collectDiagnostics(doc))
	return nil
}

// TextDocumentDidChange applies the edits in order and reparses the result
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	h.log.Debugf("changed %s", uri)

	h.mu.Lock()
	doc, ok := h.documents[uri]
	if !ok {
		h.mu.Unlock()
		return fmt.Errorf("document %s is not open", uri)
	}

	text := doc.text
	for _, change := range params.ContentChanges {
		switch change := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = change.Text
		case protocol.TextDocumentContentChangeEvent:
			text = applyChange(text, change)
		default:
			h.mu.Unlock()
			return fmt.Errorf("unsupported content change %T", change)
		}
	}

	doc = newDocument(text)
	h.documents[uri] = doc
	h.mu.Unlock()

	publishDiagnostics(ctx, uri, collectDiagnostics(doc))
	return nil
}

// TextDocumentDidClose forgets the buffer and clears its diagnostics
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	h.log.Debugf("closed %s", uri)

	h.mu.Lock()
	delete(h.documents, uri)
	h.mu.Unlock()

	publishDiagnostics(ctx, uri, []protocol.Diagnostic{})
	return nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *Handler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc, err := h.document(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tokens := collectSemanticTokens(doc)
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(tokens),
	}, nil
}

func (h *Handler) document(uri protocol.DocumentUri) (*document, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	doc, ok := h.documents[uri]
	if !ok {
		return nil, fmt.Errorf("document %s is not open", uri)
	}
	return doc, nil
}

// applyChange replaces the range of a ranged edit with its text.
func applyChange(text string, change protocol.TextDocumentContentChangeEvent) string {
	if change.Range == nil {
		return change.Text
	}
	index := errors.NewLineIndex(text)
	start := index.Offset(change.Range.Start.Line, change.Range.Start.Character)
	end := index.Offset(change.Range.End.Line, change.Range.End.Character)
	end = max(start, end)
	return text[:start] + change.Text + text[end:]
}

func publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
