package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

// NewProtocolHandler wires the handler's methods into a glsp protocol
// handler.
func NewProtocolHandler(h *Handler) *protocol.Handler {
	return &protocol.Handler{
		Initialize:                     h.Initialize,
		Initialized:                    h.Initialized,
		Shutdown:                       h.Shutdown,
		SetTrace:                       h.SetTrace,
		TextDocumentDidOpen:            h.TextDocumentDidOpen,
		TextDocumentDidClose:           h.TextDocumentDidClose,
		TextDocumentDidChange:          h.TextDocumentDidChange,
		TextDocumentHover:              h.TextDocumentHover,
		TextDocumentSemanticTokensFull: h.TextDocumentSemanticTokensFull,
	}
}

// RunStdio serves the language server over standard input/output until the
// client disconnects.
func RunStdio(version string) error {
	h := NewHandler(version)
	s := server.NewServer(NewProtocolHandler(h), serverName, false)

	h.log.Infof("starting %s language server %s", serverName, version)
	return s.RunStdio()
}
