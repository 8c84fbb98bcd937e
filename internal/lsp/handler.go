package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"layer/internal/ast"
	"layer/internal/compiler"
)

// SemanticTokenTypes is the legend advertised to clients; token type
// indices refer to this slice.
var SemanticTokenTypes = []string{
	"keyword",
	"variable",
	"number",
	"string",
	"operator",
	"comment",
}

var SemanticTokenModifiers = []string{
	"declaration",
	"readonly",
}

// LayerHandler implements the LSP server handlers for Layer documents. The
// client sends full document text on every change.
type LayerHandler struct {
	mu      sync.RWMutex
	content map[string]string
	asts    map[string]*ast.Program
	log     commonlog.Logger
}

// NewLayerHandler creates and returns a new LayerHandler instance
func NewLayerHandler() *LayerHandler {
	return &LayerHandler{
		content: make(map[string]string),
		asts:    make(map[string]*ast.Program),
		log:     commonlog.GetLogger("layer.lsp"),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *LayerHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	h.log.Info("initialize")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities
func (h *LayerHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	h.log.Info("initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *LayerHandler) Shutdown(ctx *glsp.Context) error {
	h.log.Info("shutdown")
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *LayerHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	h.log.Debugf("opened %s", params.TextDocument.URI)
	h.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *LayerHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	h.log.Debugf("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, params.TextDocument.URI)
	delete(h.asts, params.TextDocument.URI)

	return nil
}

// TextDocumentDidChange handles file change notifications from the editor
func (h *LayerHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	h.log.Debugf("changed %s", params.TextDocument.URI)

	text, ok := lastFullText(params.ContentChanges)
	if !ok {
		return fmt.Errorf("no full-text change for %s", params.TextDocument.URI)
	}

	h.update(ctx, params.TextDocument.URI, text)
	return nil
}

// TextDocumentCompletion offers keywords and the variables declared in the document
func (h *LayerHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	items := keywordCompletions()

	h.mu.RLock()
	program := h.asts[params.TextDocument.URI]
	h.mu.RUnlock()

	items = append(items, variableCompletions(program)...)

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *LayerHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	rawURI := params.TextDocument.URI

	h.mu.RLock()
	text, ok := h.content[rawURI]
	h.mu.RUnlock()

	if !ok {
		path, err := uriToPath(rawURI)
		if err != nil {
			return nil, fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", path, err)
		}
		text = string(data)
		h.update(ctx, rawURI, text)
	}

	tokens := collectSemanticTokens(rawURI, text)
	return &protocol.SemanticTokens{Data: encodeSemanticTokens(tokens)}, nil
}

// update stores text, re-checks it and publishes the resulting diagnostics.
// An empty diagnostic list clears earlier markers in the client.
func (h *LayerHandler) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	program, err := compiler.Check(uri, text)

	h.mu.Lock()
	h.content[uri] = text
	if program != nil {
		h.asts[uri] = program
	}
	h.mu.Unlock()

	diagnostics := ConvertCompilerErrors(compiler.Diagnostics(err))
	h.log.Debugf("%s: %d diagnostics", uri, len(diagnostics))
	sendDiagnosticNotification(ctx, uri, diagnostics)
}

func lastFullText(changes []any) (string, bool) {
	text, ok := "", false
	for _, change := range changes {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text, ok = c.Text, true
		case *protocol.TextDocumentContentChangeEventWhole:
			text, ok = c.Text, true
		case protocol.TextDocumentContentChangeEvent:
			text, ok = c.Text, c.Range == nil
		case *protocol.TextDocumentContentChangeEvent:
			text, ok = c.Text, c.Range == nil
		}
	}
	return text, ok
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
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
