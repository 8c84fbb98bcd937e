// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"layer/internal/lsp"
)

const lsName = "layer"

var handler protocol.Handler

func main() {
	// Debug verbosity; logs go to stderr so stdout stays free for the protocol
	commonlog.Configure(1, nil)
	log := commonlog.GetLogger("layer.lsp.main")

	layerHandler := lsp.NewLayerHandler()

	handler = protocol.Handler{
		Initialize:                     layerHandler.Initialize,
		Initialized:                    layerHandler.Initialized,
		Shutdown:                       layerHandler.Shutdown,
		TextDocumentDidOpen:            layerHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           layerHandler.TextDocumentDidClose,
		TextDocumentDidChange:          layerHandler.TextDocumentDidChange,
		TextDocumentCompletion:         layerHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: layerHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Info("starting Layer language server")

	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
