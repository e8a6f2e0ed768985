// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"exprparser/internal/config"
	"exprparser/internal/lsp"
)

var version = "0.1.0" // Server version

func main() {
	// Only the file and EXPR_ environment variables apply; stdio belongs to
	// the client.
	cfg, _, err := config.Load("", nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Logs must not go to stdout, which carries the protocol.
	var logFile *string
	if cfg.Log.File != "" {
		logFile = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity, logFile)

	if err := lsp.RunStdio(version); err != nil {
		fmt.Fprintln(os.Stderr, "Error starting expr LSP server:", err)
		os.Exit(1)
	}
}
