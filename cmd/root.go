package cmd

import (
	"errors"
	"fmt"
	"os"

	"extension-devserver/core/logger"
	"extension-devserver/core/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command. Running it without arguments starts the server.
var RootCmd = &cobra.Command{
	Use:   "extension-devserver",
	Short: "Development server for browser extension files",
	Long: `extension-devserver serves a browser extension's files over HTTP during development.
Every response carries permissive cross-origin headers, and a placeholder
index.html is written into the served directory on first run.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServer,
}

// Execute runs the root command and exits 1 on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps, matching the server's own output
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			reportError(l, err)
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func reportError(l *zap.Logger, err error) {
	var inUse *server.AddressInUseError
	var bindErr *server.BindError
	switch {
	case errors.As(err, &inUse):
		l.Error("Port is already in use", zap.String("addr", inUse.Addr), zap.String("hint", inUse.Hint()))
	case errors.As(err, &bindErr):
		l.Error("Server error", zap.String("addr", bindErr.Addr), zap.Error(bindErr.Err))
	default:
		l.Error("Unexpected error", zap.Error(err))
	}
}
