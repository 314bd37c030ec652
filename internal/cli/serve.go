// Package cli provides the command-line interface for Tincture.
package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/internal/server"
)

// Serve command flags
var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the theme export HTTP API",
	Long: `Run an HTTP server exposing theme export, colour extraction and the
preset list.

Endpoints:
  POST /api/export          export a theme in any supported format
  POST /api/colors/extract  extract colours from an uploaded image
  GET  /api/presets         list built-in presets

The listen address comes from --addr, or the TINCTURE_ADDR environment
variable when the flag is unset.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: TINCTURE_ADDR or :8080)")
}

// runServe executes the serve command.
func runServe(cmd *cobra.Command, args []string) error {
	addr := serveAddr
	if addr == "" {
		addr = os.Getenv("TINCTURE_ADDR")
	}
	if addr == "" {
		addr = ":8080"
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Options{
		Addr:   addr,
		Logger: newLogger(cmd, "tincture"),
	})
	return srv.Run(ctx)
}
