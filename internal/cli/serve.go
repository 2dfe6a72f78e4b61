package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/veridex/veridex/internal/pipeline"
	"github.com/veridex/veridex/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and web form",
	Long: `Serve starts an HTTP server with a minimal web form at / and a JSON
API at /api/analyze. The server shuts down gracefully on SIGINT/SIGTERM.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		config.Server.Addr = serveAddr
	}

	p, err := pipeline.New(config)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.Output.Verbose && !p.Provider().IsAvailable(ctx) {
		logVerbose("warning: LLM provider %s is not reachable\n", p.Provider().Name())
	}

	s := server.New(p, config.Server, config.Output.Verbose)
	return s.Run(ctx)
}
