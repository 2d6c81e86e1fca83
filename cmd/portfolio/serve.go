package main

import (
	"log/slog"
	"os"

	"github.com/jonathan/portfolio-terminal/internal/server"
	"github.com/jonathan/portfolio-terminal/internal/server/ratelimit"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Start an HTTP server that exposes the portfolio sections, terminal sessions over REST and websocket, and the boot sequence stream.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	store, err := loadStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	logger.Info("content loaded", "source", store.Source())

	rateLimit := ratelimit.LoadConfig()
	if !cfg.RateLimitEnabled() {
		rateLimit.Enabled = false
	}

	srv := server.New(store, server.Config{
		Addr:       cfg.Addr(),
		SessionTTL: cfg.SessionTTL(),
		RateLimit:  rateLimit,
		Logger:     logger,
	})
	return srv.Start(cmd.Context())
}
