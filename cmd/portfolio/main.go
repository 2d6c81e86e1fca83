// Package main provides the portfolio CLI: an interactive terminal over the
// portfolio content, static section rendering, content validation, the HTTP
// API server and database seeding.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	contentPath string
	databaseURL string
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio terminal",
	Long:  "Portfolio serves a personal portfolio as static sections and as a small simulated terminal, from the command line or over HTTP.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "Path to a .json or .hcl content file")
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "PostgreSQL URL to load content from")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
