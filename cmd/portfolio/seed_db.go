package main

import (
	"fmt"
	"log/slog"

	"github.com/jonathan/portfolio-terminal/internal/content"
	"github.com/jonathan/portfolio-terminal/internal/db"
	"github.com/spf13/cobra"
)

var seedDBCmd = &cobra.Command{
	Use:   "seed-db",
	Short: "Import a content file into PostgreSQL",
	Long:  "Validates a .json or .hcl content file, creates the content tables if needed, and replaces the stored portfolio with the file's records.",
	RunE:  runSeedDB,
}

var seedInputFile string

func init() {
	seedDBCmd.Flags().StringVarP(&seedInputFile, "in", "i", "", "Path to content file (required)")

	if err := seedDBCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(seedDBCmd)
}

func runSeedDB(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --database-url is required")
	}

	store, err := content.LoadFile(seedInputFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := database.SeedPortfolio(ctx, store.Portfolio()); err != nil {
		return err
	}

	slog.Info("portfolio seeded", "source", store.Source())
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully seeded portfolio from %s\n", seedInputFile)
	return nil
}
