package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jonathan/portfolio-terminal/internal/content"
	"github.com/jonathan/portfolio-terminal/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a portfolio content file",
	Long:  "Validates a .json or .hcl content file. JSON files are checked against the portfolio schema first; both formats are then checked against the record rules.",
	RunE:  runValidate,
}

var validateInputFile string

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "in", "i", "", "Path to content file (required)")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	return validateContent(cmd.OutOrStdout(), validateInputFile)
}

// validateContent loads path and reports the outcome on w. Schema failures
// are listed one field per line.
func validateContent(w io.Writer, path string) error {
	store, err := content.LoadFile(path)
	if err != nil {
		_, _ = fmt.Fprintf(w, "Validation failed: %s\n", path)

		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			for _, fieldErr := range validationErr.Errors {
				_, _ = fmt.Fprintf(w, "  - %s: %s\n", fieldErr.Field, fieldErr.Message)
			}
			return fmt.Errorf("%d schema error(s) in %s", len(validationErr.Errors), filepath.Base(path))
		}
		return err
	}

	p := store.Portfolio()
	_, _ = fmt.Fprintf(w, "Validation passed: %s\n", path)
	_, _ = fmt.Fprintf(w, "  %s: %d experience, %d projects, %d skill groups, %d certifications\n",
		strings.TrimSpace(p.Contact.Name), len(p.Experience), len(p.Projects), len(p.Skills), len(p.Certifications))
	return nil
}
