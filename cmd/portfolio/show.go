package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/portfolio-terminal/internal/content"
	"github.com/jonathan/portfolio-terminal/internal/observability"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [section]",
	Short: "Render portfolio sections",
	Long: fmt.Sprintf(`Render the static portfolio page as text boxes.

Sections: %s. With no section, every section is shown in page order.`, strings.Join(content.SectionNames, ", ")),
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Emit the records as JSON instead of text")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	store, err := loadStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	section := ""
	if len(args) == 1 {
		section = strings.ToLower(args[0])
	}
	return renderSection(cmd.OutOrStdout(), store, section, showJSON)
}

// renderSection writes one section, or all of them when section is empty.
func renderSection(w io.Writer, store *content.Store, section string, asJSON bool) error {
	var data any
	label := section
	if section == "" {
		label = "portfolio"
		data = store.Portfolio()
	} else {
		var ok bool
		data, ok = store.Section(section)
		if !ok {
			return fmt.Errorf("unknown section %q (valid: %s)", section, strings.Join(content.SectionNames, ", "))
		}
	}

	if asJSON {
		jsonBytes, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", label, err)
		}
		_, err = fmt.Fprintln(w, string(jsonBytes))
		return err
	}

	printer := observability.NewPrinter(w)
	switch section {
	case "":
		printer.PrintPortfolio(store.Portfolio())
	case "contact":
		printer.PrintContact(store.Contact())
	case "experience":
		printer.PrintExperience(store.Experience())
	case "skills":
		printer.PrintSkills(store.Skills())
	case "projects":
		printer.PrintProjects(store.Projects())
	case "certifications":
		printer.PrintCertifications(store.Certifications())
	case "education":
		printer.PrintEducation(store.Education())
	case "rank":
		printer.PrintRank(store.Rank())
	}
	return nil
}
