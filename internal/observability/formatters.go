// Package observability renders portfolio sections and terminal transcripts as
// plain text for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/portfolio-terminal/internal/terminal"
	"github.com/jonathan/portfolio-terminal/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// inputPrompt prefixes echoed input lines
	inputPrompt = "➜ "
	// outputIndent prefixes every line of command output
	outputIndent = "  "
	// clearScreen moves the cursor home and clears the display
	clearScreen = "\033[H\033[2J"
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most width runes, marking the cut with "...".
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintLine writes one transcript line: input behind the prompt, output
// indented, system lines as they are.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintLine(line terminal.Line) {
	switch line.Kind {
	case terminal.LineInput:
		fmt.Fprintf(p.out, "%s%s\n", inputPrompt, line.Text())
	case terminal.LineOutput:
		for _, l := range strings.Split(line.Text(), "\n") {
			if l == "" {
				fmt.Fprintln(p.out)
				continue
			}
			fmt.Fprintf(p.out, "%s%s\n", outputIndent, l)
		}
	default:
		fmt.Fprintln(p.out, line.Text())
	}
}

// PrintTranscript writes every line of t in order.
func (p *Printer) PrintTranscript(t terminal.Transcript) {
	for _, line := range t {
		p.PrintLine(line)
	}
}

// Prompt writes the input prompt without a trailing newline.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Prompt() {
	fmt.Fprint(p.out, inputPrompt)
}

// Clear wipes the screen of an ANSI terminal.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Clear() {
	fmt.Fprint(p.out, clearScreen)
}

// PrintBootProgress redraws the boot progress bar in place. A non-empty log
// line is printed above the bar.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintBootProgress(progress int, log string) {
	const barWidth = 40
	filled := min(max(progress, 0), 100) * barWidth / 100
	if log != "" {
		fmt.Fprintf(p.out, "\r%-*s\n", barWidth+8, log)
	}
	fmt.Fprintf(p.out, "\r[%s%s] %3d%%", strings.Repeat("█", filled), strings.Repeat("░", barWidth-filled), progress)
	if progress >= 100 {
		fmt.Fprintln(p.out)
	}
}

// PrintContact outputs the hero section: name, objective, contact details
// and profile links.
func (p *Printer) PrintContact(contact types.ContactProfile) {
	var sb strings.Builder

	sb.WriteString(contact.Name + "\n\n")
	for _, line := range wrap(contact.Objective, boxWidth-4) {
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Email:     %s\n", contact.Email))
	sb.WriteString(fmt.Sprintf("Phone:     %s\n", contact.Phone))
	sb.WriteString(fmt.Sprintf("Location:  %s\n", contact.Location))

	links := []struct{ label, url string }{
		{"LinkedIn", contact.Links.LinkedIn},
		{"GitHub", contact.Links.GitHub},
		{"Trailhead", contact.Links.Trailhead},
	}
	for _, l := range links {
		if l.url != "" {
			sb.WriteString(fmt.Sprintf("%-10s %s\n", l.label+":", l.url))
		}
	}

	p.printBox("CONTACT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExperience outputs the work history in display order.
func (p *Printer) PrintExperience(entries []types.WorkEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	for i, e := range entries {
		sb.WriteString(fmt.Sprintf("%s [%s]\n", e.Role, e.Category))
		sb.WriteString(fmt.Sprintf("  %s\n", e.Company))
		sb.WriteString(fmt.Sprintf("  %s\n", e.Period))
		if i < len(entries)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("EXPERIENCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs each skill group with its labels.
func (p *Printer) PrintSkills(groups []types.SkillGroup) {
	if len(groups) == 0 {
		return
	}

	var sb strings.Builder
	for i, g := range groups {
		sb.WriteString(g.Title + "\n")
		for _, line := range wrap(strings.Join(g.Skills, ", "), boxWidth-6) {
			sb.WriteString("  " + line + "\n")
		}
		if i < len(groups)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProjects outputs projects with stack and responsibilities.
func (p *Printer) PrintProjects(projects []types.ProjectRecord) {
	if len(projects) == 0 {
		return
	}

	var sb strings.Builder
	for i, pr := range projects {
		sb.WriteString(pr.Name + "\n")
		sb.WriteString(fmt.Sprintf("  Role:  %s\n", pr.Role))
		for j, line := range wrap(strings.Join(pr.TechStack, ", "), boxWidth-13) {
			if j == 0 {
				sb.WriteString("  Stack: " + line + "\n")
			} else {
				sb.WriteString("         " + line + "\n")
			}
		}
		for _, r := range pr.Responsibilities {
			for j, line := range wrap(r, boxWidth-8) {
				if j == 0 {
					sb.WriteString("  • " + line + "\n")
				} else {
					sb.WriteString("    " + line + "\n")
				}
			}
		}
		if i < len(projects)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("PROJECTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCertifications outputs the credential list.
func (p *Printer) PrintCertifications(certs []types.Credential) {
	if len(certs) == 0 {
		return
	}

	var sb strings.Builder
	for _, c := range certs {
		sb.WriteString(fmt.Sprintf("• %s\n", c.Name))
		sb.WriteString(fmt.Sprintf("  %s · %s\n", c.Issuer, c.Validity))
	}

	p.printBox("CERTIFICATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEducation outputs the education record.
func (p *Printer) PrintEducation(edu types.EducationRecord) {
	var sb strings.Builder
	sb.WriteString(edu.Degree + "\n")
	sb.WriteString(edu.Institution + "\n")
	sb.WriteString(fmt.Sprintf("%s · %s\n", edu.Location, edu.Year))
	sb.WriteString(edu.Score)

	p.printBox("EDUCATION", sb.String())
}

// PrintRank outputs the rank statistics.
func (p *Printer) PrintRank(rank types.RankStats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Rank:        %s\n", rank.Rank))
	sb.WriteString(fmt.Sprintf("Badges:      %d\n", rank.Badges))
	sb.WriteString(fmt.Sprintf("Points:      %s\n", rank.Points))
	sb.WriteString(fmt.Sprintf("Trailmixes:  %d", rank.Trailmixes))

	p.printBox("RANK", sb.String())
}

// PrintPortfolio outputs every section in page order.
func (p *Printer) PrintPortfolio(portfolio types.Portfolio) {
	p.PrintContact(portfolio.Contact)
	p.PrintExperience(portfolio.Experience)
	p.PrintSkills(portfolio.Skills)
	p.PrintProjects(portfolio.Projects)
	p.PrintCertifications(portfolio.Certifications)
	p.PrintEducation(portfolio.Education)
	p.PrintRank(portfolio.Rank)
}

// wrap breaks text into lines of at most width runes on word boundaries.
// Words longer than width are left for printBox to truncate.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		if utf8.RuneCountInString(current)+1+utf8.RuneCountInString(w) > width {
			lines = append(lines, current)
			current = w
			continue
		}
		current += " " + w
	}
	return append(lines, current)
}
