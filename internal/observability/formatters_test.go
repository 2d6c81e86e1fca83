package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/portfolio-terminal/internal/terminal"
	"github.com/jonathan/portfolio-terminal/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePortfolio() types.Portfolio {
	return types.Portfolio{
		Contact: types.ContactProfile{
			Name:      "Jane Doe",
			Objective: "Backend engineer who likes small tools that do one thing well and keep doing it for years.",
			Email:     "jane@example.com",
			Phone:     "555-0100",
			Location:  "Pune, India",
			Links: types.ProfileLinks{
				GitHub: "https://github.com/janedoe",
			},
		},
		Experience: []types.WorkEntry{
			{Company: "Acme", Role: "Engineer", Period: "2021 – 2024", Category: types.CategoryEmployment},
		},
		Certifications: []types.Credential{
			{Name: "Platform Developer I", Issuer: "Salesforce", Validity: "2025"},
		},
		Projects: []types.ProjectRecord{
			{
				Name:             "Log Shipper",
				Role:             "Author",
				TechStack:        []string{"Go", "Kafka"},
				Responsibilities: []string{"Batched writes to cut broker load."},
			},
		},
		Skills: []types.SkillGroup{
			{Title: "Languages", Skills: []string{"Go", "SQL"}},
		},
		Education: types.EducationRecord{
			Institution: "Institute", Degree: "B.Tech", Location: "Solapur", Year: "2019 – 2023", Score: "GPA: 9.39",
		},
		Rank: types.RankStats{Rank: "RANGER", Badges: 101, Points: "70,000", Trailmixes: 7},
	}
}

func TestPrintLine(t *testing.T) {
	tests := []struct {
		name string
		line terminal.Line
		want string
	}{
		{
			name: "input behind prompt",
			line: terminal.Input("help"),
			want: "➜ help\n",
		},
		{
			name: "system as is",
			line: terminal.System("Welcome"),
			want: "Welcome\n",
		},
		{
			name: "output indented with blank lines kept",
			line: terminal.Output(terminal.Blocks{{Title: "A", Lines: []string{"x"}}, {Title: "B"}}),
			want: "  A\n  x\n\n  B\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf).PrintLine(tt.line)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintTranscript(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTranscript(terminal.Transcript{
		terminal.System("Welcome"),
		terminal.Input("about"),
		terminal.Output(terminal.Text("Hello.")),
	})

	assert.Equal(t, "Welcome\n➜ about\n  Hello.\n", buf.String())
}

func TestPrintTranscript_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintTranscript(nil)
	assert.Empty(t, buf.String())
}

func TestPromptAndClear(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Clear()
	p.Prompt()

	assert.Equal(t, "\033[H\033[2J➜ ", buf.String())
}

func TestPrintBootProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBootProgress(12, "> LOADING ASSETS...")
	output := buf.String()
	assert.Contains(t, output, "> LOADING ASSETS...")
	assert.Contains(t, output, " 12%")
	assert.False(t, strings.HasSuffix(output, "\n"))

	buf.Reset()
	p.PrintBootProgress(100, "")
	output = buf.String()
	assert.Contains(t, output, strings.Repeat("█", 40))
	assert.True(t, strings.HasSuffix(output, "100%\n"))
}

func TestPrintPortfolio(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintPortfolio(samplePortfolio())
	output := buf.String()

	for _, title := range []string{"CONTACT", "EXPERIENCE", "SKILLS", "PROJECTS", "CERTIFICATIONS", "EDUCATION", "RANK"} {
		assert.Contains(t, output, title)
	}
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "GitHub:    https://github.com/janedoe")
	assert.NotContains(t, output, "LinkedIn")
	assert.Contains(t, output, "Engineer [Employment]")
	assert.Contains(t, output, "Go, SQL")
	assert.Contains(t, output, "Stack: Go, Kafka")
	assert.Contains(t, output, "• Batched writes to cut broker load.")
	assert.Contains(t, output, "Salesforce · 2025")
	assert.Contains(t, output, "Badges:      101")
}

func TestPrintBox_LinesHaveFixedWidth(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintContact(samplePortfolio().Contact)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}
}

func TestPrintSections_EmptyListsPrintNothing(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExperience(nil)
	p.PrintSkills(nil)
	p.PrintProjects(nil)
	p.PrintCertifications(nil)

	assert.Empty(t, buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ää–ää...", truncate("ää–äääääää", 8))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"one two", "three"}, wrap("one two three", 8))
	assert.Equal(t, []string{""}, wrap("   ", 8))
	assert.Equal(t, []string{"averyveryverylongword"}, wrap("averyveryverylongword", 8))
}
