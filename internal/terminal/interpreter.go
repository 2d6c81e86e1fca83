package terminal

import (
	"fmt"
	"strings"

	"github.com/jonathan/portfolio-terminal/internal/types"
)

const (
	welcomeBanner = "Welcome to NASHTE_OS v1.0.0"
	welcomeHint   = `Type "help" to see available commands.`
)

// Effect is the side effect a submitted line asks of the host.
type Effect int

const (
	// EffectNone means the transcript was returned unchanged or grew by an
	// input/output pair.
	EffectNone Effect = iota
	// EffectClear means the transcript was reset to empty.
	EffectClear
	// EffectClose means the host should close the session.
	EffectClose
)

func (e Effect) String() string {
	switch e {
	case EffectClear:
		return "clear"
	case EffectClose:
		return "close"
	default:
		return "none"
	}
}

// MarshalText encodes the effect by name.
func (e Effect) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Source is the read-only view of the static content the interpreter renders.
type Source interface {
	Contact() types.ContactProfile
	Experience() []types.WorkEntry
	Skills() []types.SkillGroup
	Projects() []types.ProjectRecord
}

// Interpreter resolves submitted lines against a fixed command table.
// It holds no session state and is safe for concurrent use if its Source is.
type Interpreter struct {
	source Source
}

// NewInterpreter returns an interpreter rendering from source.
func NewInterpreter(source Source) *Interpreter {
	return &Interpreter{source: source}
}

// InitialTranscript returns the two system lines every session starts with.
func InitialTranscript() Transcript {
	return Transcript{
		System(welcomeBanner),
		System(welcomeHint),
	}
}

// Apply computes the transcript that follows submitting raw. The transcript
// passed in is never modified.
//
//   - blank input returns t unchanged with EffectNone
//   - clear returns an empty transcript with EffectClear
//   - exit returns t unchanged with EffectClose
//   - anything else returns t plus Input(raw) and the rendered Output
func (in *Interpreter) Apply(t Transcript, raw string) (Transcript, Effect) {
	normalized := Normalize(raw)
	if normalized == "" {
		return t, EffectNone
	}

	kind := ParseCommand(normalized)
	switch kind {
	case CommandClear:
		return Transcript{}, EffectClear
	case CommandExit:
		return t, EffectClose
	}

	next := make(Transcript, len(t), len(t)+2)
	copy(next, t)
	next = append(next, Input(raw), Output(in.Render(kind, normalized)))
	return next, EffectNone
}

// Render builds the output for a command. normalized is only used to echo
// unrecognized input. Clear and exit produce no output of their own.
func (in *Interpreter) Render(kind CommandKind, normalized string) Content {
	switch kind {
	case CommandHelp:
		return Table{Rows: append([]Row(nil), helpEntries...), Separator: " - "}
	case CommandAbout:
		return Text(in.source.Contact().Objective)
	case CommandContact:
		return in.renderContact()
	case CommandExperience:
		return in.renderExperience()
	case CommandSkills:
		return in.renderSkills()
	case CommandProjects:
		return in.renderProjects()
	case CommandClear, CommandExit:
		return Text("")
	case CommandUnknown:
		return unrecognized(normalized)
	default:
		panic(fmt.Sprintf("terminal: unhandled command kind %d", kind))
	}
}

func unrecognized(normalized string) Text {
	return Text(fmt.Sprintf(`Command not found: %s. Type "help" for assistance.`, normalized))
}

func (in *Interpreter) renderContact() Table {
	c := in.source.Contact()
	return Table{
		Rows: []Row{
			{Key: "Email", Value: c.Email},
			{Key: "Phone", Value: c.Phone},
			{Key: "Loc", Value: c.Location},
		},
		KeySuffix: ":",
		Separator: " ",
	}
}

func (in *Interpreter) renderExperience() Blocks {
	entries := in.source.Experience()
	out := make(Blocks, 0, len(entries))
	for _, e := range entries {
		out = append(out, Block{
			Title: e.Role,
			Lines: []string{
				fmt.Sprintf("%s | %s", e.Company, e.Period),
				fmt.Sprintf("[%s]", e.Category),
			},
		})
	}
	return out
}

func (in *Interpreter) renderSkills() Blocks {
	groups := in.source.Skills()
	out := make(Blocks, 0, len(groups))
	for _, g := range groups {
		out = append(out, Block{
			Title: g.Title,
			Lines: []string{strings.Join(g.Skills, ", ")},
		})
	}
	return out
}

func (in *Interpreter) renderProjects() Blocks {
	projects := in.source.Projects()
	out := make(Blocks, 0, len(projects))
	for _, p := range projects {
		out = append(out, Block{
			Title: p.Name,
			Lines: []string{
				p.Role,
				"Stack: " + strings.Join(p.TechStack, ", "),
			},
		})
	}
	return out
}
