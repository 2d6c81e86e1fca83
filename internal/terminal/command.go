// Package terminal implements the portfolio's toy command interpreter: a pure
// transition from (transcript, submitted line) to (transcript, effect) over a
// fixed table of zero-argument commands.
package terminal

import "strings"

// CommandKind identifies a recognized command.
type CommandKind int

const (
	CommandUnknown CommandKind = iota
	CommandHelp
	CommandAbout
	CommandContact
	CommandExperience
	CommandSkills
	CommandProjects
	CommandClear
	CommandExit
)

var commandNames = map[string]CommandKind{
	"help":       CommandHelp,
	"about":      CommandAbout,
	"contact":    CommandContact,
	"experience": CommandExperience,
	"skills":     CommandSkills,
	"projects":   CommandProjects,
	"clear":      CommandClear,
	"exit":       CommandExit,
}

// String returns the command keyword, or "unknown".
func (k CommandKind) String() string {
	switch k {
	case CommandHelp:
		return "help"
	case CommandAbout:
		return "about"
	case CommandContact:
		return "contact"
	case CommandExperience:
		return "experience"
	case CommandSkills:
		return "skills"
	case CommandProjects:
		return "projects"
	case CommandClear:
		return "clear"
	case CommandExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Normalize trims surrounding whitespace and lower-cases the line.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ParseCommand maps a normalized line to its command. Matching is exact: there
// is no abbreviation and no argument parsing, so "help me" is CommandUnknown.
func ParseCommand(normalized string) CommandKind {
	if kind, ok := commandNames[normalized]; ok {
		return kind
	}
	return CommandUnknown
}

// helpEntries lists the commands in the order the help table shows them.
var helpEntries = []Row{
	{Key: "about", Value: "View objective & summary"},
	{Key: "experience", Value: "List work history"},
	{Key: "skills", Value: "List technical skills"},
	{Key: "projects", Value: "View key projects"},
	{Key: "contact", Value: "Contact information"},
	{Key: "clear", Value: "Clear terminal"},
	{Key: "exit", Value: "Close terminal"},
}
