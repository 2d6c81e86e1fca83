package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jonathan/portfolio-terminal/internal/boot"
	"github.com/jonathan/portfolio-terminal/internal/observability"
	"github.com/jonathan/portfolio-terminal/internal/terminal"
	"github.com/spf13/cobra"
)

var terminalCmd = &cobra.Command{
	Use:   "terminal",
	Short: "Open the portfolio terminal",
	Long: `Open an interactive terminal session over the portfolio content.

Type "help" for the list of commands. The session ends on "exit" or end of input.
Use --command to run commands without a prompt.`,
	RunE: runTerminal,
}

var (
	terminalBoot     bool
	terminalCommands []string
)

func init() {
	terminalCmd.Flags().BoolVar(&terminalBoot, "boot", false, "Play the boot sequence before opening the terminal")
	terminalCmd.Flags().StringArrayVarP(&terminalCommands, "command", "c", nil, "Command to run (repeatable); skips the interactive prompt")
	rootCmd.AddCommand(terminalCmd)
}

func runTerminal(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	store, err := loadStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	session := terminal.NewSession(terminal.NewInterpreter(store))

	if terminalBoot || cfg.Boot {
		if err := playBoot(cmd.Context(), printer, boot.DefaultDuration, boot.DefaultInterval); err != nil {
			return err
		}
	}

	if len(terminalCommands) > 0 {
		return runCommands(printer, session, terminalCommands)
	}
	return runREPL(cmd.InOrStdin(), printer, session)
}

// playBoot draws the loading screen until the sequence completes.
func playBoot(ctx context.Context, printer *observability.Printer, duration, interval time.Duration) error {
	err := boot.Run(ctx, duration, interval, func(f boot.Frame) {
		printer.PrintBootProgress(f.Progress, f.Log)
	})
	if err != nil {
		return fmt.Errorf("boot sequence interrupted: %w", err)
	}
	return nil
}

// runREPL reads one line at a time from in until exit or end of input.
// Echoed input lines are not reprinted since the reader already shows them
// after the prompt.
func runREPL(in io.Reader, printer *observability.Printer, session *terminal.Session) error {
	printer.PrintTranscript(session.Transcript())

	scanner := bufio.NewScanner(in)
	for {
		printer.Prompt()
		if !scanner.Scan() {
			break
		}
		closed, err := submitLine(printer, session, scanner.Text(), false)
		if err != nil {
			return err
		}
		if closed {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// runCommands submits each command in order and prints the full exchange.
func runCommands(printer *observability.Printer, session *terminal.Session, commands []string) error {
	printer.PrintTranscript(session.Transcript())

	for _, line := range commands {
		closed, err := submitLine(printer, session, line, true)
		if err != nil {
			return err
		}
		if closed {
			return nil
		}
	}
	return nil
}

// submitLine applies one line and prints what it appended. It reports whether
// the session closed.
func submitLine(printer *observability.Printer, session *terminal.Session, line string, echo bool) (bool, error) {
	before := session.Len()

	effect, err := session.Submit(line)
	if err != nil {
		return false, err
	}

	switch effect {
	case terminal.EffectClear:
		printer.Clear()
		return false, nil
	case terminal.EffectClose:
		return true, nil
	}

	for _, l := range session.Transcript()[before:] {
		if l.Kind == terminal.LineInput && !echo {
			continue
		}
		printer.PrintLine(l)
	}
	return false, nil
}
