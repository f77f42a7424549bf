// Package cli implements the interactive terminal front end: numbered
// specialist menu, multi-line query entry, consultation display, and a
// yes/no continuation loop.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	consultx "github.com/medai-labs/medai/agent/consult"
	contractx "github.com/medai-labs/medai/agent/contract"
	specialistx "github.com/medai-labs/medai/agent/specialist"
)

const rule = "================================================================================"
const thinRule = "--------------------------------------------------------------------------------"

type App struct {
	lifecycle *consultx.Lifecycle
	in        *bufio.Scanner
	out       io.Writer
}

func New(lc *consultx.Lifecycle, in io.Reader, out io.Writer) *App {
	return &App{
		lifecycle: lc,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Run drives the consultation loop until the user declines to continue or
// input is exhausted.
func (a *App) Run(ctx context.Context) error {
	a.printHeader()

	for {
		d, ok := a.selectSpecialist()
		if !ok {
			return nil
		}
		fmt.Fprintf(a.out, "\n✅ Selected: %s\n   %s\n", d.DisplayName, d.Blurb)

		query, ok := a.readQuery()
		if !ok {
			return nil
		}
		if strings.TrimSpace(query) == "" {
			fmt.Fprintln(a.out, "\n⚠️  No query entered. Please try again.")
			continue
		}

		if err := a.consult(ctx, d, query); err != nil {
			if errors.Is(err, contractx.ErrConfiguration) {
				return err
			}
			fmt.Fprintf(a.out, "\n⚠️  %v\n", err)
			continue
		}

		if !a.askContinue() {
			fmt.Fprintln(a.out, "\n👋 Thank you for using AI Healthcare Assistant!")
			fmt.Fprintln(a.out, "Stay healthy and take care!")
			fmt.Fprintln(a.out, rule)
			return nil
		}
		fmt.Fprint(a.out, "\n\n")
	}
}

func (a *App) printHeader() {
	fmt.Fprintln(a.out, "\n"+rule)
	fmt.Fprintln(a.out, "🏥 AI HEALTHCARE ASSISTANT")
	fmt.Fprintln(a.out, "Medical Guidance | Health Information | Wellness Support")
	fmt.Fprintln(a.out, rule)
	fmt.Fprintln(a.out, "⚠️  DISCLAIMER: For informational purposes only")
	fmt.Fprintln(a.out, "Always consult qualified healthcare professionals for medical advice")
	fmt.Fprintln(a.out, rule)
	fmt.Fprintln(a.out)
}

func (a *App) selectSpecialist() (specialistx.Descriptor, bool) {
	roster := specialistx.TerminalRoster()

	fmt.Fprintln(a.out, "👨‍⚕️ SELECT HEALTHCARE SPECIALIST:")
	fmt.Fprintln(a.out)
	for i, d := range roster {
		fmt.Fprintf(a.out, "  %d. %-25s - %s\n", i+1, d.DisplayName, d.Blurb)
	}
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Enter your choice (1-%d): ", len(roster))

	line, ok := a.readLine()
	if !ok {
		return specialistx.Descriptor{}, false
	}

	choice := 0
	if _, err := fmt.Sscanf(strings.TrimSpace(line), "%d", &choice); err != nil || choice < 1 || choice > len(roster) {
		fmt.Fprintf(a.out, "⚠️  Invalid choice. Using default '%s'\n", specialistx.DefaultID)
		return specialistx.Describe(specialistx.DefaultID), true
	}
	return roster[choice-1], true
}

func (a *App) readQuery() (string, bool) {
	fmt.Fprintln(a.out, "\n"+thinRule)
	fmt.Fprintln(a.out, "📝 DESCRIBE YOUR HEALTH QUERY")
	fmt.Fprintln(a.out, thinRule)
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Examples:")
	fmt.Fprintln(a.out, "  • I have a persistent headache and sensitivity to light")
	fmt.Fprintln(a.out, "  • What are healthy meal options for managing diabetes?")
	fmt.Fprintln(a.out, "  • I feel anxious and stressed lately, what can I do?")
	fmt.Fprintln(a.out, "  • Best exercises for lower back pain")
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Your query (finish with an empty line):")
	fmt.Fprintln(a.out)

	var lines []string
	for {
		line, ok := a.readLine()
		if !ok {
			return strings.Join(lines, " "), len(lines) > 0
		}
		if strings.TrimSpace(line) == "" {
			if len(lines) > 0 {
				return strings.Join(lines, " "), true
			}
			continue
		}
		lines = append(lines, strings.TrimSpace(line))
	}
}

func (a *App) consult(ctx context.Context, d specialistx.Descriptor, query string) error {
	fmt.Fprintln(a.out, "\n"+rule)
	fmt.Fprintf(a.out, "🔍 %s IS ANALYZING YOUR QUERY...\n", strings.ToUpper(d.DisplayName))
	fmt.Fprintln(a.out, rule)

	if err := a.lifecycle.Submit(ctx, d.ID, query, a.display); err != nil {
		return err
	}

	// InFlight covers the display callback, so once it drops the outcome has
	// been written and the state is final.
	for a.lifecycle.Processing() {
		time.Sleep(10 * time.Millisecond)
	}
	a.lifecycle.Clear()
	return nil
}

func (a *App) display(o contractx.ConsultationOutcome) error {
	if _, err := fmt.Fprintf(a.out, "\n%s\n", o.Body); err != nil {
		return fmt.Errorf("%w: %v", contractx.ErrRender, err)
	}
	return nil
}

func (a *App) askContinue() bool {
	fmt.Fprintln(a.out, "\n"+thinRule)
	fmt.Fprint(a.out, "Would you like another consultation? (yes/no): ")

	line, ok := a.readLine()
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "yes", "y":
		return true
	default:
		return false
	}
}

func (a *App) readLine() (string, bool) {
	if !a.in.Scan() {
		return "", false
	}
	return a.in.Text(), true
}
