package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	consultx "github.com/medai-labs/medai/agent/consult"
	contractx "github.com/medai-labs/medai/agent/contract"
	historyx "github.com/medai-labs/medai/agent/history"
)

type fakeGateway struct {
	response string
	err      error
	calls    int
}

func (f *fakeGateway) Invoke(ctx context.Context, p contractx.Prompt) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestRunSingleConsultation(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{response: "Eat low-glycemic foods."}
	hist := historyx.NewLog()
	lc := consultx.NewLifecycle(gw, hist)

	in := strings.NewReader("4\nWhat should I eat for diabetes?\n\nno\n")
	var out bytes.Buffer

	app := New(lc, in, &out)
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"AI HEALTHCARE ASSISTANT",
		"SELECT HEALTHCARE SPECIALIST",
		"✅ Selected: Nutrition Specialist",
		"NUTRITION SPECIALIST IS ANALYZING YOUR QUERY",
		"Eat low-glycemic foods.",
		"MEDICAL DISCLAIMER",
		"Thank you for using AI Healthcare Assistant!",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}

	if gw.calls != 1 {
		t.Fatalf("gateway invoked %d times, want 1", gw.calls)
	}
	entries := hist.Entries()
	if len(entries) != 1 || entries[0].QueryPreview != "What should I eat for diabetes?" {
		t.Fatalf("unexpected history: %#v", entries)
	}
	if lc.State() != consultx.StateIdle {
		t.Fatalf("lifecycle state after run = %s, want idle", lc.State())
	}
}

func TestRunInvalidChoiceDegradesToDefault(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{response: "General guidance."}
	lc := consultx.NewLifecycle(gw, historyx.NewLog())

	in := strings.NewReader("99\nI have a headache\n\nn\n")
	var out bytes.Buffer

	app := New(lc, in, &out)
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Invalid choice. Using default 'Medical Advisor'") {
		t.Fatalf("missing default-choice notice:\n%s", text)
	}
	if !strings.Contains(text, "MEDICAL ADVISOR IS ANALYZING YOUR QUERY") {
		t.Fatalf("default specialist not used:\n%s", text)
	}
}

func TestRunGatewayFailureShowsFallback(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{err: errors.New("dial tcp: i/o timeout")}
	hist := historyx.NewLog()
	lc := consultx.NewLifecycle(gw, hist)

	in := strings.NewReader("1\ndoes my knee need a scan?\n\nno\n")
	var out bytes.Buffer

	app := New(lc, in, &out)
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "(Demo Response)") {
		t.Fatalf("fallback not displayed:\n%s", text)
	}
	if !strings.Contains(text, "dial tcp: i/o timeout") {
		t.Fatalf("cause not displayed:\n%s", text)
	}

	entries := hist.Entries()
	if len(entries) != 1 || !entries[0].WasFallback {
		t.Fatalf("fallback not recorded: %#v", entries)
	}
}

func TestRunLoopsUntilDecline(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{response: "ok"}
	hist := historyx.NewLog()
	lc := consultx.NewLifecycle(gw, hist)

	in := strings.NewReader("1\nfirst question\n\nyes\n2\nsecond question\n\nno\n")
	var out bytes.Buffer

	app := New(lc, in, &out)
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if gw.calls != 2 {
		t.Fatalf("gateway invoked %d times, want 2", gw.calls)
	}
	if hist.Len() != 2 {
		t.Fatalf("history entries = %d, want 2", hist.Len())
	}
}
