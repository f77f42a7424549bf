package prompt

import (
	"strings"
	"testing"

	specialistx "github.com/medai-labs/medai/agent/specialist"
)

func TestComposeEmbedsPersonaAndQuery(t *testing.T) {
	t.Parallel()

	d := specialistx.Describe("Mental Health Counselor")
	p, err := Compose(d, "I feel anxious and stressed lately")
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	if !strings.Contains(p.System, "You are a Mental Health Counselor.") {
		t.Fatalf("system prompt missing role: %q", p.System)
	}
	if !strings.Contains(p.System, d.Backstory) {
		t.Fatalf("system prompt missing backstory: %q", p.System)
	}
	if !strings.Contains(p.System, "Your goal: "+d.Goal) {
		t.Fatalf("system prompt missing goal: %q", p.System)
	}

	if !strings.Contains(p.User, "As a Mental Health Counselor, analyze the following health query") {
		t.Fatalf("task prompt missing framing: %q", p.User)
	}
	if !strings.Contains(p.User, "QUERY: I feel anxious and stressed lately") {
		t.Fatalf("task prompt missing query: %q", p.User)
	}
}

// The six directives are fixed contract text and must appear verbatim for
// every specialist.
func TestComposeDirectivesAreFixed(t *testing.T) {
	t.Parallel()

	directives := []string{
		"1. Provide clear, accurate information",
		"2. If symptoms are mentioned, explain possible conditions (not diagnoses)",
		"3. Suggest when to seek medical attention",
		"4. Provide practical recommendations",
		"5. Always remind this is informational, not medical advice",
		"6. Be compassionate and supportive",
	}

	for _, d := range specialistx.DesktopRoster() {
		p, err := Compose(d, "test query")
		if err != nil {
			t.Fatalf("Compose(%s) error = %v", d.ID, err)
		}
		for _, directive := range directives {
			if !strings.Contains(p.User, directive) {
				t.Fatalf("specialist %s missing directive %q", d.ID, directive)
			}
		}
	}
}
