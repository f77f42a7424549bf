package history

import (
	"strings"
	"testing"
	"time"

	contractx "github.com/medai-labs/medai/agent/contract"
)

func TestAppendAndReverseOrder(t *testing.T) {
	t.Parallel()

	log := NewLog()
	if !log.Empty() {
		t.Fatal("new log must be empty")
	}

	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	for i, q := range []string{"first", "second", "third"} {
		log.Append(contractx.NewHistoryEntry(base.Add(time.Duration(i)*time.Minute), "Medical Advisor", q, false))
	}

	entries := log.Entries()
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	for i, want := range []string{"third", "second", "first"} {
		if entries[i].QueryPreview != want {
			t.Fatalf("entries[%d] = %q, want %q (most recent first)", i, entries[i].QueryPreview, want)
		}
	}
}

func TestEntriesSnapshotIsRestartable(t *testing.T) {
	t.Parallel()

	log := NewLog()
	log.Append(contractx.NewHistoryEntry(time.Now(), "Medical Advisor", "one", false))

	first := log.Entries()
	second := log.Entries()
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("snapshots consumed: %d, %d", len(first), len(second))
	}

	// mutating a snapshot must not affect the log
	first[0].QueryPreview = "mutated"
	if log.Entries()[0].QueryPreview != "one" {
		t.Fatal("snapshot mutation leaked into the log")
	}
}

func TestQueryPreviewTruncation(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("q", 150)
	e := contractx.NewHistoryEntry(time.Now(), "Medical Advisor", long, true)
	if got := len([]rune(e.QueryPreview)); got != 100 {
		t.Fatalf("preview length = %d, want 100", got)
	}
	if !e.WasFallback {
		t.Fatal("fallback flag lost")
	}

	short := contractx.NewHistoryEntry(time.Now(), "Medical Advisor", "short", false)
	if short.QueryPreview != "short" {
		t.Fatalf("short query altered: %q", short.QueryPreview)
	}
}
