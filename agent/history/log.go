// Package history keeps the process-lifetime consultation log. Entries are
// append-only; nothing is ever edited, removed, or evicted.
package history

import (
	"sync"

	contractx "github.com/medai-labs/medai/agent/contract"
)

type Log struct {
	mu      sync.Mutex
	entries []contractx.HistoryEntry
}

func NewLog() *Log {
	return &Log{}
}

// Append records one completed consultation. O(1), insertion order.
func (l *Log) Append(entry contractx.HistoryEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

// Entries returns a fresh snapshot in reverse-insertion order, most recent
// first. The snapshot is recomputed on every call.
func (l *Log) Entries() []contractx.HistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]contractx.HistoryEntry, 0, len(l.entries))
	for i := len(l.entries) - 1; i >= 0; i-- {
		out = append(out, l.entries[i])
	}
	return out
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Empty drives the "no consultations yet" placeholder in the front ends.
func (l *Log) Empty() bool {
	return l.Len() == 0
}
