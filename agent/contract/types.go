package contract

import (
	"time"

	"github.com/google/uuid"
)

// ConsultationRequest is a single user submission. Query is trimmed and
// validated before the request is built.
type ConsultationRequest struct {
	ID           uuid.UUID `json:"id"`
	SpecialistID string    `json:"specialist_id"`
	Query        string    `json:"query"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

type OutcomeKind string

const (
	OutcomeSuccess      OutcomeKind = "success"
	OutcomeFallbackDemo OutcomeKind = "fallback_demo"
)

// ConsultationOutcome is the tagged result of a completed consultation.
// Exactly one outcome exists per accepted request; a delegate failure
// produces a FallbackDemo outcome, never a bare error.
type ConsultationOutcome struct {
	Kind         OutcomeKind `json:"kind"`
	SpecialistID string      `json:"specialist_id"`
	Timestamp    time.Time   `json:"timestamp"`
	Body         string      `json:"body"`
	Cause        string      `json:"cause,omitempty"`
}

func (o ConsultationOutcome) Fallback() bool {
	return o.Kind == OutcomeFallbackDemo
}

// Prompt is the composed instruction block handed to the delegate.
type Prompt struct {
	System string `json:"system"`
	User   string `json:"user"`
}

const queryPreviewLimit = 100

// HistoryEntry is an append-only consultation summary line.
type HistoryEntry struct {
	Timestamp    time.Time `json:"timestamp"`
	SpecialistID string    `json:"specialist_id"`
	QueryPreview string    `json:"query_preview"`
	WasFallback  bool      `json:"was_fallback"`
}

func NewHistoryEntry(ts time.Time, specialistID, query string, fallback bool) HistoryEntry {
	return HistoryEntry{
		Timestamp:    ts,
		SpecialistID: specialistID,
		QueryPreview: previewQuery(query),
		WasFallback:  fallback,
	}
}

func previewQuery(query string) string {
	runes := []rune(query)
	if len(runes) <= queryPreviewLimit {
		return query
	}
	return string(runes[:queryPreviewLimit])
}
