// Package consult drives a consultation from submission to a displayable
// outcome. A single Lifecycle instance owns the processing state and the
// history bookkeeping for the whole application.
package consult

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	contractx "github.com/medai-labs/medai/agent/contract"
	promptx "github.com/medai-labs/medai/agent/prompt"
	specialistx "github.com/medai-labs/medai/agent/specialist"
)

// PlaceholderQuery is the input hint shown by the front ends. A submission
// equal to it is treated the same as an empty query.
const PlaceholderQuery = "Describe your symptoms or health question in detail..."

type State string

const (
	StateIdle      State = "idle"
	StateInFlight  State = "in_flight"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// OutcomeFunc receives the completed outcome on the dispatch goroutine. The
// front end is responsible for marshaling it back onto its own UI thread. A
// non-nil error marks the rendering as failed.
type OutcomeFunc func(contractx.ConsultationOutcome) error

type Option func(*Lifecycle)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(l *Lifecycle) {
		if now != nil {
			l.now = now
		}
	}
}

// Lifecycle is the request/response state machine. A nil gateway puts the
// lifecycle into demo mode: every submission is rejected with
// ErrConfiguration and the state never leaves Idle.
type Lifecycle struct {
	gateway contractx.Gateway
	history contractx.History

	mu    sync.Mutex
	state State

	now func() time.Time
}

func NewLifecycle(gw contractx.Gateway, hist contractx.History, opts ...Option) *Lifecycle {
	l := &Lifecycle{
		gateway: gw,
		history: hist,
		state:   StateIdle,
		now:     time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

func (l *Lifecycle) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *Lifecycle) Processing() bool {
	return l.State() == StateInFlight
}

// DemoMode reports whether consultation is categorically disabled because no
// delegate credential was configured.
func (l *Lifecycle) DemoMode() bool {
	return l.gateway == nil
}

// Submit validates and dispatches one consultation. Rejections are returned
// synchronously before any state transition; on acceptance the state moves to
// InFlight, the delegate call runs on its own goroutine, and Submit returns
// immediately. Results arrive via onOutcome exactly once; the lifecycle
// stays InFlight until onOutcome has returned.
func (l *Lifecycle) Submit(ctx context.Context, specialistID, query string, onOutcome OutcomeFunc) error {
	l.mu.Lock()
	if l.state == StateInFlight {
		l.mu.Unlock()
		return fmt.Errorf("%w: a consultation is already running", contractx.ErrValidation)
	}
	if l.gateway == nil {
		l.mu.Unlock()
		return fmt.Errorf("%w: consultation is disabled in demo mode, set a delegate api key to enable it", contractx.ErrConfiguration)
	}

	trimmed := strings.TrimSpace(query)
	if trimmed == "" || trimmed == PlaceholderQuery {
		l.mu.Unlock()
		return fmt.Errorf("%w: describe your health concern before requesting guidance", contractx.ErrValidation)
	}

	req := contractx.ConsultationRequest{
		ID:           uuid.New(),
		SpecialistID: specialistID,
		Query:        trimmed,
		SubmittedAt:  l.now(),
	}
	l.state = StateInFlight
	l.mu.Unlock()

	log.Debug().
		Str("request_id", req.ID.String()).
		Str("specialist", req.SpecialistID).
		Msg("consultation dispatched")

	go l.run(ctx, req, onOutcome)
	return nil
}

// Clear resets a finished lifecycle back to Idle. It is a no-op while a
// consultation is in flight.
func (l *Lifecycle) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == StateSucceeded || l.state == StateFailed {
		l.state = StateIdle
	}
}

// run stays InFlight until the outcome has been delivered; the single
// transition to Succeeded or Failed happens after onOutcome returns, so a
// caller that waits for the state to leave InFlight always observes the
// final value.
func (l *Lifecycle) run(ctx context.Context, req contractx.ConsultationRequest, onOutcome OutcomeFunc) {
	d := specialistx.Describe(req.SpecialistID)
	outcome := l.consult(ctx, d, req)

	if l.history != nil {
		l.history.Append(contractx.NewHistoryEntry(outcome.Timestamp, d.ID, req.Query, outcome.Fallback()))
	}

	var renderErr error
	if onOutcome != nil {
		renderErr = onOutcome(outcome)
	}

	l.mu.Lock()
	if renderErr != nil {
		l.state = StateFailed
	} else {
		l.state = StateSucceeded
	}
	l.mu.Unlock()

	if renderErr != nil {
		log.Error().
			Err(renderErr).
			Str("request_id", req.ID.String()).
			Msg("display consultation outcome")
	}
}

// consult performs the single delegate call. Any failure after dispatch is
// absorbed into a fallback outcome so every submission terminates in
// displayable text.
func (l *Lifecycle) consult(ctx context.Context, d specialistx.Descriptor, req contractx.ConsultationRequest) contractx.ConsultationOutcome {
	ts := req.SubmittedAt

	p, err := promptx.Compose(d, req.Query)
	if err == nil {
		var body string
		body, err = l.gateway.Invoke(ctx, p)
		if err == nil {
			return contractx.ConsultationOutcome{
				Kind:         contractx.OutcomeSuccess,
				SpecialistID: d.ID,
				Timestamp:    ts,
				Body:         FormatSuccess(d, ts, body),
			}
		}
	}

	log.Warn().
		Err(err).
		Str("request_id", req.ID.String()).
		Str("specialist", d.ID).
		Msg("consultation fell back to simulated guidance")

	return contractx.ConsultationOutcome{
		Kind:         contractx.OutcomeFallbackDemo,
		SpecialistID: d.ID,
		Timestamp:    ts,
		Body:         FormatFallback(d, ts, err),
		Cause:        err.Error(),
	}
}
