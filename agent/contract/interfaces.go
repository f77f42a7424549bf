package contract

import "context"

// Gateway is the seam to the external agent/LLM framework. Invoke performs
// exactly one blocking call and returns the generated text or an error
// wrapping ErrDelegate.
type Gateway interface {
	Invoke(ctx context.Context, p Prompt) (string, error)
}

// History receives one entry per completed consultation.
type History interface {
	Append(entry HistoryEntry)
}
