package advice

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/semneura/semneura/internal/model"
)

// ErrSuperseded indicates a request was obsoleted by a newer one before it
// resolved; its result must be discarded.
var ErrSuperseded = errors.New("advice request superseded")

// Advisor serializes advice requests with a monotonically increasing
// sequence number so a stale response is never applied over a newer one:
// last-requested wins, not last-resolved.
type Advisor struct {
	client Client
	seq    atomic.Uint64
}

// NewAdvisor wraps a client. A nil client always yields the fallback.
func NewAdvisor(client Client) *Advisor {
	return &Advisor{client: client}
}

// Advise builds the prompt and asks the provider. Any failure degrades to
// FallbackMessage; only a superseded request returns an error, and callers
// drop that result.
func (a *Advisor) Advise(ctx context.Context, transactions []model.Transaction, reminders []model.Reminder, cloudSynced bool) (string, error) {
	id := a.seq.Add(1)

	if a.client == nil {
		return FallbackMessage, nil
	}

	prompt, err := BuildPrompt(transactions, reminders, cloudSynced)
	if err != nil {
		slog.Warn("Failed to build advice prompt", "error", err)
		return FallbackMessage, nil
	}

	text, err := a.client.Generate(ctx, prompt)

	// A response only applies if no newer request was issued meanwhile.
	if a.seq.Load() != id {
		return "", ErrSuperseded
	}

	if err != nil {
		slog.Warn("Advice generation failed, using fallback", "error", err)
		return FallbackMessage, nil
	}
	return text, nil
}
