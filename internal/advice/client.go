// Package advice generates the financial health blurb through a generative
// text API. Failures never surface raw to the user: the advisor degrades to
// a canned fallback message.
package advice

import (
	"context"
	"time"
)

// Client defines the interface for generative text providers.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds provider settings.
type Config struct {
	APIKey      string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

// FallbackMessage is shown whenever generation fails or no credential is
// configured.
const FallbackMessage = "Não foi possível analisar seus dados agora, mas mantenha a calma!"
