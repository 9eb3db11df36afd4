package repository

import "context"

// Generator is the outbound boundary to the generative-text service.
type Generator interface {
	// Generate performs one synchronous call with a fully built prompt and
	// returns the raw text reply. No retries, no streaming.
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}
