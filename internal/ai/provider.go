package ai

import "context"

// Params are the generation parameters forwarded to the gateway.
// The chat pipeline uses one fixed configuration; nothing is tuned per request.
type Params struct {
	MaxNewTokens   int
	ReturnFullText bool
	Temperature    float64
}

func DefaultParams() Params {
	return Params{
		MaxNewTokens:   200,
		ReturnFullText: false,
		Temperature:    0.7,
	}
}

// Provider is a remote text-generation service. Implementations must be safe
// for concurrent use.
type Provider interface {
	Generate(ctx context.Context, prompt string, p Params) (string, error)
}
