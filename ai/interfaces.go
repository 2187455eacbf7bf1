package ai

import "context"

// Responder generates a natural-language reply from a fully assembled
// prompt. Implementations must be thread-safe for concurrent use.
type Responder interface {
	// Generate produces the model reply for the prompt.
	// Returns an error if generation fails.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Provider aggregates AI services for convenient initialization and
// lifecycle management.
type Provider interface {
	// Responder returns the text generation service.
	// The returned Responder is safe for concurrent use.
	Responder() Responder

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
