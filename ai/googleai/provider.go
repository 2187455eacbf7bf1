package googleai

import (
	"context"
	"log/slog"

	"github.com/guddy2005/real-estate-app/ai"
)

// Provider implements ai.Provider using Gemini services.
type Provider struct {
	config    *ai.Config
	responder *Responder
	logger    *slog.Logger
}

// NewProvider creates a new AI provider backed by Gemini.
// The config is validated before use.
func NewProvider(ctx context.Context, config *ai.Config) (ai.Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	responder, err := newResponder(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:    config,
		responder: responder,
		logger:    slog.Default().With("component", "googleai-provider"),
	}, nil
}

// Responder returns the text generation service.
func (p *Provider) Responder() ai.Responder {
	return p.responder
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying client does not require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing Gemini provider")
	return nil
}
