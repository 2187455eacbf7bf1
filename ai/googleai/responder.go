package googleai

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/guddy2005/real-estate-app/ai"
)

// ErrEmptyResponse is returned when the model produces no choices.
var ErrEmptyResponse = errors.New("model returned no choices")

// Responder implements ai.Responder using the Gemini chat API.
type Responder struct {
	client llms.Model
	config *ai.Config
	logger *slog.Logger
}

// newResponder is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newResponder(ctx context.Context, config *ai.Config) (*Responder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := googleai.New(ctx,
		googleai.WithAPIKey(config.APIKey),
		googleai.WithDefaultModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Responder{
		client: client,
		config: config,
		logger: slog.Default().With("component", "googleai-responder"),
	}, nil
}

// NewResponder creates a new Gemini responder using the provided
// configuration.
//
// Returns ai.Responder interface to enforce abstraction.
func NewResponder(ctx context.Context, config *ai.Config) (ai.Responder, error) {
	return newResponder(ctx, config)
}

// Generate produces the model reply for the prompt.
func (r *Responder) Generate(ctx context.Context, prompt string) (string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	opts := []llms.CallOption{}
	if r.config.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(r.config.MaxTokens))
	}
	if r.config.Temperature > 0 {
		opts = append(opts, llms.WithTemperature(r.config.Temperature))
	}

	response, err := r.client.GenerateContent(ctx, content, opts...)
	if err != nil {
		r.logger.Error("failed to generate content", "model", r.config.Model, "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		r.logger.Debug("no choices returned from model")
		return "", ErrEmptyResponse
	}

	return response.Choices[0].Content, nil
}
