package mock

import (
	"context"
	"fmt"
)

// MockResponder is a test double for ai.Responder.
// It allows custom behavior injection via function fields.
type MockResponder struct {
	// GenerateFunc is called by Generate if set.
	// If nil, a canned reply derived from the prompt length is returned.
	GenerateFunc func(ctx context.Context, prompt string) (string, error)

	callCount  int
	lastPrompt string
}

// NewMockResponder creates a mock responder with default behavior.
func NewMockResponder() *MockResponder {
	return &MockResponder{}
}

// Generate returns the injected reply, or a deterministic canned one.
func (m *MockResponder) Generate(ctx context.Context, prompt string) (string, error) {
	m.callCount++
	m.lastPrompt = prompt

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}

	return fmt.Sprintf("mock reply (%d prompt bytes)", len(prompt)), nil
}

// CallCount returns the number of times Generate was called.
func (m *MockResponder) CallCount() int {
	return m.callCount
}

// LastPrompt returns the prompt passed to the most recent Generate call.
func (m *MockResponder) LastPrompt() string {
	return m.lastPrompt
}

// Reset clears the call count, recorded prompt and custom function.
func (m *MockResponder) Reset() {
	m.callCount = 0
	m.lastPrompt = ""
	m.GenerateFunc = nil
}
