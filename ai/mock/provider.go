package mock

import "github.com/guddy2005/real-estate-app/ai"

// MockProvider is a test double for ai.Provider.
type MockProvider struct {
	responder *MockResponder
}

// NewMockProvider creates a new mock provider with a default mock
// responder. Use GetMockResponder to reach the concrete type.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		responder: NewMockResponder(),
	}
}

// NewMockProviderWithResponder creates a mock provider with a custom
// mock responder.
func NewMockProviderWithResponder(responder *MockResponder) ai.Provider {
	return &MockProvider{
		responder: responder,
	}
}

// Responder returns the mock responder.
func (p *MockProvider) Responder() ai.Responder {
	return p.responder
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockResponder returns the underlying mock responder for test
// assertions.
func (p *MockProvider) GetMockResponder() *MockResponder {
	return p.responder
}
