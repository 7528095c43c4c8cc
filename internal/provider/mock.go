package provider

import "jp-stockgen/internal/generate"

// MockName is reported as the data source in run summaries.
const MockName = "Mock Data Generator"

var _ DataProvider = (*MockProvider)(nil)

// MockProvider is a DataProvider backed by the synthetic generator.
// It embeds *generate.Generator to expose Snapshot and Chart directly.
type MockProvider struct {
	*generate.Generator
}

// NewMockProvider wraps g.
func NewMockProvider(g *generate.Generator) *MockProvider {
	return &MockProvider{Generator: g}
}

// GetName returns provider name
func (p *MockProvider) GetName() string {
	return MockName
}

// Close is a no-op; the generator holds no external resources.
func (p *MockProvider) Close() error {
	return nil
}
