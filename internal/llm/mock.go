package llm

import (
	"context"
	"strings"

	"github.com/jonathan/linkedin-post-generator/internal/metrics"
)

// Canned responses for the mock client, keyed off the stage each prompt
// belongs to. They keep the pipeline fully exercisable without live
// credentials.
const (
	mockAnglesResponse = `1. Personal career journey and lessons learned
2. Industry trends and future predictions
3. Tips and best practices for professionals`

	mockDraftResponse = `🚀 Exciting times in the tech industry!

As someone passionate about innovation, I've been reflecting on how rapidly our field evolves. Every day brings new opportunities to learn, grow, and make an impact.

Whether you're just starting your career or you're a seasoned professional, remember that continuous learning is key. Embrace challenges, seek mentorship, and step outside your comfort zone.`

	mockRefineResponse = `{
    "hashtags": ["#TechInnovation", "#CareerGrowth", "#ContinuousLearning", "#ProfessionalDevelopment", "#Innovation"],
    "cta": "What's one thing you've learned recently that changed your perspective? Share your thoughts in the comments!"
}`

	mockFallbackResponse = "Mock response for unrecognized prompt"
)

// MockClient returns deterministic canned text with zero-cost metrics.
// It is selected at construction time when no API key is configured.
type MockClient struct{}

// NewMockClient creates a credential-free completion client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Complete selects a canned response from the prompt's contents. The
// mapping mirrors the three prompt shapes the pipeline issues:
// brainstorming, drafting, and refinement.
func (c *MockClient) Complete(_ context.Context, req CompletionRequest) (*Completion, error) {
	prompt := strings.ToLower(req.Prompt)

	var text string
	switch {
	case strings.Contains(prompt, "brainstorm") && strings.Contains(prompt, "angles"):
		text = mockAnglesResponse
	case strings.Contains(prompt, "hashtags") && strings.Contains(prompt, "cta"):
		text = mockRefineResponse
	case strings.Contains(prompt, "linkedin post") && strings.Contains(prompt, "write"):
		text = mockDraftResponse
	default:
		text = mockFallbackResponse
	}

	return &Completion{
		Text:   text,
		Metric: metrics.CallMetric{},
	}, nil
}

// Provider returns ProviderMock.
func (c *MockClient) Provider() Provider { return ProviderMock }

// Close is a no-op.
func (c *MockClient) Close() error { return nil }
