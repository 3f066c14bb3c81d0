package llm

import (
	"context"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/jonathan/linkedin-post-generator/internal/metrics"
)

// groqBaseURL is Groq's OpenAI-compatible endpoint.
const groqBaseURL = "https://api.groq.com/openai/v1"

// GroqClient implements Client against Groq's chat completions API
// using the OpenAI-compatible SDK.
type GroqClient struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

// NewGroqClient creates a Groq-backed completion client.
func NewGroqClient(cfg *Config) (*GroqClient, error) {
	model := cfg.Model
	if model == "" {
		model = defaultModel(ProviderGroq)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(groqBaseURL),
	)

	return &GroqClient{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// Complete issues one chat completion request, measuring wall-clock
// latency and extracting token usage from the response.
func (c *GroqClient) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	req.normalize()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
		MaxTokens:   openai.Int(int64(req.MaxTokens)),
		Temperature: openai.Float(req.Temperature),
	})
	latency := time.Since(start).Seconds()

	if err != nil {
		return nil, &ProviderUnavailableError{
			Provider: ProviderGroq,
			Message:  "chat completion failed",
			Cause:    err,
		}
	}
	if len(resp.Choices) == 0 {
		return nil, &ProviderUnavailableError{
			Provider: ProviderGroq,
			Message:  "empty choices in response",
		}
	}

	text := resp.Choices[0].Message.Content
	tokens := int(resp.Usage.TotalTokens)
	if tokens == 0 {
		tokens = EstimateTokens(text)
	}

	return &Completion{
		Text: text,
		Metric: metrics.CallMetric{
			LatencySeconds: latency,
			TokensUsed:     tokens,
		},
	}, nil
}

// Provider returns ProviderGroq.
func (c *GroqClient) Provider() Provider { return ProviderGroq }

// Close releases resources held by the client.
func (c *GroqClient) Close() error { return nil }
