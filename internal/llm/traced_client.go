package llm

import (
	"context"
	"time"

	"preshub/internal/logger"
)

// TracedClient wraps a Client and logs each completion call with provider,
// model, latency, and outcome.
type TracedClient struct {
	client *Client
}

// NewTracedClient creates a logging wrapper around a completion client.
func NewTracedClient(client *Client) *TracedClient {
	if client == nil {
		client = NewClient()
	}
	return &TracedClient{client: client}
}

// Underlying returns the wrapped client.
func (tc *TracedClient) Underlying() *Client {
	return tc.client
}

// CreateChatCompletion delegates to the wrapped client and logs the call.
func (tc *TracedClient) CreateChatCompletion(ctx context.Context, messages []Message, opts *Options) (CompletionResponse, error) {
	var requested Provider
	model := ""
	if opts != nil {
		requested = opts.Provider
		model = opts.Model
	}
	provider := resolveVendor(requested).Name()

	start := time.Now()
	resp, err := tc.client.CreateChatCompletion(ctx, messages, opts)
	latency := time.Since(start)

	if err != nil {
		logger.Error("chat completion failed", err,
			"provider", string(provider),
			"model", model,
			"latency_ms", latency.Milliseconds(),
		)
		return resp, err
	}

	logger.Debug("chat completion succeeded",
		"provider", string(provider),
		"model", model,
		"choices", len(resp.Choices),
		"latency_ms", latency.Milliseconds(),
	)
	return resp, nil
}
