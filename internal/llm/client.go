package llm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/viper"
)

// DefaultTemperature biases completions toward deterministic, low-variance
// business copy rather than creative variation.
const DefaultTemperature = 0.2

// Options control a single completion call.
type Options struct {
	Provider    Provider // Defaults to openai when empty or unrecognized
	Model       string   // Overrides the provider's default model
	Temperature *float64 // Defaults to DefaultTemperature when nil
}

// Client issues chat-completion requests against a registered provider and
// normalizes the response. A single request/response round trip: no retry,
// no timeout beyond the HTTP client's own, no streaming.
type Client struct {
	httpClient *http.Client
	lookupEnv  func(string) string
}

// NewClient creates a completion client using the default HTTP client.
func NewClient() *Client {
	return &Client{
		httpClient: http.DefaultClient,
		lookupEnv:  os.Getenv,
	}
}

// NewClientWithHTTP creates a completion client with a caller-supplied HTTP
// client and environment lookup. Used by tests to spy on network calls.
func NewClientWithHTTP(httpClient *http.Client, lookupEnv func(string) string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if lookupEnv == nil {
		lookupEnv = os.Getenv
	}
	return &Client{httpClient: httpClient, lookupEnv: lookupEnv}
}

// CreateChatCompletion sends the messages to the selected provider and returns
// the normalized completion response. Message order is preserved verbatim.
func (c *Client) CreateChatCompletion(ctx context.Context, messages []Message, opts *Options) (CompletionResponse, error) {
	if opts == nil {
		opts = &Options{}
	}

	v := resolveVendor(opts.Provider)

	apiKey := c.resolveAPIKey(v)
	if apiKey == "" {
		return CompletionResponse{}, &ConfigurationError{Provider: v.Name(), EnvVar: v.APIKeyEnv()}
	}

	model := opts.Model
	if model == "" {
		model = viper.GetString(fmt.Sprintf("ai.%s.model", v.Name()))
	}
	if model == "" {
		model = v.DefaultModel()
	}

	temperature := DefaultTemperature
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}

	req, err := v.BuildRequest(ctx, apiKey, completionRequest{
		Model:       model,
		Temperature: temperature,
		Messages:    messages,
	})
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("failed to build %s request: %w", v.Name(), err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("%s request failed: %w", v.Name(), err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return CompletionResponse{}, fmt.Errorf("failed to read %s response: %w", v.Name(), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return CompletionResponse{}, &ProviderRequestError{
			Provider:   v.Name(),
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return v.ParseResponse(body)
}

// resolveAPIKey reads the vendor's key from the environment first, then from
// viper configuration (ai.<provider>.api_key).
func (c *Client) resolveAPIKey(v vendor) string {
	if key := c.lookupEnv(v.APIKeyEnv()); key != "" {
		return key
	}
	return viper.GetString(fmt.Sprintf("ai.%s.api_key", v.Name()))
}
