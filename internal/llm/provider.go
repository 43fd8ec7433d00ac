package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/viper"
)

// Provider identifies a supported chat-completion vendor.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"

	// DefaultProvider is used when neither the caller nor configuration names
	// a provider, or when the named one is not registered.
	DefaultProvider = ProviderOpenAI
)

const (
	openAIEndpoint = "https://api.openai.com/v1/chat/completions"

	// Gemini is called through its OpenAI-compatible surface so both vendors
	// share one request and response shape.
	geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/openai/chat/completions"

	openAIDefaultModel = "gpt-4o-mini"
	geminiDefaultModel = "gemini-2.5-flash"
)

// Message is a single role-tagged chat turn. Order is preserved verbatim when
// sent to the vendor.
type Message struct {
	Role    string `json:"role"` // "system", "user", or "assistant"
	Content string `json:"content"`
}

// ChoiceMessage is the message inside one completion choice.
type ChoiceMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Choice is one completion candidate.
type Choice struct {
	Message ChoiceMessage `json:"message"`
}

// CompletionResponse is the normalized completion shape returned for every
// vendor. Callers never see vendor-specific envelopes.
type CompletionResponse struct {
	Choices []Choice `json:"choices"`
}

// vendor describes how to call one provider's chat-completion API.
// One instance per provider, registered at package init, never mutated.
type vendor interface {
	Name() Provider
	APIKeyEnv() string
	DefaultModel() string
	BuildRequest(ctx context.Context, apiKey string, body completionRequest) (*http.Request, error)
	ParseResponse(payload []byte) (CompletionResponse, error)
}

// completionRequest is the JSON body both vendors accept.
type completionRequest struct {
	Model       string    `json:"model"`
	Temperature float64   `json:"temperature"`
	Messages    []Message `json:"messages"`
}

var registry = map[Provider]vendor{
	ProviderOpenAI: openAIVendor{},
	ProviderGemini: geminiVendor{},
}

// resolveVendor maps a provider identifier to its registered vendor. An empty
// identifier defers to the configured ai.default_provider; unknown identifiers
// fall back to the default entry rather than failing.
func resolveVendor(p Provider) vendor {
	if p == "" {
		p = Provider(viper.GetString("ai.default_provider"))
	}
	if v, ok := registry[p]; ok {
		return v
	}
	return registry[DefaultProvider]
}

func buildJSONRequest(ctx context.Context, url, apiKey string, body completionRequest) (*http.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal completion request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)
	return req, nil
}

type openAIVendor struct{}

func (openAIVendor) Name() Provider       { return ProviderOpenAI }
func (openAIVendor) APIKeyEnv() string    { return "OPENAI_API_KEY" }
func (openAIVendor) DefaultModel() string { return openAIDefaultModel }

func (openAIVendor) BuildRequest(ctx context.Context, apiKey string, body completionRequest) (*http.Request, error) {
	return buildJSONRequest(ctx, openAIEndpoint, apiKey, body)
}

func (openAIVendor) ParseResponse(payload []byte) (CompletionResponse, error) {
	var resp CompletionResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return CompletionResponse{}, &ParseError{Provider: ProviderOpenAI, Err: err}
	}
	return resp, nil
}

type geminiVendor struct{}

func (geminiVendor) Name() Provider       { return ProviderGemini }
func (geminiVendor) APIKeyEnv() string    { return "GEMINI_API_KEY" }
func (geminiVendor) DefaultModel() string { return geminiDefaultModel }

func (geminiVendor) BuildRequest(ctx context.Context, apiKey string, body completionRequest) (*http.Request, error) {
	return buildJSONRequest(ctx, geminiEndpoint, apiKey, body)
}

func (geminiVendor) ParseResponse(payload []byte) (CompletionResponse, error) {
	var resp CompletionResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return CompletionResponse{}, &ParseError{Provider: ProviderGemini, Err: err}
	}
	return resp, nil
}
