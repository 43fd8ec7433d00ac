package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// roundTripFunc lets tests intercept the HTTP round trip.
type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func spyClient(t *testing.T, status int, body string, captured **http.Request) *Client {
	t.Helper()
	httpClient := &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			if captured != nil {
				*captured = req
			}
			return &http.Response{
				StatusCode: status,
				Body:       io.NopCloser(strings.NewReader(body)),
				Header:     make(http.Header),
			}, nil
		}),
	}
	return NewClientWithHTTP(httpClient, func(string) string { return "test-key" })
}

func TestCreateChatCompletionMissingKey(t *testing.T) {
	calls := 0
	httpClient := &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			calls++
			return nil, errors.New("network should not be reached")
		}),
	}
	client := NewClientWithHTTP(httpClient, func(string) string { return "" })

	_, err := client.CreateChatCompletion(context.Background(), []Message{{Role: "user", Content: "hi"}}, nil)
	if err == nil {
		t.Fatal("expected an error when no API key is configured")
	}

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %T: %v", err, err)
	}
	if cfgErr.Provider != ProviderOpenAI {
		t.Errorf("expected provider openai, got %q", cfgErr.Provider)
	}
	if cfgErr.EnvVar != "OPENAI_API_KEY" {
		t.Errorf("expected env var OPENAI_API_KEY, got %q", cfgErr.EnvVar)
	}
	if calls != 0 {
		t.Errorf("expected no network calls, got %d", calls)
	}
}

func TestCreateChatCompletionSuccess(t *testing.T) {
	var captured *http.Request
	client := spyClient(t, http.StatusOK, `{"choices":[{"message":{"role":"assistant","content":"hello"}}]}`, &captured)

	messages := []Message{
		{Role: "system", Content: "be brief"},
		{Role: "user", Content: "hi"},
	}
	resp, err := client.CreateChatCompletion(context.Background(), messages, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Choices) != 1 || resp.Choices[0].Message.Content != "hello" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	if captured.URL.String() != "https://api.openai.com/v1/chat/completions" {
		t.Errorf("unexpected endpoint: %s", captured.URL)
	}
	if got := captured.Header.Get("Authorization"); got != "Bearer test-key" {
		t.Errorf("unexpected authorization header: %q", got)
	}
	if got := captured.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("unexpected content type: %q", got)
	}

	raw, _ := io.ReadAll(captured.Body)
	var sent completionRequest
	if err := json.NewDecoder(bytes.NewReader(raw)).Decode(&sent); err != nil {
		t.Fatalf("failed to decode request body: %v", err)
	}
	if sent.Model != "gpt-4o-mini" {
		t.Errorf("expected default model gpt-4o-mini, got %q", sent.Model)
	}
	if sent.Temperature != 0.2 {
		t.Errorf("expected default temperature 0.2, got %v", sent.Temperature)
	}
	if len(sent.Messages) != 2 || sent.Messages[0].Role != "system" || sent.Messages[1].Role != "user" {
		t.Errorf("message order not preserved: %+v", sent.Messages)
	}
}

func TestCreateChatCompletionProviderError(t *testing.T) {
	client := spyClient(t, http.StatusTooManyRequests, `{"error":"rate limited"}`, nil)

	_, err := client.CreateChatCompletion(context.Background(), []Message{{Role: "user", Content: "hi"}}, nil)
	if err == nil {
		t.Fatal("expected an error for a non-2xx response")
	}

	var reqErr *ProviderRequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected ProviderRequestError, got %T: %v", err, err)
	}
	if reqErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", reqErr.StatusCode)
	}
	if !strings.Contains(reqErr.Body, "rate limited") {
		t.Errorf("expected body to carry the provider payload, got %q", reqErr.Body)
	}
}

func TestCreateChatCompletionGeminiEndpoint(t *testing.T) {
	var captured *http.Request
	client := spyClient(t, http.StatusOK, `{"choices":[{"message":{"content":"ok"}}]}`, &captured)

	opts := &Options{Provider: ProviderGemini, Model: "gemini-2.5-pro"}
	if _, err := client.CreateChatCompletion(context.Background(), []Message{{Role: "user", Content: "hi"}}, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if captured.URL.String() != "https://generativelanguage.googleapis.com/v1beta/openai/chat/completions" {
		t.Errorf("unexpected gemini endpoint: %s", captured.URL)
	}

	var sent completionRequest
	if err := json.NewDecoder(captured.Body).Decode(&sent); err != nil {
		t.Fatalf("failed to decode request body: %v", err)
	}
	if sent.Model != "gemini-2.5-pro" {
		t.Errorf("expected model override, got %q", sent.Model)
	}
}

func TestCreateChatCompletionConfiguredDefaultProvider(t *testing.T) {
	viper.Set("ai.default_provider", "gemini")
	t.Cleanup(viper.Reset)

	var captured *http.Request
	client := spyClient(t, http.StatusOK, `{"choices":[]}`, &captured)

	// No provider in the options: the configured default wins.
	if _, err := client.CreateChatCompletion(context.Background(), []Message{{Role: "user", Content: "hi"}}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(captured.URL.String(), "generativelanguage.googleapis.com") {
		t.Errorf("configured default provider should select gemini, got %s", captured.URL)
	}

	// An explicit provider still overrides the configured default.
	opts := &Options{Provider: ProviderOpenAI}
	if _, err := client.CreateChatCompletion(context.Background(), []Message{{Role: "user", Content: "hi"}}, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(captured.URL.String(), "api.openai.com") {
		t.Errorf("explicit provider should override the configured default, got %s", captured.URL)
	}
}

func TestCreateChatCompletionUnknownProviderFallsBack(t *testing.T) {
	var captured *http.Request
	client := spyClient(t, http.StatusOK, `{"choices":[]}`, &captured)

	opts := &Options{Provider: Provider("claude")}
	if _, err := client.CreateChatCompletion(context.Background(), []Message{{Role: "user", Content: "hi"}}, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(captured.URL.String(), "api.openai.com") {
		t.Errorf("unknown provider should fall back to openai, got %s", captured.URL)
	}
}

func TestCreateChatCompletionMalformedPayload(t *testing.T) {
	client := spyClient(t, http.StatusOK, `not json`, nil)

	_, err := client.CreateChatCompletion(context.Background(), []Message{{Role: "user", Content: "hi"}}, nil)
	if err == nil {
		t.Fatal("expected an error for a malformed payload")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
}
