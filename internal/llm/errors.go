package llm

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse indicates the vendor returned a completion with no content.
var ErrEmptyResponse = errors.New("empty response from model")

// ConfigurationError indicates a provider API key could not be resolved.
// It is returned before any network call is made.
type ConfigurationError struct {
	Provider Provider
	EnvVar   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing %s for %s requests", e.EnvVar, e.Provider)
}

// ProviderRequestError indicates a non-2xx response from the vendor endpoint.
// Body carries the raw response text; vendors put validation details there.
type ProviderRequestError struct {
	Provider   Provider
	StatusCode int
	Body       string
}

func (e *ProviderRequestError) Error() string {
	return fmt.Sprintf("%s request failed (%d): %s", e.Provider, e.StatusCode, e.Body)
}

// ParseError indicates the vendor returned a 2xx response whose body could not
// be decoded into the normalized completion shape.
type ParseError struct {
	Provider Provider
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s response: %v", e.Provider, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
