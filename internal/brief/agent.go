package brief

import (
	"context"
	"encoding/json"
	"fmt"

	"preshub/internal/core"
	"preshub/internal/llm"
	"preshub/internal/logger"
)

// CompletionClient is the slice of the llm client the agent needs. Both
// llm.Client and llm.TracedClient satisfy it.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, messages []llm.Message, opts *llm.Options) (llm.CompletionResponse, error)
}

// Options select the provider and model for a generation call.
type Options struct {
	Provider llm.Provider
	Model    string
}

// Agent turns a brief request into a generated brief via the completion
// client, falling back to the static generator on any failure.
type Agent struct {
	client CompletionClient
}

// NewAgent creates a brief agent around the given completion client.
func NewAgent(client CompletionClient) *Agent {
	if client == nil {
		client = llm.NewTracedClient(nil)
	}
	return &Agent{client: client}
}

// GenerateExecutiveBrief produces a brief for the request. It never fails
// outward: provider errors, empty responses, and malformed payloads all
// resolve to the deterministic fallback brief, so callers always receive a
// renderable result.
func (a *Agent) GenerateExecutiveBrief(ctx context.Context, req core.BriefRequest, opts *Options) core.GeneratedBrief {
	generated, err := a.tryGenerate(ctx, req, opts)
	if err != nil {
		logger.Error("AI brief generation failed, using fallback copy", err,
			"industry", req.Industry,
			"meeting_type", req.MeetingType,
		)
		return GenerateBriefData(req)
	}
	return generated
}

func (a *Agent) tryGenerate(ctx context.Context, req core.BriefRequest, opts *Options) (core.GeneratedBrief, error) {
	messages := []llm.Message{
		{Role: "system", Content: SystemPrompt},
		{Role: "user", Content: BuildUserPrompt(req)},
	}

	temperature := llm.DefaultTemperature
	llmOpts := &llm.Options{Temperature: &temperature}
	if opts != nil {
		llmOpts.Provider = opts.Provider
		llmOpts.Model = opts.Model
	}

	completion, err := a.client.CreateChatCompletion(ctx, messages, llmOpts)
	if err != nil {
		return core.GeneratedBrief{}, err
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return core.GeneratedBrief{}, llm.ErrEmptyResponse
	}

	content := stripCodeFence(completion.Choices[0].Message.Content)

	var payload map[string]any
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return core.GeneratedBrief{}, fmt.Errorf("failed to parse brief payload: %w", err)
	}

	return mapBriefResponse(req, payload), nil
}
