package brief

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"preshub/internal/core"
	"preshub/internal/llm"
)

// fakeCompletionClient returns a canned response or error.
type fakeCompletionClient struct {
	resp llm.CompletionResponse
	err  error

	gotMessages []llm.Message
	gotOpts     *llm.Options
}

func (f *fakeCompletionClient) CreateChatCompletion(ctx context.Context, messages []llm.Message, opts *llm.Options) (llm.CompletionResponse, error) {
	f.gotMessages = messages
	f.gotOpts = opts
	return f.resp, f.err
}

func completionWith(content string) llm.CompletionResponse {
	return llm.CompletionResponse{
		Choices: []llm.Choice{{Message: llm.ChoiceMessage{Role: "assistant", Content: content}}},
	}
}

func TestGenerateExecutiveBriefSuccess(t *testing.T) {
	client := &fakeCompletionClient{resp: completionWith(`{
		"elevatorPitch": "We help retailers win.",
		"discoveryQuestions": ["How fast can you restock?"],
		"industryInsights": ["Margins are thin"],
		"positioning": ["Unlike RPA, we adapt"],
		"caseStudy": {"title": "Acme", "summary": "Cut costs.", "metrics": ["30% faster"]}
	}`)}

	agent := NewAgent(client)
	req := core.BriefRequest{Industry: "Retail", MeetingType: "Product Demo", ClientRole: "VP Level"}
	brief := agent.GenerateExecutiveBrief(context.Background(), req, nil)

	if brief.ElevatorPitch != "We help retailers win." {
		t.Errorf("unexpected pitch: %s", brief.ElevatorPitch)
	}
	if brief.Industry != "Retail" {
		t.Errorf("metadata should fall back to the request: %s", brief.Industry)
	}
	if brief.CaseStudy.Title != "Acme" {
		t.Errorf("unexpected case study: %+v", brief.CaseStudy)
	}

	// The agent sends a system prompt followed by the user prompt.
	if len(client.gotMessages) != 2 || client.gotMessages[0].Role != "system" || client.gotMessages[1].Role != "user" {
		t.Errorf("unexpected message shape: %+v", client.gotMessages)
	}
	if client.gotOpts == nil || client.gotOpts.Temperature == nil || *client.gotOpts.Temperature != 0.2 {
		t.Errorf("expected temperature 0.2, got %+v", client.gotOpts)
	}
}

func TestGenerateExecutiveBriefFencedResponse(t *testing.T) {
	client := &fakeCompletionClient{resp: completionWith("```json\n{\"elevatorPitch\":\"fenced\"}\n```")}

	agent := NewAgent(client)
	brief := agent.GenerateExecutiveBrief(context.Background(), core.BriefRequest{Industry: "Retail"}, nil)

	if brief.ElevatorPitch != "fenced" {
		t.Errorf("fenced JSON should still parse, got %q", brief.ElevatorPitch)
	}
}

func TestGenerateExecutiveBriefFallsBackOnError(t *testing.T) {
	req := core.BriefRequest{
		Industry:    "Healthcare",
		MeetingType: "Discovery Session",
		ClientRole:  "Director Level",
	}

	tests := []struct {
		name   string
		client *fakeCompletionClient
	}{
		{"client error", &fakeCompletionClient{err: errors.New("provider down")}},
		{"empty choices", &fakeCompletionClient{resp: llm.CompletionResponse{}}},
		{"empty content", &fakeCompletionClient{resp: completionWith("")}},
		{"malformed payload", &fakeCompletionClient{resp: completionWith("not json at all")}},
	}

	want := GenerateBriefData(req)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agent := NewAgent(tt.client)
			got := agent.GenerateExecutiveBrief(context.Background(), req, nil)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("fallback brief must equal the static generator output\ngot:  %+v\nwant: %+v", got, want)
			}
		})
	}
}

func TestGenerateExecutiveBriefForwardsOptions(t *testing.T) {
	client := &fakeCompletionClient{resp: completionWith(`{"elevatorPitch":"ok"}`)}
	agent := NewAgent(client)

	agent.GenerateExecutiveBrief(context.Background(), core.BriefRequest{Industry: "Retail"}, &Options{
		Provider: llm.ProviderGemini,
		Model:    "gemini-2.5-pro",
	})

	if client.gotOpts.Provider != llm.ProviderGemini || client.gotOpts.Model != "gemini-2.5-pro" {
		t.Errorf("provider options not forwarded: %+v", client.gotOpts)
	}
}
