package render

import (
	"strings"
	"testing"

	"preshub/internal/core"
)

func sampleBrief() core.GeneratedBrief {
	return core.GeneratedBrief{
		Industry:           "Retail",
		MeetingType:        "Product Demo",
		ClientRole:         "VP Level",
		ElevatorPitch:      "We help retailers win.",
		DiscoveryQuestions: []string{"How fast can you restock?", "What signals feed forecasting?"},
		IndustryInsights:   []string{"Margins are thin"},
		Positioning:        []string{"Unlike RPA, we adapt"},
		CaseStudy: core.CaseStudy{
			Title:   "Acme rollout",
			Summary: "Cut costs.",
			Metrics: []string{"30% faster"},
		},
	}
}

func TestMarkdown(t *testing.T) {
	out := Markdown(sampleBrief())

	for _, want := range []string{
		"# Executive Brief: Retail | Product Demo | VP Level",
		"## Elevator Pitch",
		"We help retailers win.",
		"1. How fast can you restock?",
		"2. What signals feed forecasting?",
		"- Margins are thin",
		"**Acme rollout**",
		"- 30% faster",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownEmptyHeader(t *testing.T) {
	out := Markdown(core.GeneratedBrief{})
	if !strings.Contains(out, "# Executive Brief: Untitled") {
		t.Errorf("empty brief should render an untitled header:\n%s", out)
	}
}

func TestTerminalContainsAllSections(t *testing.T) {
	out := Terminal(sampleBrief())

	for _, want := range []string{
		"Executive Brief",
		"Elevator Pitch",
		"Discovery Questions",
		"Industry Insights",
		"Competitive Positioning",
		"Relevant Case Study",
		"Acme rollout",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("terminal output missing %q", want)
		}
	}
}
