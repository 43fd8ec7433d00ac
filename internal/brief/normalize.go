package brief

import (
	"strings"

	"preshub/internal/core"
)

// The model's reply is untrusted JSON. Everything below coerces it field by
// field into the strict GeneratedBrief shape instead of trusting its declared
// structure.

// coerceStringSlice keeps only non-empty string elements, dropping everything
// else. Non-array values become an empty slice, never nil.
func coerceStringSlice(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// stringField returns the value when it is a non-empty string, otherwise the
// fallback.
func stringField(value any, fallback string) string {
	if s, ok := value.(string); ok && s != "" {
		return s
	}
	return fallback
}

func mapCaseStudy(payload any) core.CaseStudy {
	fields, _ := payload.(map[string]any)
	cs := core.CaseStudy{
		Title:   stringField(fields["title"], "Relevant Case Study"),
		Summary: stringField(fields["summary"], "Case study details will be added once available."),
		Metrics: coerceStringSlice(fields["metrics"]),
	}
	if len(cs.Metrics) == 0 {
		cs.Metrics = []string{"ROI and efficiency impact", "Timeline to value", "Adoption highlights"}
	}
	return cs
}

// mapBriefResponse normalizes a parsed model payload into a GeneratedBrief.
// Metadata strings fall back to the original request's fields; the pitch
// defaults to empty when not a string.
func mapBriefResponse(req core.BriefRequest, payload map[string]any) core.GeneratedBrief {
	metadata, _ := payload["metadata"].(map[string]any)

	pitch := ""
	if s, ok := payload["elevatorPitch"].(string); ok {
		pitch = s
	}

	return core.GeneratedBrief{
		Industry:           stringField(metadata["industry"], req.Industry),
		MeetingType:        stringField(metadata["meetingType"], req.MeetingType),
		ClientRole:         stringField(metadata["clientRole"], req.ClientRole),
		Context:            stringField(metadata["context"], req.Context),
		ElevatorPitch:      pitch,
		DiscoveryQuestions: coerceStringSlice(payload["discoveryQuestions"]),
		IndustryInsights:   coerceStringSlice(payload["industryInsights"]),
		Positioning:        coerceStringSlice(payload["positioning"]),
		CaseStudy:          mapCaseStudy(payload["caseStudy"]),
	}
}

// stripCodeFence removes surrounding Markdown code-fence markers. Models
// sometimes wrap the JSON reply in a ```json block despite instructions.
func stripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		// Drop the fence's language tag line ("json", "JSON", or empty).
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
