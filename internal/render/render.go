package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"preshub/internal/core"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).MarginTop(1)
	bulletStyle  = lipgloss.NewStyle().PaddingLeft(2)
	metaStyle    = lipgloss.NewStyle().Faint(true)
)

// Markdown renders a generated brief as a markdown document.
func Markdown(b core.GeneratedBrief) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Executive Brief: %s\n\n", headerLine(b)))

	sb.WriteString("## Elevator Pitch\n\n")
	sb.WriteString(b.ElevatorPitch + "\n\n")

	sb.WriteString("## Discovery Questions\n\n")
	for i, q := range b.DiscoveryQuestions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, q))
	}

	sb.WriteString("\n## Industry Insights\n\n")
	for _, insight := range b.IndustryInsights {
		sb.WriteString("- " + insight + "\n")
	}

	sb.WriteString("\n## Competitive Positioning\n\n")
	for _, p := range b.Positioning {
		sb.WriteString("- " + p + "\n")
	}

	sb.WriteString("\n## Relevant Case Study\n\n")
	sb.WriteString(fmt.Sprintf("**%s**\n\n%s\n\n", b.CaseStudy.Title, b.CaseStudy.Summary))
	for _, m := range b.CaseStudy.Metrics {
		sb.WriteString("- " + m + "\n")
	}

	if b.Context != "" {
		sb.WriteString("\n---\n\nContext: " + b.Context + "\n")
	}

	return sb.String()
}

// Terminal renders a generated brief with lipgloss styling for CLI output.
func Terminal(b core.GeneratedBrief) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Executive Brief") + "\n")
	sb.WriteString(metaStyle.Render(headerLine(b)) + "\n")

	sb.WriteString(sectionStyle.Render("Elevator Pitch") + "\n")
	sb.WriteString(bulletStyle.Render(b.ElevatorPitch) + "\n")

	sb.WriteString(sectionStyle.Render("Discovery Questions") + "\n")
	for i, q := range b.DiscoveryQuestions {
		sb.WriteString(bulletStyle.Render(fmt.Sprintf("%d. %s", i+1, q)) + "\n")
	}

	sb.WriteString(sectionStyle.Render("Industry Insights") + "\n")
	for _, insight := range b.IndustryInsights {
		sb.WriteString(bulletStyle.Render("• "+insight) + "\n")
	}

	sb.WriteString(sectionStyle.Render("Competitive Positioning") + "\n")
	for _, p := range b.Positioning {
		sb.WriteString(bulletStyle.Render("• "+p) + "\n")
	}

	sb.WriteString(sectionStyle.Render("Relevant Case Study") + "\n")
	sb.WriteString(bulletStyle.Render(b.CaseStudy.Title) + "\n")
	sb.WriteString(bulletStyle.Render(b.CaseStudy.Summary) + "\n")
	for _, m := range b.CaseStudy.Metrics {
		sb.WriteString(bulletStyle.Render("• "+m) + "\n")
	}

	return sb.String()
}

func headerLine(b core.GeneratedBrief) string {
	parts := []string{}
	for _, part := range []string{b.Industry, b.MeetingType, b.ClientRole} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "Untitled"
	}
	return strings.Join(parts, " | ")
}
