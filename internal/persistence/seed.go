package persistence

import (
	"context"
	"fmt"

	"preshub/internal/core"
	"preshub/internal/logger"
)

// StarterSeeds is the default discovery-question bank inserted by the seed
// command. It exercises both document shapes the questions endpoint accepts.
var StarterSeeds = []core.QuestionSeed{
	{
		Industry:   "Healthcare",
		ClientRole: "C-Suite (CEO, CTO, CFO)",
		Categories: []core.CategorizedQuestions{
			{
				Name: "Strategy",
				Questions: []string{
					"What are your top three operational priorities for the next 18 months?",
					"How is AI positioned in your current digital transformation roadmap?",
				},
			},
			{
				Name: "Compliance",
				Questions: []string{
					"How do HIPAA obligations shape your automation decisions today?",
				},
			},
		},
	},
	{
		Industry:   "Healthcare",
		ClientRole: "Director",
		Category:   "Operations",
		Questions: []string{
			"Which clinical workflows generate the most administrative rework?",
			"How do you measure documentation burden across departments?",
		},
	},
	{
		Industry: "Healthcare",
		Category: "General",
		Questions: []string{
			"What does success look like for an automation pilot in your organization?",
		},
	},
	{
		Industry:   "Financial Services",
		ClientRole: "VP Level",
		Category:   "Risk & Compliance",
		Questions: []string{
			"How do you validate model decisions for regulators today?",
			"Where does manual review create the largest processing backlog?",
		},
	},
	{
		Industry: "Financial Services",
		Categories: []core.CategorizedQuestions{
			{
				Name: "Customer Experience",
				Questions: []string{
					"Which customer journeys still require branch or phone interaction?",
				},
			},
		},
	},
	{
		Industry:   "Retail",
		ClientRole: "Manager",
		Category:   "Operations",
		Questions: []string{
			"How often do stockouts or overstock events hit your top lines?",
			"What signals feed your demand forecasting today?",
		},
	},
	{
		Industry: "Manufacturing",
		Category: "Supply Chain",
		Questions: []string{
			"How quickly can you reroute production when a supplier slips?",
			"What data do you capture from the shop floor today?",
		},
	},
	{
		Industry:   "Technology",
		ClientRole: "Technical Lead",
		Category:   "Engineering",
		Questions: []string{
			"Which parts of your delivery pipeline are still manual?",
			"How do you evaluate build-versus-buy for internal tooling?",
		},
	},
}

// SeedQuestions inserts the starter seed set when the table is empty.
func SeedQuestions(ctx context.Context, db Database) error {
	count, err := db.QuestionSeeds().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count question seeds: %w", err)
	}
	if count > 0 {
		logger.Info("Question seeds already present, skipping", "count", count)
		return nil
	}

	if err := db.QuestionSeeds().Insert(ctx, StarterSeeds); err != nil {
		return fmt.Errorf("failed to insert question seeds: %w", err)
	}
	logger.Info("Inserted starter question seeds", "count", len(StarterSeeds))
	return nil
}
