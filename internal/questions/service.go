package questions

import (
	"context"
	"sync"

	"preshub/internal/core"
)

// SeedSource reads pre-seeded question documents for an industry and
// optional client role.
type SeedSource interface {
	Find(ctx context.Context, industry, clientRole string) ([]core.QuestionSeed, error)
}

// BriefSource reads saved briefs whose brief.industry (and brief.clientRole,
// when given) match.
type BriefSource interface {
	ListByIndustryRole(ctx context.Context, industry, clientRole string) ([]core.BriefRecord, error)
}

// Service merges the seed question bank with the recency ranking over saved
// briefs.
type Service struct {
	seeds  SeedSource
	briefs BriefSource
}

// NewService creates a question aggregation service.
func NewService(seeds SeedSource, briefs BriefSource) *Service {
	return &Service{seeds: seeds, briefs: briefs}
}

// GetQuestions returns the merged role/category question bank for an
// industry. Industry presence is validated by the caller. The two sub-queries
// are independent reads and run concurrently.
func (s *Service) GetQuestions(ctx context.Context, industry, clientRole string) ([]core.RoleCategories, error) {
	var (
		wg       sync.WaitGroup
		docs     []core.QuestionSeed
		records  []core.BriefRecord
		seedErr  error
		briefErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		docs, seedErr = s.seeds.Find(ctx, industry, clientRole)
	}()
	go func() {
		defer wg.Done()
		records, briefErr = s.briefs.ListByIndustryRole(ctx, industry, clientRole)
	}()
	wg.Wait()

	if seedErr != nil {
		return nil, seedErr
	}
	if briefErr != nil {
		return nil, briefErr
	}

	return Merge(NormalizeSeeds(docs), RankRecentQuestions(records)), nil
}
