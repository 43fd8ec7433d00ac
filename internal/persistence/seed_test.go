package persistence

import (
	"context"
	"testing"

	"preshub/internal/core"
)

type memorySeedRepo struct {
	seeds   []core.QuestionSeed
	inserts int
}

func (m *memorySeedRepo) Find(ctx context.Context, industry, clientRole string) ([]core.QuestionSeed, error) {
	return m.seeds, nil
}

func (m *memorySeedRepo) Insert(ctx context.Context, seeds []core.QuestionSeed) error {
	m.inserts++
	m.seeds = append(m.seeds, seeds...)
	return nil
}

func (m *memorySeedRepo) Count(ctx context.Context) (int, error) {
	return len(m.seeds), nil
}

type memoryDatabase struct {
	seeds *memorySeedRepo
}

func (m *memoryDatabase) Briefs() BriefRepository               { return nil }
func (m *memoryDatabase) QuestionSeeds() QuestionSeedRepository { return m.seeds }
func (m *memoryDatabase) Ping(ctx context.Context) error        { return nil }
func (m *memoryDatabase) Close() error                          { return nil }

func TestSeedQuestionsIdempotent(t *testing.T) {
	db := &memoryDatabase{seeds: &memorySeedRepo{}}

	if err := SeedQuestions(context.Background(), db); err != nil {
		t.Fatalf("first seeding failed: %v", err)
	}
	if len(db.seeds.seeds) != len(StarterSeeds) {
		t.Errorf("expected %d seeds, got %d", len(StarterSeeds), len(db.seeds.seeds))
	}

	if err := SeedQuestions(context.Background(), db); err != nil {
		t.Fatalf("second seeding failed: %v", err)
	}
	if db.seeds.inserts != 1 {
		t.Errorf("seeding must be a no-op when seeds exist, got %d inserts", db.seeds.inserts)
	}
}

func TestStarterSeedsCoverBothShapes(t *testing.T) {
	singles, lists := 0, 0
	for _, seed := range StarterSeeds {
		if seed.Industry == "" {
			t.Errorf("seed without industry: %+v", seed)
		}
		if len(seed.Categories) > 0 {
			lists++
		} else if seed.Category != "" && seed.Questions != nil {
			singles++
		} else {
			t.Errorf("seed matches neither document shape: %+v", seed)
		}
	}
	if singles == 0 || lists == 0 {
		t.Errorf("starter seeds should exercise both shapes, got %d single and %d list", singles, lists)
	}
}
