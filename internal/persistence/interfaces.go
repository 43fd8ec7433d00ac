// Package persistence provides database abstraction interfaces for storing
// briefs and discovery-question seed documents.
package persistence

import (
	"context"

	"preshub/internal/core"
)

// BriefFilter narrows brief listings. Empty fields match everything.
type BriefFilter struct {
	Industry   string
	ClientRole string
	Limit      int
}

// BriefRepository handles brief persistence. Briefs are insert-only: there is
// no update or delete.
type BriefRepository interface {
	// Create inserts a new brief record.
	Create(ctx context.Context, record *core.BriefRecord) error

	// List retrieves brief records newest first, optionally filtered.
	List(ctx context.Context, filter BriefFilter) ([]core.BriefRecord, error)

	// ListByIndustryRole retrieves records whose brief.industry matches, and
	// brief.clientRole too when clientRole is non-empty. Newest first.
	ListByIndustryRole(ctx context.Context, industry, clientRole string) ([]core.BriefRecord, error)
}

// QuestionSeedRepository handles the pre-seeded discovery-question documents.
type QuestionSeedRepository interface {
	// Find retrieves seed documents matching the industry, and the client
	// role too when non-empty, in insertion order.
	Find(ctx context.Context, industry, clientRole string) ([]core.QuestionSeed, error)

	// Insert stores seed documents.
	Insert(ctx context.Context, seeds []core.QuestionSeed) error

	// Count returns the number of stored seed documents.
	Count(ctx context.Context) (int, error)
}

// Database is the top-level persistence interface.
type Database interface {
	Briefs() BriefRepository
	QuestionSeeds() QuestionSeedRepository

	// Ping verifies the database connection is alive.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
