package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // Postgres driver
)

// PostgresDB implements the Database interface for PostgreSQL. Briefs and
// seed documents are stored as JSONB with extracted filter columns, keeping
// the document-shaped query patterns of the API.
type PostgresDB struct {
	db     *sql.DB
	briefs BriefRepository
	seeds  QuestionSeedRepository
}

// NewPostgresDB creates a new PostgreSQL database connection.
// The handle is shared for the process lifetime; every write is a single
// independent document insert, so no transaction boundaries are needed.
func NewPostgresDB(connectionString string) (*PostgresDB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	pg := &PostgresDB{db: db}
	pg.briefs = &postgresBriefRepo{db: db}
	pg.seeds = &postgresSeedRepo{db: db}
	return pg, nil
}

// Briefs returns the brief repository.
func (p *PostgresDB) Briefs() BriefRepository { return p.briefs }

// QuestionSeeds returns the question seed repository.
func (p *PostgresDB) QuestionSeeds() QuestionSeedRepository { return p.seeds }

// Ping verifies the database connection.
func (p *PostgresDB) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close closes the database connection.
func (p *PostgresDB) Close() error {
	return p.db.Close()
}
