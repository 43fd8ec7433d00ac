package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"preshub/internal/core"
)

// postgresBriefRepo implements BriefRepository for PostgreSQL
type postgresBriefRepo struct {
	db *sql.DB
}

func (r *postgresBriefRepo) Create(ctx context.Context, record *core.BriefRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	briefJSON, err := json.Marshal(record.Brief)
	if err != nil {
		return fmt.Errorf("failed to marshal brief: %w", err)
	}

	var inputJSON any
	if record.Input != nil {
		data, err := json.Marshal(record.Input)
		if err != nil {
			return fmt.Errorf("failed to marshal brief input: %w", err)
		}
		inputJSON = data
	}

	query := `
		INSERT INTO briefs (id, input, brief, industry, client_role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = r.db.ExecContext(ctx, query,
		record.ID, inputJSON, briefJSON,
		record.Brief.Industry, record.Brief.ClientRole, record.CreatedAt,
	)
	return err
}

func (r *postgresBriefRepo) List(ctx context.Context, filter BriefFilter) ([]core.BriefRecord, error) {
	query := `SELECT id, input, brief, created_at FROM briefs WHERE 1=1`
	args := []any{}
	if filter.Industry != "" {
		args = append(args, filter.Industry)
		query += fmt.Sprintf(" AND industry = $%d", len(args))
	}
	if filter.ClientRole != "" {
		args = append(args, filter.ClientRole)
		query += fmt.Sprintf(" AND client_role = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []core.BriefRecord
	for rows.Next() {
		record, err := scanBriefRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

func (r *postgresBriefRepo) ListByIndustryRole(ctx context.Context, industry, clientRole string) ([]core.BriefRecord, error) {
	return r.List(ctx, BriefFilter{Industry: industry, ClientRole: clientRole})
}

func scanBriefRecord(rows *sql.Rows) (*core.BriefRecord, error) {
	var (
		record    core.BriefRecord
		inputJSON []byte
		briefJSON []byte
	)
	if err := rows.Scan(&record.ID, &inputJSON, &briefJSON, &record.CreatedAt); err != nil {
		return nil, err
	}
	if len(briefJSON) > 0 {
		if err := json.Unmarshal(briefJSON, &record.Brief); err != nil {
			return nil, fmt.Errorf("failed to unmarshal brief %s: %w", record.ID, err)
		}
	}
	if len(inputJSON) > 0 {
		input := &core.BriefRequest{}
		if err := json.Unmarshal(inputJSON, input); err != nil {
			return nil, fmt.Errorf("failed to unmarshal brief input %s: %w", record.ID, err)
		}
		record.Input = input
	}
	return &record, nil
}

// postgresSeedRepo implements QuestionSeedRepository for PostgreSQL
type postgresSeedRepo struct {
	db *sql.DB
}

func (r *postgresSeedRepo) Find(ctx context.Context, industry, clientRole string) ([]core.QuestionSeed, error) {
	query := `SELECT doc FROM question_seeds WHERE industry = $1`
	args := []any{industry}
	if clientRole != "" {
		args = append(args, clientRole)
		query += " AND client_role = $2"
	}
	query += " ORDER BY seq"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var seeds []core.QuestionSeed
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var seed core.QuestionSeed
		if err := json.Unmarshal(doc, &seed); err != nil {
			return nil, fmt.Errorf("failed to unmarshal question seed: %w", err)
		}
		seeds = append(seeds, seed)
	}
	return seeds, rows.Err()
}

func (r *postgresSeedRepo) Insert(ctx context.Context, seeds []core.QuestionSeed) error {
	query := `
		INSERT INTO question_seeds (id, industry, client_role, doc)
		VALUES ($1, $2, $3, $4)
	`
	for _, seed := range seeds {
		doc, err := json.Marshal(seed)
		if err != nil {
			return fmt.Errorf("failed to marshal question seed: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, uuid.NewString(), seed.Industry, seed.ClientRole, doc); err != nil {
			return fmt.Errorf("failed to insert question seed: %w", err)
		}
	}
	return nil
}

func (r *postgresSeedRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM question_seeds`).Scan(&count)
	return count, err
}
