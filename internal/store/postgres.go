package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/placement-readiness/internal/types"
)

// PostgresStore persists each analysis record as one JSONB row.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// EnsureSchema creates the analyses table when it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS readiness_analyses (
			id UUID PRIMARY KEY,
			content JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create analyses table: %w", err)
	}
	return nil
}

// List returns all records newest first. Rows whose JSONB no longer decodes
// into a record, or decodes without an id, are excluded and counted.
func (s *PostgresStore) List(ctx context.Context) ([]types.AnalysisRecord, int, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT content FROM readiness_analyses ORDER BY created_at DESC`)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var records []types.AnalysisRecord
	corrupted := 0
	for rows.Next() {
		var content []byte
		if err := rows.Scan(&content); err != nil {
			return nil, 0, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		var record types.AnalysisRecord
		if err := json.Unmarshal(content, &record); err != nil || record.ID == uuid.Nil {
			corrupted++
			continue
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read analysis rows: %w", err)
	}
	return records, corrupted, nil
}

// Get returns the record with the given id, or nil when absent.
func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (*types.AnalysisRecord, error) {
	var content []byte
	err := s.pool.QueryRow(ctx,
		`SELECT content FROM readiness_analyses WHERE id = $1`, id,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis %s: %w", id, err)
	}

	var record types.AnalysisRecord
	if err := json.Unmarshal(content, &record); err != nil {
		return nil, fmt.Errorf("failed to decode analysis %s: %w", id, err)
	}
	return &record, nil
}

// Save inserts a newly created record.
func (s *PostgresStore) Save(ctx context.Context, record *types.AnalysisRecord) error {
	content, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO readiness_analyses (id, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)`,
		record.ID, content, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis %s: %w", record.ID, err)
	}
	return nil
}

// Update replaces the stored record with the same id.
func (s *PostgresStore) Update(ctx context.Context, record *types.AnalysisRecord) (*types.AnalysisRecord, error) {
	content, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}
	tag, err := s.pool.Exec(ctx,
		`UPDATE readiness_analyses SET content = $2, updated_at = $3 WHERE id = $1`,
		record.ID, content, record.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update analysis %s: %w", record.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return record, nil
}

// Delete removes the record with the given id if present.
func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM readiness_analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis %s: %w", id, err)
	}
	return nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
