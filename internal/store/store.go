// Package store persists analysis records. Two implementations share one
// interface: a JSON file store for local single-user runs and a PostgreSQL
// store for server deployments. Both tolerate malformed entries by dropping
// them from the visible history and reporting a corrupted-entry count,
// never by failing the read.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/placement-readiness/internal/types"
)

// Store is the persisted analysis history. Writers are last-write-wins; the
// core never holds a lock across a read-modify-write cycle on behalf of the
// caller.
type Store interface {
	// List returns all records newest first, plus the number of corrupted
	// entries that were silently excluded.
	List(ctx context.Context) ([]types.AnalysisRecord, int, error)

	// Get returns the record with the given id, or nil when absent.
	Get(ctx context.Context, id uuid.UUID) (*types.AnalysisRecord, error)

	// Save persists a newly created record.
	Save(ctx context.Context, record *types.AnalysisRecord) error

	// Update replaces the stored record with the same id, returning the
	// stored result or nil when no such record exists.
	Update(ctx context.Context, record *types.AnalysisRecord) (*types.AnalysisRecord, error)

	// Delete removes the record with the given id. Deleting a missing
	// record is not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// Close releases any underlying resources.
	Close()
}
