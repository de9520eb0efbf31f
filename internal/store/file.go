package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/placement-readiness/internal/types"
)

// FileStore keeps the analysis history as a single JSON array on disk,
// newest first. A mutex serializes writers within the process; concurrent
// processes remain last-write-wins with no merge.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file-backed store at path. The file is created
// lazily on first save; a missing file reads as an empty history.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("store path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
		}
	}
	return &FileStore{path: path}, nil
}

// load reads and shape-checks the history. Entries that are not objects or
// lack a valid id are dropped and counted; a document that parses but is
// not an array counts as one corrupted entry.
func (s *FileStore) load() ([]types.AnalysisRecord, int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("failed to read store file %s: %w", s.path, err)
	}
	if len(data) == 0 || !json.Valid(data) {
		return nil, 0, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// Valid JSON, but not an array.
		return nil, 1, nil
	}

	records := make([]types.AnalysisRecord, 0, len(raw))
	corrupted := 0
	for _, entry := range raw {
		var record types.AnalysisRecord
		if err := json.Unmarshal(entry, &record); err != nil || record.ID == uuid.Nil {
			corrupted++
			continue
		}
		records = append(records, record)
	}
	return records, corrupted, nil
}

// persist rewrites the history file. Corrupted entries do not survive a
// write; only valid records are persisted.
func (s *FileStore) persist(records []types.AnalysisRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store file %s: %w", s.path, err)
	}
	return nil
}

// List returns all valid records newest first plus the corrupted count.
func (s *FileStore) List(_ context.Context) ([]types.AnalysisRecord, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Get returns the record with the given id, or nil when absent.
func (s *FileStore) Get(_ context.Context, id uuid.UUID) (*types.AnalysisRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, _, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, nil
}

// Save prepends a record so the history stays newest first.
func (s *FileStore) Save(_ context.Context, record *types.AnalysisRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, _, err := s.load()
	if err != nil {
		return err
	}
	records = append([]types.AnalysisRecord{*record}, records...)
	return s.persist(records)
}

// Update replaces the stored record with the same id in place.
func (s *FileStore) Update(_ context.Context, record *types.AnalysisRecord) (*types.AnalysisRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, _, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == record.ID {
			records[i] = *record
			if err := s.persist(records); err != nil {
				return nil, err
			}
			return &records[i], nil
		}
	}
	return nil, nil
}

// Delete removes the record with the given id if present.
func (s *FileStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, _, err := s.load()
	if err != nil {
		return err
	}
	kept := records[:0]
	for _, record := range records {
		if record.ID != id {
			kept = append(kept, record)
		}
	}
	return s.persist(kept)
}

// Close is a no-op for the file store.
func (s *FileStore) Close() {}
