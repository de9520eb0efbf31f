package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/placement-readiness/internal/types"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "history.json"))
	require.NoError(t, err)
	return s
}

func testRecord(company string) *types.AnalysisRecord {
	now := time.Now().UTC()
	return &types.AnalysisRecord{
		ID:              uuid.New(),
		CreatedAt:       now,
		UpdatedAt:       now,
		Company:         company,
		BaseScore:       50,
		FinalScore:      50,
		SkillConfidence: map[string]types.Confidence{},
	}
}

func TestFileStoreEmptyHistory(t *testing.T) {
	s := newTestStore(t)

	records, corrupted, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Zero(t, corrupted)
}

func TestFileStoreSaveListsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := testRecord("First")
	second := testRecord("Second")
	require.NoError(t, s.Save(ctx, first))
	require.NoError(t, s.Save(ctx, second))

	records, corrupted, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Zero(t, corrupted)
	assert.Equal(t, "Second", records[0].Company)
	assert.Equal(t, "First", records[1].Company)
}

func TestFileStoreGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	record := testRecord("Zoho")
	require.NoError(t, s.Save(ctx, record))

	got, err := s.Get(ctx, record.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, "Zoho", got.Company)

	missing, err := s.Get(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFileStoreUpdate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	record := testRecord("Zoho")
	require.NoError(t, s.Save(ctx, record))

	record.FinalScore = 60
	updated, err := s.Update(ctx, record)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 60, updated.FinalScore)

	got, err := s.Get(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, got.FinalScore)
}

func TestFileStoreUpdateMissingReturnsNil(t *testing.T) {
	s := newTestStore(t)

	updated, err := s.Update(context.Background(), testRecord("Ghost"))
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestFileStoreDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	record := testRecord("Zoho")
	require.NoError(t, s.Save(ctx, record))
	require.NoError(t, s.Delete(ctx, record.ID))

	records, _, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	// Deleting an absent id is not an error.
	assert.NoError(t, s.Delete(ctx, uuid.New()))
}

func TestFileStoreCorruptionHandling(t *testing.T) {
	valid := testRecord("Valid")

	tests := []struct {
		name          string
		content       string
		wantRecords   int
		wantCorrupted int
	}{
		{
			name:          "unparseable json reads as empty",
			content:       `{"id": [broken`,
			wantRecords:   0,
			wantCorrupted: 0,
		},
		{
			name:          "valid json but not an array",
			content:       `{"analyses": []}`,
			wantRecords:   0,
			wantCorrupted: 1,
		},
		{
			name:          "entries that are not objects are dropped",
			content:       `["a string", 42, null]`,
			wantRecords:   0,
			wantCorrupted: 3,
		},
		{
			name:          "entries without a valid id are dropped",
			content:       `[{"company": "NoID"}, {"id": "not-a-uuid"}]`,
			wantRecords:   0,
			wantCorrupted: 2,
		},
		{
			name: "valid entries survive alongside corrupted ones",
			content: `[{"company": "NoID"}, {"id": "` + valid.ID.String() +
				`", "company": "Valid", "created_at": "2025-01-01T00:00:00Z", "updated_at": "2025-01-01T00:00:00Z"}]`,
			wantRecords:   1,
			wantCorrupted: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "history.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			s, err := NewFileStore(path)
			require.NoError(t, err)

			records, corrupted, err := s.List(context.Background())
			require.NoError(t, err)
			assert.Len(t, records, tt.wantRecords)
			assert.Equal(t, tt.wantCorrupted, corrupted)
		})
	}
}

func TestFileStoreSaveDropsCorruptedEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"company": "NoID"}]`), 0o644))

	s, err := NewFileStore(path)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, testRecord("Fresh")))

	records, corrupted, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Zero(t, corrupted)
}

func TestFileStoreCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), testRecord("Zoho")))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestNewFileStoreRejectsEmptyPath(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)
}
