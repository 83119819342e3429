package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-inspector/ctxhook/internal/adapter/store/sqlite"
	"github.com/maestro-inspector/ctxhook/internal/domain"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndListInjections(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first := domain.Injection{
		ToolName:  "maestro_capture_screen",
		Source:    domain.SourceDefault,
		CreatedAt: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
	}
	second := domain.Injection{
		ToolName:  "maestro_hierarchy",
		Source:    domain.SourceFile,
		CreatedAt: time.Date(2026, 8, 29, 11, 0, 0, 0, time.UTC),
	}

	require.NoError(t, store.RecordInjection(ctx, first))
	require.NoError(t, store.RecordInjection(ctx, second))

	records, err := store.RecentInjections(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first
	assert.Equal(t, "maestro_hierarchy", records[0].ToolName)
	assert.Equal(t, domain.SourceFile, records[0].Source)
	assert.Equal(t, second.CreatedAt, records[0].CreatedAt)
	assert.Equal(t, "maestro_capture_screen", records[1].ToolName)
	assert.NotZero(t, records[0].ID)
}

func TestRecentInjectionsHonorsLimit(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	base := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.RecordInjection(ctx, domain.Injection{
			ToolName:  "maestro_focus_region",
			Source:    domain.SourceDefault,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	records, err := store.RecentInjections(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, base.Add(4*time.Minute), records[0].CreatedAt)
}

func TestRecentInjectionsEmptyStore(t *testing.T) {
	store := newTestStore(t)

	records, err := store.RecentInjections(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecordInjectionRejectsUnknownSource(t *testing.T) {
	store := newTestStore(t)

	err := store.RecordInjection(context.Background(), domain.Injection{
		ToolName:  "maestro_capture_screen",
		Source:    "cache",
		CreatedAt: time.Now(),
	})
	assert.Error(t, err)
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "injections.db")

	store, err := sqlite.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.RecordInjection(ctx, domain.Injection{
		ToolName:  "maestro_hierarchy",
		Source:    domain.SourceFile,
		CreatedAt: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, store.Close())

	reopened, err := sqlite.NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	records, err := reopened.RecentInjections(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "maestro_hierarchy", records[0].ToolName)
}
