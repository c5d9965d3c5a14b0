package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"schoolnote/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	dsn := BuildDSN("prefs.db", 2*time.Second)

	assert.Contains(t, dsn, "file:prefs.db?")
	assert.Contains(t, dsn, "busy_timeout%282000%29")
	assert.Contains(t, dsn, "journal_mode%28WAL%29")
	assert.Contains(t, dsn, "synchronous%28NORMAL%29")

	memory := BuildDSN(":memory:", 0)
	assert.Contains(t, memory, "busy_timeout%285000%29")
	assert.NotContains(t, memory, "journal_mode")
}

func TestOpen_CreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.db")

	db, err := Open(context.Background(), path, time.Second)
	require.NoError(t, err)
	defer db.Close()

	var name string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='preferences'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "preferences", name)

	// Migrations are idempotent.
	assert.NoError(t, Migrate(context.Background(), db))
}

func TestPreferenceRepository(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, ":memory:", 0)
	require.NoError(t, err)
	defer db.Close()
	repo := NewPreferenceRepository(db)

	_, err = repo.Get(ctx, repository.KeyUserLanguage)
	assert.ErrorIs(t, err, repository.ErrPreferenceNotFound)

	require.NoError(t, repo.Set(ctx, repository.KeyUserLanguage, "en"))
	require.NoError(t, repo.Set(ctx, repository.KeyUserLanguage, "ko"))
	require.NoError(t, repo.Set(ctx, repository.KeyFirstLaunch, "false"))

	value, err := repo.Get(ctx, repository.KeyUserLanguage)
	require.NoError(t, err)
	assert.Equal(t, "ko", value)

	value, err = repo.Get(ctx, repository.KeyFirstLaunch)
	require.NoError(t, err)
	assert.Equal(t, "false", value)
}

func TestPreferenceRepository_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.db")

	db, err := Open(ctx, path, 0)
	require.NoError(t, err)
	require.NoError(t, NewPreferenceRepository(db).Set(ctx, repository.KeyUserLanguage, "ko"))
	require.NoError(t, db.Close())

	reopened, err := Open(ctx, path, 0)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := NewPreferenceRepository(reopened).Get(ctx, repository.KeyUserLanguage)
	require.NoError(t, err)
	assert.Equal(t, "ko", value)
}
