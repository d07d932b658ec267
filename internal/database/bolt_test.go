package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/amaumene/gocatalog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *BoltDB {
	t.Helper()
	db, err := NewBolt(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGenreSnapshotRoundTrip(t *testing.T) {
	db := openTestDB(t)

	missing, err := db.GetGenreSnapshot(models.KindMovie)
	require.NoError(t, err)
	assert.Nil(t, missing)

	fetched := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	err = db.StoreGenreSnapshot(&models.GenreSnapshot{
		Kind:      models.KindMovie,
		Genres:    []models.Genre{{ID: 28, Name: "Action"}, {ID: 18, Name: "Drama"}},
		FetchedAt: fetched,
	})
	require.NoError(t, err)

	got, err := db.GetGenreSnapshot(models.KindMovie)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.KindMovie, got.Kind)
	assert.Equal(t, []models.Genre{{ID: 28, Name: "Action"}, {ID: 18, Name: "Drama"}}, got.Genres)
	assert.True(t, fetched.Equal(got.FetchedAt))
}

func TestStoreGenreSnapshotStampsTime(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.StoreGenreSnapshot(&models.GenreSnapshot{Kind: models.KindTV}))

	got, err := db.GetGenreSnapshot(models.KindTV)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.WithinDuration(t, time.Now(), got.FetchedAt, time.Minute)
	assert.Empty(t, got.Genres)

	assert.Error(t, db.StoreGenreSnapshot(&models.GenreSnapshot{}))
	assert.Error(t, db.StoreGenreSnapshot(nil))
}

func TestListAndDeleteStale(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.StoreGenreSnapshot(&models.GenreSnapshot{
		Kind:      models.KindTV,
		FetchedAt: time.Now(),
	}))
	require.NoError(t, db.StoreGenreSnapshot(&models.GenreSnapshot{
		Kind:      models.KindMovie,
		FetchedAt: time.Now().Add(-30 * 24 * time.Hour),
	}))

	all, err := db.ListGenreSnapshots()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, models.KindMovie, all[0].Kind)
	assert.Equal(t, models.KindTV, all[1].Kind)

	deleted, err := db.DeleteStaleSnapshots(7 * 24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	all, err = db.ListGenreSnapshots()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, models.KindTV, all[0].Kind)
}
