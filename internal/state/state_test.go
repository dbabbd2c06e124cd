package state

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory SQLite database with the schema initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, initSchema(db))
	return db
}

func TestInitSchema_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, initSchema(db))

	var version int
	require.NoError(t, db.QueryRow(`SELECT version FROM schema_version`).Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)
}

func TestGetCarousel_Empty(t *testing.T) {
	db := setupTestDB(t)

	c, err := getCarousel(db)

	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestSaveAndGetCarousel(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, saveCarousel(db, Carousel{Index: 4, ClipKey: "/clips/a.mp3", Fullscreen: true}))

	c, err := getCarousel(db)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, Carousel{Index: 4, ClipKey: "/clips/a.mp3", Fullscreen: true}, *c)
}

func TestSaveCarousel_Overwrites(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, saveCarousel(db, Carousel{Index: 1, ClipKey: "a"}))
	require.NoError(t, saveCarousel(db, Carousel{Index: 2}))

	c, err := getCarousel(db)
	require.NoError(t, err)
	assert.Equal(t, Carousel{Index: 2}, *c)

	var rows int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM carousel_state`).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestRecordPlay_Counts(t *testing.T) {
	db := setupTestDB(t)
	first := time.Unix(1_700_000_000, 0)
	second := first.Add(time.Hour)

	require.NoError(t, recordPlay(db, "a", first))
	require.NoError(t, recordPlay(db, "a", second))

	s, err := getStats(db, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Plays)
	assert.True(t, s.LastPlayed.Equal(second))
}

func TestGetStats_Unknown(t *testing.T) {
	db := setupTestDB(t)

	s, err := getStats(db, "missing")

	require.NoError(t, err)
	assert.Zero(t, s.Plays)
	assert.True(t, s.LastPlayed.IsZero())
}

func TestPrune(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now()
	for _, key := range []string{"a", "b", "c"} {
		require.NoError(t, recordPlay(db, key, now))
	}

	removed, err := prune(db, []string{"b", "z"})
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	s, err := getStats(db, "b")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Plays)

	s, err = getStats(db, "a")
	require.NoError(t, err)
	assert.Zero(t, s.Plays)
}

func TestPrune_NothingStale(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, recordPlay(db, "a", time.Now()))

	removed, err := prune(db, []string{"a"})

	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestManager_CloseFlushesPendingSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "reel.db")

	m, err := OpenPath(path)
	require.NoError(t, err)
	m.SaveCarousel(Carousel{Index: 1})
	m.SaveCarousel(Carousel{Index: 3, ClipKey: "c"})
	require.NoError(t, m.Close())

	m, err = OpenPath(path)
	require.NoError(t, err)
	defer m.Close()

	c, err := m.GetCarousel()
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, Carousel{Index: 3, ClipKey: "c"}, *c)
}

func TestManager_PlayStats(t *testing.T) {
	m, err := OpenPath(filepath.Join(t.TempDir(), "reel.db"))
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.RecordPlay("a", time.Now()))

	s, err := m.GetStats("a")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Plays)

	removed, err := m.Prune(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestMock(t *testing.T) {
	m := NewMock()

	m.SaveCarousel(Carousel{Index: 2})
	c, _ := m.GetCarousel()
	assert.Equal(t, 2, c.Index)
	assert.Len(t, m.Saves(), 1)

	_ = m.RecordPlay("a", time.Now())
	s, _ := m.GetStats("a")
	assert.Equal(t, 1, s.Plays)

	require.NoError(t, m.Close())
	assert.True(t, m.IsClosed())
}
