package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "reel"
	dbFileName   = "reel.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager persists the carousel position and play history in SQLite.
type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *Carousel
}

// Open opens the state database under the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the state database at path, creating it if needed.
func OpenPath(path string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

// Close flushes a pending carousel save and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveMu.Unlock()

	flushErr := m.flush()
	if err := m.db.Close(); err != nil {
		return err
	}
	return flushErr
}

func (m *Manager) GetCarousel() (*Carousel, error) {
	return getCarousel(m.db)
}

// SaveCarousel stores the carousel position. Writes are debounced; rapid
// scrolling only persists the last position.
func (m *Manager) SaveCarousel(c Carousel) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &c

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() { _ = m.flush() })
}

// flush writes the pending carousel position, if any.
func (m *Manager) flush() error {
	m.saveMu.Lock()
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending == nil {
		return nil
	}
	return saveCarousel(m.db, *pending)
}

func (m *Manager) RecordPlay(key string, at time.Time) error {
	return recordPlay(m.db, key, at)
}

func (m *Manager) GetStats(key string) (ClipStats, error) {
	return getStats(m.db, key)
}

func (m *Manager) Prune(keep []string) (int, error) {
	return prune(m.db, keep)
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
