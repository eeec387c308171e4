package state

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName    = "playring"
	dbFileName = "playring.db"
	memoryDB   = ":memory:"
)

// Manager stores the playlist library in a SQLite database.
type Manager struct {
	db *sql.DB
}

// Open opens the state database at path, creating it if needed.
// An empty path uses the XDG data directory.
func Open(path string) (*Manager, error) {
	if path == "" {
		var err error
		if path, err = getDBPath(); err != nil {
			return nil, err
		}
	}

	if path != memoryDB {
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases consistent across queries.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

// Close closes the database.
func (m *Manager) Close() error {
	return m.db.Close()
}

// DB returns the underlying database handle.
func (m *Manager) DB() *sql.DB {
	return m.db
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
