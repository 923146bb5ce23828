package db

import (
	"database/sql"
	"sync"
)

// Manager owns the process-wide database handle. The connection is opened
// lazily on the first Acquire call; concurrent first callers collapse onto a
// single attempt, and every later call returns the cached handle (or the
// cached failure). There is no reconnect: the handle lives as long as the
// process, and *sql.DB pools connections underneath it.
type Manager struct {
	dsn  string
	open func(dsn string) (*sql.DB, error)

	once sync.Once
	db   *sql.DB
	err  error
}

// NewManager creates a Manager for the given connection string.
// No connection is made until Acquire is called.
func NewManager(dsn string) *Manager {
	return &Manager{dsn: dsn, open: InitPostgres}
}

// Acquire returns the shared database handle, opening it on first use.
func (m *Manager) Acquire() (*sql.DB, error) {
	m.once.Do(func() {
		m.db, m.err = m.open(m.dsn)
	})
	return m.db, m.err
}

// Close releases the underlying handle if one was ever opened.
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}
	return m.db.Close()
}
