package db

import (
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestManager_AcquireOpensOnce(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	defer mockDB.Close()

	var opens int32
	m := &Manager{
		dsn: "postgres://ignored",
		open: func(string) (*sql.DB, error) {
			atomic.AddInt32(&opens, 1)
			return mockDB, nil
		},
	}

	const callers = 50
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			db, err := m.Acquire()
			if err != nil {
				t.Errorf("Acquire returned error: %v", err)
			}
			if db != mockDB {
				t.Errorf("Acquire returned unexpected handle")
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&opens); got != 1 {
		t.Errorf("expected exactly 1 open, got %d", got)
	}
}

func TestManager_AcquireCachesError(t *testing.T) {
	var opens int32
	openErr := errors.New("connection refused")
	m := &Manager{
		dsn: "postgres://ignored",
		open: func(string) (*sql.DB, error) {
			atomic.AddInt32(&opens, 1)
			return nil, openErr
		},
	}

	for i := 0; i < 3; i++ {
		if _, err := m.Acquire(); !errors.Is(err, openErr) {
			t.Fatalf("Acquire() error = %v; want %v", err, openErr)
		}
	}
	if opens != 1 {
		t.Errorf("expected a single open attempt, got %d", opens)
	}
}

func TestManager_CloseWithoutAcquire(t *testing.T) {
	m := NewManager("postgres://ignored")
	if err := m.Close(); err != nil {
		t.Errorf("Close() on unopened manager returned %v", err)
	}
}
