package db

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenState opens (creating if needed) the local sqlite database that
// holds persisted credentials and draft autosaves.
func OpenState(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
	}
	cfg := &gorm.Config{
		// A chatty SQL log is noise in a terminal client.
		Logger: logger.Default.LogMode(logger.Silent),
	}
	gdb, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}
	return gdb, nil
}

var memSeq atomic.Int64

// OpenMemory is for tests: a throwaway in-memory database. Each call
// gets its own namespace; cache=shared only ties together the pooled
// connections of this one open.
func OpenMemory() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:state_mem_%d?mode=memory&cache=shared", memSeq.Add(1))
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}
