package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/DaytimeLobster/gogrow/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Engine opens short-lived connections against per-folder store files: open,
// operate, close, never across a request boundary. Writes to the same store
// file are serialized; reads and operations on different folders' stores
// proceed independently.
type Engine struct {
	mu           sync.Mutex
	writeLocks   map[string]*sync.Mutex
	migrateLocks map[string]*sync.Mutex
}

func NewEngine() *Engine {
	return &Engine{
		writeLocks:   map[string]*sync.Mutex{},
		migrateLocks: map[string]*sync.Mutex{},
	}
}

func (e *Engine) lockFor(m map[string]*sync.Mutex, storePath string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()

	l, ok := m[storePath]
	if !ok {
		l = &sync.Mutex{}
		m[storePath] = l
	}
	return l
}

func (e *Engine) writeLock(storePath string) *sync.Mutex {
	return e.lockFor(e.writeLocks, storePath)
}

// migrateLock is separate from the write lock: read paths also run the lazy
// migration, and writers already hold the write lock when they open.
func (e *Engine) migrateLock(storePath string) *sync.Mutex {
	return e.lockFor(e.migrateLocks, storePath)
}

// open connects to the store file and runs the create-if-absent migration for
// the given record kinds. A folder's store may not exist until its first
// write, so the migration runs lazily on every open rather than at startup.
// The returned close func must be called on every exit path.
func (e *Engine) open(ctx context.Context, storePath string, kinds ...any) (*gorm.DB, func(), error) {
	db, err := gorm.Open(sqlite.Open(storePath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open store %s: %w", storePath, err)
	}

	closeFn := func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
	}

	ml := e.migrateLock(storePath)
	ml.Lock()
	err = db.AutoMigrate(kinds...)
	ml.Unlock()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("migrate store %s: %w", storePath, err)
	}

	return db.WithContext(ctx), closeFn, nil
}

// InitSchema creates every record table in the store file. Called when a
// folder is first created; idempotent, never touches existing rows.
func (e *Engine) InitSchema(ctx context.Context, storePath string) error {
	_, closeFn, err := e.open(ctx, storePath, &models.Marker{}, &models.Line{}, &models.JournalEntry{})
	if err != nil {
		return err
	}
	closeFn()
	return nil
}
