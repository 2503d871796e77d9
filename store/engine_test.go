package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/DaytimeLobster/gogrow/models"

	"gorm.io/gorm"
)

func testStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "trailcam.db")
}

func TestInitSchemaCreatesStoreFile(t *testing.T) {
	path := testStorePath(t)
	engine := NewEngine()

	if err := engine.InitSchema(context.Background(), path); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected store file on disk: %v", err)
	}
}

func TestInitSchemaIsIdempotent(t *testing.T) {
	path := testStorePath(t)
	engine := NewEngine()
	ctx := context.Background()

	if err := engine.InitSchema(ctx, path); err != nil {
		t.Fatalf("first init: %v", err)
	}

	markers := NewMarkers(engine)
	id, err := markers.Insert(ctx, path, models.Marker{Lat: 1, Lng: 2, Info: "keep"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := engine.InitSchema(ctx, path); err != nil {
		t.Fatalf("second init: %v", err)
	}

	m, err := markers.Get(ctx, path, id)
	if err != nil {
		t.Fatalf("get after reinit: %v", err)
	}
	if m.Info != "keep" {
		t.Fatalf("expected row to survive reinit, got %+v", m)
	}
}

func TestMarkersGetMissingIDReturnsRecordNotFound(t *testing.T) {
	path := testStorePath(t)
	engine := NewEngine()
	ctx := context.Background()

	if err := engine.InitSchema(ctx, path); err != nil {
		t.Fatalf("init: %v", err)
	}

	_, err := NewMarkers(engine).Get(ctx, path, "nope")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
	}
}

func TestMarkersInsertAssignsDistinctIDs(t *testing.T) {
	path := testStorePath(t)
	engine := NewEngine()
	markers := NewMarkers(engine)
	ctx := context.Background()

	a, err := markers.Insert(ctx, path, models.Marker{Lat: 1, Lng: 1})
	if err != nil {
		t.Fatalf("insert a: %v", err)
	}
	b, err := markers.Insert(ctx, path, models.Marker{Lat: 2, Lng: 2})
	if err != nil {
		t.Fatalf("insert b: %v", err)
	}
	if a == b || a == "" {
		t.Fatalf("expected distinct generated ids, got %q and %q", a, b)
	}

	list, err := markers.List(ctx, path)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 markers, got %d", len(list))
	}
}

func TestStoresAreIsolatedPerPath(t *testing.T) {
	engine := NewEngine()
	markers := NewMarkers(engine)
	ctx := context.Background()

	pathA := testStorePath(t)
	pathB := testStorePath(t)

	if _, err := markers.Insert(ctx, pathA, models.Marker{Lat: 1, Lng: 1}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	listB, err := markers.List(ctx, pathB)
	if err != nil {
		t.Fatalf("list b: %v", err)
	}
	if len(listB) != 0 {
		t.Fatalf("expected empty store b, got %d rows", len(listB))
	}
}

func TestConcurrentInsertsSerializePerStore(t *testing.T) {
	path := testStorePath(t)
	engine := NewEngine()
	markers := NewMarkers(engine)
	ctx := context.Background()

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := markers.Insert(ctx, path, models.Marker{Lat: 1, Lng: 1})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent insert: %v", err)
		}
	}

	list, err := markers.List(ctx, path)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != n {
		t.Fatalf("expected %d markers, got %d", n, len(list))
	}
}

func TestConcurrentFirstReadsOnFreshStore(t *testing.T) {
	path := testStorePath(t)
	engine := NewEngine()
	markers := NewMarkers(engine)
	ctx := context.Background()

	// No InitSchema first: every reader runs the lazy migration against a
	// store file that does not exist yet, and none may fail.
	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := markers.List(ctx, path)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent first read: %v", err)
		}
	}
}

func TestLinesUpdateKeepsEndpointColumns(t *testing.T) {
	path := testStorePath(t)
	engine := NewEngine()
	lines := NewLines(engine)
	ctx := context.Background()

	id, err := lines.Insert(ctx, path, models.Line{StartLat: 1, StartLng: 2, EndLat: 3, EndLng: 4, Info: "old"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := lines.Update(ctx, path, models.Line{ID: id, Info: "new", Color: "red"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	l, err := lines.Get(ctx, path, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if l.StartLat != 1 || l.EndLng != 4 {
		t.Fatalf("expected endpoints untouched, got %+v", l)
	}
	if l.Info != "new" || l.Color != "red" {
		t.Fatalf("unexpected update result: %+v", l)
	}
}

func TestJournalsUpdateMissingIDReturnsRecordNotFound(t *testing.T) {
	path := testStorePath(t)
	engine := NewEngine()
	journals := NewJournals(engine)
	ctx := context.Background()

	if _, err := journals.Insert(ctx, path, models.JournalEntry{EntryDate: "May 01, 2026 08:00", EntryTitle: "t", EntryContent: "c", IsFavorite: "no"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	err := journals.Update(ctx, path, models.JournalEntry{ID: "missing", EntryTitle: "x", EntryContent: "y", IsFavorite: "no"})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
	}
}
