package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DaytimeLobster/gogrow/store"
)

// storeEnv wires a resolver and real store files under a temp image root so
// service tests exercise the actual persistence path.
type storeEnv struct {
	root     string
	resolver FolderResolver
	engine   *store.Engine
}

func newStoreEnv(t *testing.T) storeEnv {
	t.Helper()
	root := t.TempDir()
	return storeEnv{
		root:     root,
		resolver: NewFolderResolver(root),
		engine:   store.NewEngine(),
	}
}

func newTestMarkerService(t *testing.T) (MarkerService, storeEnv) {
	env := newStoreEnv(t)
	return NewMarkerService(env.resolver, store.NewMarkers(env.engine)), env
}

func TestCreateMarkerRoundTrip(t *testing.T) {
	svc, _ := newTestMarkerService(t)
	ctx := context.Background()

	id, err := svc.CreateMarker(ctx, "trailcam", MarkerInput{
		Lat:       45.0,
		Lng:       -93.0,
		Info:      "deer stand",
		IconType:  "paw",
		IconColor: "#ff0000",
		Notes:     "north ridge",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == "" {
		t.Fatalf("expected generated marker id")
	}

	m, err := svc.GetMarker(ctx, "trailcam", id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if m.ID != id || m.Lat != 45.0 || m.Lng != -93.0 {
		t.Fatalf("unexpected marker: %+v", m)
	}
	if m.Info != "deer stand" || m.IconType != "paw" || m.IconColor != "#ff0000" || m.Notes != "north ridge" {
		t.Fatalf("unexpected marker fields: %+v", m)
	}
}

func TestCreateMarkerRejectsOutOfRangeCoordinates(t *testing.T) {
	svc, env := newTestMarkerService(t)
	ctx := context.Background()

	cases := []MarkerInput{
		{Lat: 90.5, Lng: 0},
		{Lat: -91, Lng: 0},
		{Lat: 0, Lng: 180.5},
		{Lat: 0, Lng: -181},
	}
	for _, in := range cases {
		_, err := svc.CreateMarker(ctx, "trailcam", in)
		var appErr *AppError
		if !errors.As(err, &appErr) || appErr.Kind != KindValidation {
			t.Fatalf("expected validation error for %+v, got %v", in, err)
		}
	}

	// Nothing persisted: the folder directory is only created on a valid
	// insert.
	if _, err := os.Stat(filepath.Join(env.root, "trailcam")); !os.IsNotExist(err) {
		t.Fatalf("expected no folder directory after rejected inserts")
	}
}

func TestCreateMarkerAcceptsBoundaryCoordinates(t *testing.T) {
	svc, _ := newTestMarkerService(t)
	ctx := context.Background()

	for _, in := range []MarkerInput{
		{Lat: 90, Lng: 180},
		{Lat: -90, Lng: -180},
	} {
		if _, err := svc.CreateMarker(ctx, "trailcam", in); err != nil {
			t.Fatalf("expected boundary coordinates %+v to be accepted, got %v", in, err)
		}
	}
}

func TestUpdateMarkerKeepsCoordinates(t *testing.T) {
	svc, _ := newTestMarkerService(t)
	ctx := context.Background()

	id, err := svc.CreateMarker(ctx, "trailcam", MarkerInput{Lat: 12.5, Lng: 34.5, Info: "old"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	update := MarkerUpdate{
		ID:        id,
		Info:      "new",
		IconType:  "tree",
		IconColor: "#00ff00",
		Notes:     "updated",
	}
	// Applying the same update twice must land in the same state.
	for i := 0; i < 2; i++ {
		if err := svc.UpdateMarker(ctx, "trailcam", update); err != nil {
			t.Fatalf("update pass %d: %v", i, err)
		}
	}

	m, err := svc.GetMarker(ctx, "trailcam", id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if m.Lat != 12.5 || m.Lng != 34.5 {
		t.Fatalf("expected coordinates untouched, got %+v", m)
	}
	if m.Info != "new" || m.IconType != "tree" || m.IconColor != "#00ff00" || m.Notes != "updated" {
		t.Fatalf("unexpected updated fields: %+v", m)
	}
}

func TestUpdateMarkerMissingIDIsNotFound(t *testing.T) {
	svc, _ := newTestMarkerService(t)
	ctx := context.Background()

	if _, err := svc.CreateMarker(ctx, "trailcam", MarkerInput{Lat: 1, Lng: 2}); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := svc.UpdateMarker(ctx, "trailcam", MarkerUpdate{ID: "no-such-id", Info: "x"})
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Kind != KindNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestDeleteMarkerIsIdempotent(t *testing.T) {
	svc, _ := newTestMarkerService(t)
	ctx := context.Background()

	id, err := svc.CreateMarker(ctx, "trailcam", MarkerInput{Lat: 1, Lng: 2})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteMarker(ctx, "trailcam", id); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.DeleteMarker(ctx, "trailcam", id); err != nil {
		t.Fatalf("second delete: %v", err)
	}

	_, err = svc.GetMarker(ctx, "trailcam", id)
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Kind != KindNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestListMarkersDegradesToEmptyForMissingStore(t *testing.T) {
	svc, _ := newTestMarkerService(t)

	markers, err := svc.ListMarkers(context.Background(), "brandnew")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if markers == nil || len(markers) != 0 {
		t.Fatalf("expected empty list, got %v", markers)
	}
}

func TestListMarkersRejectsInvalidFolder(t *testing.T) {
	svc, _ := newTestMarkerService(t)

	_, err := svc.ListMarkers(context.Background(), "../escape")
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Kind != KindInvalidFolderName {
		t.Fatalf("expected invalid folder name error, got %v", err)
	}
}

func TestMarkerSchemaSurvivesReinitialization(t *testing.T) {
	svc, env := newTestMarkerService(t)
	ctx := context.Background()

	id, err := svc.CreateMarker(ctx, "trailcam", MarkerInput{Lat: 5, Lng: 6, Info: "keep"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	loc, err := env.resolver.ResolveFolder("trailcam")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if err := env.engine.InitSchema(ctx, loc.StorePath); err != nil {
		t.Fatalf("reinit schema: %v", err)
	}

	m, err := svc.GetMarker(ctx, "trailcam", id)
	if err != nil {
		t.Fatalf("get after reinit: %v", err)
	}
	if m.Info != "keep" {
		t.Fatalf("expected row to survive schema reinit, got %+v", m)
	}
}
