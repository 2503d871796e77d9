package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DaytimeLobster/gogrow/store"
)

func newTestLineService(t *testing.T) (LineService, storeEnv) {
	env := newStoreEnv(t)
	return NewLineService(env.resolver, store.NewLines(env.engine)), env
}

func TestCreateLineRoundTrip(t *testing.T) {
	svc, _ := newTestLineService(t)
	ctx := context.Background()

	id, err := svc.CreateLine(ctx, "trailcam", LineInput{
		StartLat: 44.9,
		StartLng: -93.2,
		EndLat:   45.1,
		EndLng:   -93.0,
		Info:     "game trail",
		Color:    "#0000ff",
		Notes:    "east slope",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	l, err := svc.GetLine(ctx, "trailcam", id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if l.StartLat != 44.9 || l.StartLng != -93.2 || l.EndLat != 45.1 || l.EndLng != -93.0 {
		t.Fatalf("unexpected endpoints: %+v", l)
	}
	if l.Info != "game trail" || l.Color != "#0000ff" || l.Notes != "east slope" {
		t.Fatalf("unexpected line fields: %+v", l)
	}
}

func TestCreateLineValidatesBothEndpoints(t *testing.T) {
	svc, _ := newTestLineService(t)
	ctx := context.Background()

	cases := []LineInput{
		{StartLat: 91, StartLng: 0, EndLat: 0, EndLng: 0},
		{StartLat: 0, StartLng: -190, EndLat: 0, EndLng: 0},
		{StartLat: 0, StartLng: 0, EndLat: -95, EndLng: 0},
		{StartLat: 0, StartLng: 0, EndLat: 0, EndLng: 181},
	}
	for _, in := range cases {
		_, err := svc.CreateLine(ctx, "trailcam", in)
		var appErr *AppError
		if !errors.As(err, &appErr) || appErr.Kind != KindValidation {
			t.Fatalf("expected validation error for %+v, got %v", in, err)
		}
	}
}

func TestUpdateLineKeepsEndpoints(t *testing.T) {
	svc, _ := newTestLineService(t)
	ctx := context.Background()

	id, err := svc.CreateLine(ctx, "trailcam", LineInput{StartLat: 1, StartLng: 2, EndLat: 3, EndLng: 4, Info: "old"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.UpdateLine(ctx, "trailcam", LineUpdate{ID: id, Info: "new", Color: "red", Notes: "n"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	l, err := svc.GetLine(ctx, "trailcam", id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if l.StartLat != 1 || l.StartLng != 2 || l.EndLat != 3 || l.EndLng != 4 {
		t.Fatalf("expected endpoints untouched, got %+v", l)
	}
	if l.Info != "new" || l.Color != "red" || l.Notes != "n" {
		t.Fatalf("unexpected updated fields: %+v", l)
	}
}

func TestUpdateLineMissingIDIsNotFound(t *testing.T) {
	svc, _ := newTestLineService(t)
	ctx := context.Background()

	if _, err := svc.CreateLine(ctx, "trailcam", LineInput{}); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := svc.UpdateLine(ctx, "trailcam", LineUpdate{ID: "missing"})
	var appErr *AppError
	if !errors.As(err, &appErr) || appErr.Kind != KindNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestDeleteLineIsIdempotent(t *testing.T) {
	svc, _ := newTestLineService(t)
	ctx := context.Background()

	id, err := svc.CreateLine(ctx, "trailcam", LineInput{StartLat: 1, StartLng: 1, EndLat: 2, EndLng: 2})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteLine(ctx, "trailcam", id); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.DeleteLine(ctx, "trailcam", id); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestListLinesDegradesToEmptyForMissingStore(t *testing.T) {
	svc, _ := newTestLineService(t)

	lines, err := svc.ListLines(context.Background(), "brandnew")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lines == nil || len(lines) != 0 {
		t.Fatalf("expected empty list, got %v", lines)
	}
}
