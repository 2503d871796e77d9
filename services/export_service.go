package services

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/DaytimeLobster/gogrow/store"
)

type ExportService interface {
	ExportCSV(ctx context.Context, folder string, w io.Writer) error
	ExportJournalsCSV(ctx context.Context, folder string, w io.Writer) error
}

type exportService struct {
	resolver FolderResolver
	markers  store.Markers
	lines    store.Lines
	journals store.Journals
}

func NewExportService(resolver FolderResolver, markers store.Markers, lines store.Lines, journals store.Journals) ExportService {
	return &exportService{resolver: resolver, markers: markers, lines: lines, journals: journals}
}

// ExportCSV streams the folder's markers and lines as two CSV sections,
// flushing row by row so large folders never buffer the whole document.
func (s *exportService) ExportCSV(ctx context.Context, folder string, w io.Writer) error {
	loc, err := s.resolver.ResolveExistingFolder(folder)
	if err != nil {
		return err
	}

	markers, err := s.markers.List(ctx, loc.StorePath)
	if err != nil {
		return newStorageError("failed to read markers for export", err)
	}
	lines, err := s.lines.List(ctx, loc.StorePath)
	if err != nil {
		return newStorageError("failed to read lines for export", err)
	}

	if len(markers) == 0 && len(lines) == 0 {
		return newValidationError("no markers or lines data to export")
	}

	cw := csv.NewWriter(w)

	cw.Write([]string{"markerId", "lat", "lng", "info", "iconType", "iconColor", "markerNotes"})
	for _, m := range markers {
		cw.Write([]string{m.ID, formatCoord(m.Lat), formatCoord(m.Lng), m.Info, m.IconType, m.IconColor, m.Notes})
		cw.Flush()
		if err := cw.Error(); err != nil {
			return newStorageError("failed to write export row", err)
		}
	}

	cw.Write([]string{"lineId", "start_lat", "start_lng", "end_lat", "end_lng", "info", "color", "notes"})
	for _, l := range lines {
		cw.Write([]string{l.ID, formatCoord(l.StartLat), formatCoord(l.StartLng), formatCoord(l.EndLat), formatCoord(l.EndLng), l.Info, l.Color, l.Notes})
		cw.Flush()
		if err := cw.Error(); err != nil {
			return newStorageError("failed to write export row", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return newStorageError("failed to flush export", err)
	}
	return nil
}

func (s *exportService) ExportJournalsCSV(ctx context.Context, folder string, w io.Writer) error {
	loc, err := s.resolver.ResolveExistingFolder(folder)
	if err != nil {
		return err
	}

	journals, err := s.journals.List(ctx, loc.StorePath)
	if err != nil {
		return newStorageError("failed to read journals for export", err)
	}

	cw := csv.NewWriter(w)

	cw.Write([]string{"journalId", "entry_date", "linked_item_id", "entry_title", "entry_content"})
	for _, j := range journals {
		cw.Write([]string{j.ID, j.EntryDate, j.LinkedItemID, j.EntryTitle, j.EntryContent})
		cw.Flush()
		if err := cw.Error(); err != nil {
			return newStorageError("failed to write export row", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return newStorageError("failed to flush export", err)
	}
	return nil
}

// formatCoord keeps a trailing .0 on whole-number coordinates so exports stay
// byte-compatible with files produced by earlier releases.
func formatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
