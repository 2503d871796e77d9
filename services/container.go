package services

import (
	"github.com/DaytimeLobster/gogrow/config"
	"github.com/DaytimeLobster/gogrow/store"
)

type Container struct {
	Config   *config.Config
	Resolver FolderResolver
	Markers  MarkerService
	Lines    LineService
	Journals JournalService
	Export   ExportService
	Backup   BackupService
	Upload   UploadService
	Settings SettingsService
	Assets   AssetService
}

func NewContainer(cfg *config.Config, engine *store.Engine) *Container {
	resolver := NewFolderResolver(cfg.Storage.ImageRoot)
	markers := store.NewMarkers(engine)
	lines := store.NewLines(engine)
	journals := store.NewJournals(engine)

	return &Container{
		Config:   cfg,
		Resolver: resolver,
		Markers:  NewMarkerService(resolver, markers),
		Lines:    NewLineService(resolver, lines),
		Journals: NewJournalService(resolver, journals),
		Export:   NewExportService(resolver, markers, lines, journals),
		Backup:   NewBackupService(resolver, cfg.Storage.BackupDir),
		Upload:   NewUploadService(cfg, resolver, engine),
		Settings: NewSettingsService(cfg.Storage.SettingsFile),
		Assets:   NewAssetService(cfg.Storage.IconDir, cfg.Storage.TextureDir),
	}
}
