package main

import (
	"fmt"
	"log"
	"os"

	"github.com/DaytimeLobster/gogrow/config"
	"github.com/DaytimeLobster/gogrow/handlers"
	"github.com/DaytimeLobster/gogrow/logger"
	"github.com/DaytimeLobster/gogrow/middleware"
	"github.com/DaytimeLobster/gogrow/services"
	"github.com/DaytimeLobster/gogrow/store"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("starting gogrow service")

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	logger.SetLevel(cfg.Logging.Level)

	if err := os.MkdirAll(cfg.Storage.ImageRoot, 0o755); err != nil {
		log.Fatalf("create image root failed: %v", err)
	}
	if err := os.MkdirAll(cfg.Storage.BackupDir, 0o755); err != nil {
		log.Fatalf("create backup dir failed: %v", err)
	}

	engine := store.NewEngine()
	serviceContainer := services.NewContainer(cfg, engine)
	handlers.SetServices(serviceContainer)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger())
	setupRoutes(r)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("server listening on http://%s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server start failed: %v", err)
	}
}

func setupRoutes(r *gin.Engine) {
	r.GET("/health", handlers.Health)

	r.GET("/markers/:folder", handlers.ListMarkers)
	r.POST("/markers/:folder", handlers.CreateMarker)
	r.GET("/markers/:folder/:id", handlers.GetMarker)
	r.POST("/update_marker", handlers.UpdateMarker)
	r.POST("/delete_marker", handlers.DeleteMarker)

	r.GET("/lines/:folder", handlers.ListLines)
	r.POST("/lines/:folder", handlers.CreateLine)
	r.GET("/lines/:folder/:id", handlers.GetLine)
	r.POST("/update_line", handlers.UpdateLine)
	r.POST("/delete_line", handlers.DeleteLine)

	r.GET("/journals/:folder", handlers.ListJournals)
	r.POST("/journals/:folder", handlers.CreateJournal)
	r.GET("/journals/:folder/:id", handlers.GetJournal)
	r.PUT("/journals/:folder/:id", handlers.UpdateJournalEntry)
	r.POST("/update_journal", handlers.UpdateJournal)
	r.POST("/delete_journal", handlers.DeleteJournal)

	r.GET("/export/:folder", handlers.ExportData)
	r.GET("/export_journals/:folder", handlers.ExportJournals)

	r.POST("/backup", handlers.BackupFolder)
	r.POST("/restore", handlers.RestoreBackup)
	r.GET("/backups", handlers.ListBackups)

	r.GET("/get_folders", handlers.GetFolders)
	r.GET("/set_image_folder", handlers.SetImageFolder)

	r.POST("/upload", handlers.UploadBaseImage)
	r.POST("/upload_image", handlers.UploadJournalImage)
	r.GET("/get_image_url/:folder", handlers.GetImageURL)
	r.GET("/img/*filepath", handlers.ServeImage)

	r.GET("/icon_filenames", handlers.IconFilenames)
	r.GET("/icons/*filepath", handlers.ServeIcon)
	r.GET("/textures", handlers.Textures)

	r.GET("/custom_theme", handlers.CustomTheme)
	r.GET("/settings/get", handlers.GetSetting)
	r.POST("/settings/update", handlers.UpdateSetting)
}
