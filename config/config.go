package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Upload    UploadConfig    `yaml:"upload"`
	Thumbnail ThumbnailConfig `yaml:"thumbnail"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type StorageConfig struct {
	// ImageRoot holds one subdirectory per folder, each containing the
	// folder's images and its store file.
	ImageRoot     string `yaml:"image_root"`
	BackupDir     string `yaml:"backup_dir"`
	IconDir       string `yaml:"icon_dir"`
	TextureDir    string `yaml:"texture_dir"`
	SettingsFile  string `yaml:"settings_file"`
	DefaultFolder string `yaml:"default_folder"`
}

type UploadConfig struct {
	MaxFileSize         int64    `yaml:"max_file_size"`
	JournalImageMaxSize int64    `yaml:"journal_image_max_size"`
	AllowedExtensions   []string `yaml:"allowed_extensions"`
}

type ThumbnailConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Quality int `yaml:"quality"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "127.0.0.1"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5555
	}
	if cfg.Storage.ImageRoot == "" {
		cfg.Storage.ImageRoot = "img"
	}
	if cfg.Storage.BackupDir == "" {
		cfg.Storage.BackupDir = "backups"
	}
	if cfg.Storage.IconDir == "" {
		cfg.Storage.IconDir = filepath.Join("static", "icons")
	}
	if cfg.Storage.TextureDir == "" {
		cfg.Storage.TextureDir = filepath.Join("static", "textures")
	}
	if cfg.Storage.SettingsFile == "" {
		cfg.Storage.SettingsFile = "settings.yaml"
	}
	if cfg.Upload.MaxFileSize == 0 {
		cfg.Upload.MaxFileSize = 50 << 20
	}
	if cfg.Upload.JournalImageMaxSize == 0 {
		cfg.Upload.JournalImageMaxSize = 5 << 20
	}
	if len(cfg.Upload.AllowedExtensions) == 0 {
		cfg.Upload.AllowedExtensions = []string{".png", ".jpg", ".jpeg"}
	}
	if cfg.Thumbnail.Width == 0 {
		cfg.Thumbnail.Width = 200
	}
	if cfg.Thumbnail.Height == 0 {
		cfg.Thumbnail.Height = 200
	}
	if cfg.Thumbnail.Quality == 0 {
		cfg.Thumbnail.Quality = 85
	}
}
