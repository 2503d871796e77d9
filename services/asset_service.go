package services

import (
	"os"
	"sort"
)

// AssetService lists the bundled icon and texture files the map UI offers.
type AssetService interface {
	IconFilenames() ([]string, error)
	TextureFilenames() ([]string, error)
}

type assetService struct {
	iconDir    string
	textureDir string
}

func NewAssetService(iconDir, textureDir string) AssetService {
	return &assetService{iconDir: iconDir, textureDir: textureDir}
}

func (s *assetService) IconFilenames() ([]string, error) {
	return listFileNames(s.iconDir)
}

func (s *assetService) TextureFilenames() ([]string, error) {
	return listFileNames(s.textureDir)
}

func listFileNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, newStorageError("failed to read asset directory", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
