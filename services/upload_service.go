package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/DaytimeLobster/gogrow/config"
	"github.com/DaytimeLobster/gogrow/store"

	"github.com/disintegration/imaging"
)

type BaseImageResult struct {
	Folder   string `json:"folder"`
	ImageURL string `json:"image_url"`
}

type UploadService interface {
	// SaveBaseImage stores an uploaded base image, creating a folder named
	// after the file stem with a thumbnail and an initialized store.
	SaveBaseImage(ctx context.Context, fh *multipart.FileHeader) (BaseImageResult, error)
	// SaveJournalImage stores a journal picture under the folder's images/
	// subdirectory and returns its serving URL.
	SaveJournalImage(ctx context.Context, folder string, fh *multipart.FileHeader) (string, error)
	// LatestImageURL returns the serving path of the most recently modified
	// base image in the folder.
	LatestImageURL(folder string) (string, error)
}

type uploadService struct {
	cfg      *config.Config
	resolver FolderResolver
	engine   *store.Engine
}

func NewUploadService(cfg *config.Config, resolver FolderResolver, engine *store.Engine) UploadService {
	return &uploadService{cfg: cfg, resolver: resolver, engine: engine}
}

func (s *uploadService) SaveBaseImage(ctx context.Context, fh *multipart.FileHeader) (BaseImageResult, error) {
	filename := sanitizeFilename(fh.Filename)
	if !isFileExtensionAllowed(filename, s.cfg.Upload.AllowedExtensions) {
		return BaseImageResult{}, newValidationError("invalid file type, upload a PNG or JPG file")
	}
	if fh.Size > s.cfg.Upload.MaxFileSize {
		return BaseImageResult{}, newValidationError("file size exceeds the upload limit")
	}

	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	loc, err := s.resolver.EnsureFolderDirectory(stem)
	if err != nil {
		return BaseImageResult{}, err
	}

	if !IsSafePath(loc.Dir, filename) {
		return BaseImageResult{}, newValidationError("invalid file path")
	}
	dst := filepath.Join(loc.Dir, filename)

	if err := saveMultipartFile(fh, dst); err != nil {
		return BaseImageResult{}, newStorageError("failed to save uploaded image", err)
	}

	thumbPath := filepath.Join(loc.Dir, fmt.Sprintf("thumbnail-%s.png", stem))
	if err := s.generateThumbnail(dst, thumbPath); err != nil {
		return BaseImageResult{}, newStorageError("failed to create thumbnail", err)
	}

	if err := s.engine.InitSchema(ctx, loc.StorePath); err != nil {
		return BaseImageResult{}, newStorageError("failed to initialize folder store", err)
	}

	return BaseImageResult{
		Folder:   stem,
		ImageURL: path.Join("/img", stem, filename),
	}, nil
}

func (s *uploadService) SaveJournalImage(ctx context.Context, folder string, fh *multipart.FileHeader) (string, error) {
	filename := sanitizeFilename(fh.Filename)
	if !isFileExtensionAllowed(filename, s.cfg.Upload.AllowedExtensions) {
		return "", newValidationError("allowed image types are png, jpg, jpeg")
	}
	if fh.Size > s.cfg.Upload.JournalImageMaxSize {
		return "", newValidationError("file size exceeds the journal image limit")
	}

	loc, err := s.resolver.EnsureFolderDirectory(folder)
	if err != nil {
		return "", err
	}

	imagesDir := filepath.Join(loc.Dir, "images")
	if err := os.MkdirAll(imagesDir, 0o755); err != nil {
		return "", newStorageError("failed to create images directory", err)
	}
	if !IsSafePath(imagesDir, filename) {
		return "", newValidationError("invalid file path")
	}

	if err := saveMultipartFile(fh, filepath.Join(imagesDir, filename)); err != nil {
		return "", newStorageError("failed to save journal image", err)
	}

	return path.Join("/img", folder, "images", filename), nil
}

// LatestImageURL skips the store file, thumbnails, and subdirectories; the
// newest remaining file is the folder's current base image.
func (s *uploadService) LatestImageURL(folder string) (string, error) {
	loc, err := s.resolver.ResolveFolder(folder)
	if err != nil {
		return "", err
	}

	entries, err := os.ReadDir(loc.Dir)
	if err != nil {
		return "", newNotFound("folder not found")
	}

	latestName := ""
	var latestMod int64
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".db") || strings.HasPrefix(name, "thumbnail-") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); latestName == "" || mod > latestMod {
			latestName = name
			latestMod = mod
		}
	}

	if latestName == "" {
		return "", newNotFound("no image found in folder")
	}
	return path.Join("img", folder, latestName), nil
}

func (s *uploadService) generateThumbnail(srcPath, dstPath string) error {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}

	thumb := imaging.Fit(img, s.cfg.Thumbnail.Width, s.cfg.Thumbnail.Height, imaging.Lanczos)
	return imaging.Save(thumb, dstPath, imaging.JPEGQuality(s.cfg.Thumbnail.Quality))
}

func saveMultipartFile(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
