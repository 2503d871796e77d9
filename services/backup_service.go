package services

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const backupTimestampFormat = "2006-01-02_15-04-05"

type BackupService interface {
	Backup(ctx context.Context, folder string) (string, error)
	Restore(ctx context.Context, backupFile string) error
	ListBackups() ([]string, error)
}

type backupService struct {
	resolver  FolderResolver
	backupDir string
	now       func() time.Time
}

func NewBackupService(resolver FolderResolver, backupDir string) BackupService {
	return &backupService{resolver: resolver, backupDir: backupDir, now: time.Now}
}

// Backup archives the folder's whole directory tree, store file included,
// into <folder>_<timestamp>.tar.gz under the backups directory.
func (s *backupService) Backup(ctx context.Context, folder string) (string, error) {
	loc, err := s.resolver.ResolveExistingFolder(folder)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s_%s.tar.gz", folder, s.now().Format(backupTimestampFormat))
	backupPath := filepath.Join(s.backupDir, filename)

	f, err := os.Create(backupPath)
	if err != nil {
		return "", newStorageError("failed to create backup file", err)
	}

	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)

	err = s.addTree(tw, loc.Dir, folder)
	if err == nil {
		// Older releases kept a stray <folder>.db beside the folder directory;
		// carry it along when present so those stores survive a restore.
		legacyStore := filepath.Join(s.resolver.ImageRoot(), folder+".db")
		if _, statErr := os.Stat(legacyStore); statErr == nil {
			err = s.addFile(tw, legacyStore, folder+".db")
		}
	}

	if closeErr := tw.Close(); err == nil {
		err = closeErr
	}
	if closeErr := gz.Close(); err == nil {
		err = closeErr
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(backupPath)
		return "", newStorageError("failed to write backup archive", err)
	}

	return filename, nil
}

func (s *backupService) addTree(tw *tar.Writer, dir string, arcRoot string) error {
	return filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() && !info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		arcName := arcRoot
		if rel != "." {
			arcName = path.Join(arcRoot, filepath.ToSlash(rel))
		}

		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = arcName
		if info.IsDir() {
			hdr.Name += "/"
		}

		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		src, err := os.Open(p)
		if err != nil {
			return err
		}
		defer src.Close()

		_, err = io.Copy(tw, src)
		return err
	})
}

func (s *backupService) addFile(tw *tar.Writer, p string, arcName string) error {
	info, err := os.Stat(p)
	if err != nil {
		return err
	}

	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	hdr.Name = arcName

	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}

	src, err := os.Open(p)
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = io.Copy(tw, src)
	return err
}

// Restore unpacks a backup archive into the image root. The whole archive is
// validated before any byte lands on disk: unsafe entry paths reject it,
// and a directory entry whose target already exists is a conflict requiring
// manual intervention. Extraction happens in a second pass only after every
// entry passed, so a rejected restore leaves the tree untouched.
func (s *backupService) Restore(ctx context.Context, backupFile string) error {
	if backupFile == "" || !IsSafePath(s.backupDir, backupFile) {
		return newInvalidArchive("invalid backup file name")
	}

	backupPath := filepath.Join(s.backupDir, backupFile)
	if _, err := os.Stat(backupPath); err != nil {
		return newNotFound("backup file not found")
	}

	if err := s.validateArchive(backupPath); err != nil {
		return err
	}
	return s.extractArchive(backupPath)
}

func (s *backupService) validateArchive(backupPath string) error {
	f, err := os.Open(backupPath)
	if err != nil {
		return newStorageError("failed to open backup archive", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return newInvalidArchive("backup is not a valid gzip archive")
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return newInvalidArchive("backup archive is malformed")
		}

		name := hdr.Name
		if path.IsAbs(name) || filepath.IsAbs(name) || strings.Contains(name, "..") {
			return newInvalidArchive("backup contains invalid paths")
		}

		if hdr.Typeflag == tar.TypeDir {
			target := filepath.Join(s.resolver.ImageRoot(), filepath.FromSlash(name))
			if _, err := os.Stat(target); err == nil {
				return newArchiveConflict("a directory with the same name already exists; rename or delete it before restoring")
			}
		}
	}
}

func (s *backupService) extractArchive(backupPath string) error {
	f, err := os.Open(backupPath)
	if err != nil {
		return newStorageError("failed to open backup archive", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return newInvalidArchive("backup is not a valid gzip archive")
	}
	defer gz.Close()

	imageRoot := s.resolver.ImageRoot()
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return newInvalidArchive("backup archive is malformed")
		}

		name := filepath.FromSlash(hdr.Name)
		if !IsSafePath(imageRoot, name) {
			return newInvalidArchive("backup contains invalid paths")
		}
		target := filepath.Join(imageRoot, name)

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, hdr.FileInfo().Mode().Perm()); err != nil {
				return newStorageError("failed to create restored directory", err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return newStorageError("failed to create restored directory", err)
			}
			dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, hdr.FileInfo().Mode().Perm())
			if err != nil {
				return newStorageError("failed to create restored file", err)
			}
			if _, err := io.Copy(dst, tr); err != nil {
				dst.Close()
				return newStorageError("failed to write restored file", err)
			}
			if err := dst.Close(); err != nil {
				return newStorageError("failed to write restored file", err)
			}
		default:
			// Symlinks and special files never appear in our own backups;
			// skip them rather than extract something we did not write.
		}
	}
}

// ListBackups returns backup archive file names, newest-name-last.
func (s *backupService) ListBackups() ([]string, error) {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		return nil, newStorageError("failed to read backups directory", err)
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
