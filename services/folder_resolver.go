package services

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

var folderNameRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// FolderLocation is a resolved, pre-validated folder: its directory under the
// image root and the store file inside it. Every component past the resolver
// works from one of these; nothing else interpolates a raw folder name into a
// filesystem path.
type FolderLocation struct {
	Name      string
	Dir       string
	StorePath string
}

type FolderResolver struct {
	imageRoot string
}

func NewFolderResolver(imageRoot string) FolderResolver {
	return FolderResolver{imageRoot: imageRoot}
}

func (r FolderResolver) ImageRoot() string {
	return r.imageRoot
}

// ResolveFolder maps a folder name to its on-disk location. The name must
// match [A-Za-z0-9_-]+ and the resolved directory must stay inside the image
// root. The directory itself does not have to exist yet.
func (r FolderResolver) ResolveFolder(name string) (FolderLocation, error) {
	if !folderNameRe.MatchString(name) {
		return FolderLocation{}, newInvalidFolderName(name)
	}
	if !IsSafePath(r.imageRoot, name) {
		return FolderLocation{}, newInvalidFolderName(name)
	}

	dir := filepath.Join(r.imageRoot, name)
	return FolderLocation{
		Name:      name,
		Dir:       dir,
		StorePath: filepath.Join(dir, name+".db"),
	}, nil
}

// ResolveExistingFolder additionally requires the folder directory to be
// present on disk.
func (r FolderResolver) ResolveExistingFolder(name string) (FolderLocation, error) {
	loc, err := r.ResolveFolder(name)
	if err != nil {
		return FolderLocation{}, err
	}

	info, err := os.Stat(loc.Dir)
	if err != nil || !info.IsDir() {
		return FolderLocation{}, newInvalidFolderName(name)
	}
	return loc, nil
}

// EnsureFolderDirectory resolves the folder and creates its directory (and
// the image root) when absent. Idempotent.
func (r FolderResolver) EnsureFolderDirectory(name string) (FolderLocation, error) {
	loc, err := r.ResolveFolder(name)
	if err != nil {
		return FolderLocation{}, err
	}

	if err := os.MkdirAll(loc.Dir, 0o755); err != nil {
		return FolderLocation{}, newStorageError("failed to create folder directory", err)
	}
	return loc, nil
}

// ListFolders returns the names of folder directories under the image root,
// sorted alphabetically.
func (r FolderResolver) ListFolders() ([]string, error) {
	entries, err := os.ReadDir(r.imageRoot)
	if err != nil {
		return nil, newStorageError("failed to read image root", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
