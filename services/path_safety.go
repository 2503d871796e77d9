package services

import (
	"os"
	"path/filepath"
	"strings"
)

// IsSafePath reports whether candidate, resolved relative to baseDir, stays
// inside baseDir after canonicalizing both sides (symlinks, "." and ".."
// segments). It gates every filesystem operation driven by a user-supplied
// name. The check is a pure predicate over the current filesystem state; it
// is inherently racy against concurrent mutation, which the single-user
// trust model accepts.
func IsSafePath(baseDir, candidate string) bool {
	// An absolute candidate never names anything under the base; Join would
	// otherwise splice it beneath baseDir and defeat the check.
	if filepath.IsAbs(candidate) {
		return false
	}

	base, err := canonicalize(baseDir)
	if err != nil {
		return false
	}

	full, err := canonicalize(filepath.Join(baseDir, candidate))
	if err != nil {
		return false
	}

	if full == base {
		return true
	}
	return strings.HasPrefix(full, base+string(os.PathSeparator))
}

// canonicalize resolves symlinks in the deepest existing ancestor of path, so
// not-yet-created targets can still be judged against the base directory.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}
	if !os.IsNotExist(err) {
		return "", err
	}

	dir, base := filepath.Split(filepath.Clean(abs))
	parent, err := canonicalize(filepath.Clean(dir))
	if err != nil {
		return "", err
	}
	return filepath.Join(parent, base), nil
}
