// Package outfile writes generated files in place without leaving partial
// output behind.
package outfile

import (
	"crypto/md5"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Fingerprint returns the MD5 hash of the file at path, or "" if it does not exist
func Fingerprint(path string) (string, error) {
	by, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return sum(by), nil
}

// Changed reports whether writing data to path would alter its content
func Changed(path string, data []byte) (bool, error) {
	current, err := Fingerprint(path)
	if err != nil {
		return false, err
	}
	return current != sum(data), nil
}

// Write replaces the file at path with data. The data goes to a temporary
// file in the same directory which is then renamed over path. A symlink at
// path is followed, and an existing file keeps its permissions.
func Write(path string, data []byte) error {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}

	// CreateTemp uses 0600
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

func sum(by []byte) string {
	return fmt.Sprintf("%x", md5.Sum(by))
}
