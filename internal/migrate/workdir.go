package migrate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// forceRemoveAll removes a directory tree, clearing read-only bits when the
// first attempt fails. Bare clones on some platforms leave read-only pack
// files behind.
func forceRemoveAll(path string) error {
	err := os.RemoveAll(path)
	if err == nil {
		return nil
	}

	walkErr := filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		_ = os.Chmod(p, 0700)
		return nil
	})
	if walkErr != nil && !errors.Is(walkErr, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", path, err)
	}

	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

// ensureWorkdir prepares <workRoot>/<name>.git for a fresh mirror clone,
// removing any leftover from a previous run. Returns the mirror path.
func ensureWorkdir(workRoot, name string) (string, error) {
	mirror := filepath.Join(workRoot, name+".git")
	if err := forceRemoveAll(mirror); err != nil {
		return "", err
	}
	if err := os.MkdirAll(workRoot, 0755); err != nil {
		return "", fmt.Errorf("create workdir: %w", err)
	}
	return mirror, nil
}

// cleanupWorkdir removes the mirror and the work root when it is empty
// afterwards.
func cleanupWorkdir(workRoot, mirror string) error {
	if err := forceRemoveAll(mirror); err != nil {
		return err
	}
	// Remove the root only when it is empty; concurrent runs may still
	// have mirrors in it.
	_ = os.Remove(workRoot)
	return nil
}
