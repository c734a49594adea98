package release

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FindStagingDir locates the directory holding the release artifacts.
// Layouts are tried in order, first existing wins:
//
//	<repo>/release/<machine>/<version>/
//	<repo>/release/<version>/
//	<repo>/release/
func FindStagingDir(repoRoot, machine, version string) (string, error) {
	candidates := []string{
		filepath.Join(repoRoot, "release", machine, version),
		filepath.Join(repoRoot, "release", version),
		filepath.Join(repoRoot, "release"),
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no staging directory found, looked for:\n  %s\nCreate one and place all binaries/scripts inside, then re-run",
		strings.Join(candidates, "\n  "))
}

// CopyChangelog copies the changelog file into the staging directory so it
// ships with the release artifacts.
func CopyChangelog(changelogPath, stagingDir string) error {
	src, err := os.Open(changelogPath)
	if err != nil {
		return fmt.Errorf("open changelog: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(stagingDir, ChangelogName))
	if err != nil {
		return fmt.Errorf("copy changelog: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("copy changelog: %w", err)
	}
	return nil
}

// MoveStaging moves all entries of stagingDir into the layout-derived
// subdirectory of publicRoot, replacing anything already there.
// Returns the destination directory.
func MoveStaging(stagingDir, publicRoot, relPath string) (string, error) {
	dest := filepath.Join(publicRoot, filepath.FromSlash(relPath))
	if err := os.MkdirAll(dest, 0755); err != nil {
		return "", fmt.Errorf("create destination: %w", err)
	}

	entries, err := os.ReadDir(stagingDir)
	if err != nil {
		return "", fmt.Errorf("read staging dir: %w", err)
	}

	for _, entry := range entries {
		src := filepath.Join(stagingDir, entry.Name())
		target := filepath.Join(dest, entry.Name())

		if err := os.RemoveAll(target); err != nil {
			return "", fmt.Errorf("replace %s: %w", target, err)
		}
		if err := os.Rename(src, target); err != nil {
			// Cross-device move: fall back to copy + delete.
			if copyErr := copyTree(src, target); copyErr != nil {
				return "", fmt.Errorf("move %s: %w", entry.Name(), copyErr)
			}
			if err := os.RemoveAll(src); err != nil {
				return "", fmt.Errorf("remove staged %s: %w", entry.Name(), err)
			}
		}
	}

	return dest, nil
}

// copyTree recursively copies a file or directory.
func copyTree(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return copyFile(src, dst, info.Mode())
	}

	if err := os.MkdirAll(dst, info.Mode().Perm()); err != nil {
		return err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := copyTree(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
