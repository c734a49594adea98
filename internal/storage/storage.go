// Package storage persists small JSON state files under
// ~/.config/forgeport/.
package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// ConfigDir returns the path to ~/.config/forgeport/, creating it if
// needed.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "forgeport")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	return dir, nil
}

// SaveJSON writes data as indented JSON to path. The write goes through
// a temp file followed by a rename, so a crash mid-write never leaves a
// truncated file behind.
func SaveJSON(path string, data any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	jsonData = append(jsonData, '\n')

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, jsonData, 0o644); err != nil {
		return err
	}

	return os.Rename(tempPath, path)
}

// LoadJSON reads JSON from path into dest. A missing file is not an
// error; dest is left untouched and found is false.
func LoadJSON(path string, dest any) (found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return true, err
	}
	return true, nil
}
