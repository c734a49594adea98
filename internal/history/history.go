// Package history keeps a log of completed migrations so `forgeport
// history` can answer what was moved, where, and when.
package history

import (
	"path/filepath"
	"time"

	"github.com/bask185/forgeport/internal/storage"
)

// maxEntries caps the log; oldest entries are dropped first.
const maxEntries = 200

// Entry records one completed migration.
type Entry struct {
	Name     string    `json:"name"`
	FullName string    `json:"full_name"`
	URL      string    `json:"url"`
	Refs     int       `json:"refs"`
	Verified bool      `json:"verified"`
	Time     time.Time `json:"time"`
}

// Path returns the path to the history file.
func Path() (string, error) {
	dir, err := storage.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.json"), nil
}

// Load reads the migration log. A missing file yields an empty log.
func Load() ([]Entry, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	var entries []Entry
	if _, err := storage.LoadJSON(path, &entries); err != nil {
		// Corrupted log, start fresh rather than blocking migrations.
		return nil, nil
	}
	return entries, nil
}

// Record appends an entry to the log, newest first.
func Record(entry Entry) error {
	entries, err := Load()
	if err != nil {
		return err
	}

	entries = append([]Entry{entry}, entries...)
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}

	path, err := Path()
	if err != nil {
		return err
	}
	return storage.SaveJSON(path, entries)
}
