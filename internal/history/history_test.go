package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadEmpty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	entries, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Load() = %d entries, want 0", len(entries))
	}
}

func TestRecordNewestFirst(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	first := Entry{Name: "a51", FullName: "acme/a51", Refs: 12, Time: time.Now()}
	second := Entry{Name: "b20", FullName: "acme/b20", Refs: 4, Time: time.Now()}

	if err := Record(first); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := Record(second); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	entries, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Load() = %d entries, want 2", len(entries))
	}
	if entries[0].Name != "b20" {
		t.Errorf("entries[0].Name = %q, want b20", entries[0].Name)
	}
	if entries[1].Name != "a51" {
		t.Errorf("entries[1].Name = %q, want a51", entries[1].Name)
	}
}

func TestRecordCapsEntries(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	for i := 0; i < maxEntries+5; i++ {
		if err := Record(Entry{Name: "repo", Time: time.Now()}); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	entries, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(entries) != maxEntries {
		t.Errorf("Load() = %d entries, want %d", len(entries), maxEntries)
	}
}

func TestLoadCorruptStartsFresh(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "forgeport")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "history.json"), []byte("{oops"), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Load() = %d entries for corrupt file, want 0", len(entries))
	}
}
