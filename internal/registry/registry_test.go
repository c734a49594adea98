package registry

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gitea_repos.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write registry: %v", err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	reg, err := Load(filepath.Join(t.TempDir(), "gitea_repos.json"))
	if err != nil {
		t.Fatalf("missing file should yield empty registry, got: %v", err)
	}
	if len(reg.Repos) != 0 {
		t.Errorf("expected empty registry, got %d entries", len(reg.Repos))
	}
}

func TestLoadSkipsIncompleteEntries(t *testing.T) {
	path := writeRegistry(t, `[
  {"name": "a51", "ssh": "git@forge.example.org:team/a51.git"},
  {"name": "", "ssh": "git@forge.example.org:team/unnamed.git"},
  {"name": "nourl"},
  {"name": "xyz", "ssh": "git@forge.example.org:team/xyz.git"}
]`)
	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"a51", "xyz"}
	if got := reg.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeRegistry(t, `{"not": "a list"}`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for non-list JSON")
	}
}

func TestResolve(t *testing.T) {
	path := writeRegistry(t, `[{"name": "a51", "ssh": "git@forge.example.org:team/a51.git"}]`)
	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	repo, err := reg.Resolve("a51")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if repo.SSH != "git@forge.example.org:team/a51.git" {
		t.Errorf("SSH = %q", repo.SSH)
	}

	if _, err := reg.Resolve("missing"); err == nil {
		t.Error("expected error for unknown name")
	}
	if _, err := reg.Resolve("bad name!"); err == nil {
		t.Error("expected error for invalid name")
	}
	if _, err := reg.Resolve(""); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestValidateName(t *testing.T) {
	valid := []string{"a51", "my-repo", "my_repo", "repo.v2", "A.b-C_9"}
	for _, name := range valid {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) = %v, want nil", name, err)
		}
	}
	invalid := []string{"", "has space", "semi;colon", "slash/name", "tilde~"}
	for _, name := range invalid {
		if err := ValidateName(name); err == nil {
			t.Errorf("ValidateName(%q) = nil, want error", name)
		}
	}
}

func TestAddRemoveSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gitea_repos.json")
	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := reg.Add(Repo{Name: "a51", SSH: "git@forge.example.org:team/a51.git"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := reg.Add(Repo{Name: "a51", SSH: "git@forge.example.org:team/other.git"}); err == nil {
		t.Error("expected duplicate error")
	}
	if err := reg.Add(Repo{Name: "bad name", SSH: "url"}); err == nil {
		t.Error("expected invalid name error")
	}
	if err := reg.Add(Repo{Name: "nourl"}); err == nil {
		t.Error("expected empty URL error")
	}

	if err := reg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if _, err := reloaded.Resolve("a51"); err != nil {
		t.Errorf("Resolve after reload: %v", err)
	}

	if err := reloaded.Remove("a51"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := reloaded.Remove("a51"); err == nil {
		t.Error("expected error removing twice")
	}
}
