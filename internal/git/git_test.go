package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// resolveTempDir creates a temp directory and resolves macOS symlinks.
func resolveTempDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("failed to resolve symlinks for %s: %v", tmpDir, err)
	}
	return resolved
}

// configureTestRepo sets git user config and disables GPG signing.
func configureTestRepo(t *testing.T, repoPath string) {
	t.Helper()
	ctx := context.Background()
	for _, args := range [][]string{
		{"config", "user.email", "test@test.com"},
		{"config", "user.name", "Test User"},
		{"config", "commit.gpgsign", "false"},
		{"config", "tag.gpgsign", "false"},
	} {
		if err := runGit(ctx, repoPath, args...); err != nil {
			t.Fatalf("failed to run git %v: %v", args, err)
		}
	}
}

// setupTestRepo creates a git repo with main branch, initial commit, and git
// config. Returns the resolved repo path.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	tmpDir := resolveTempDir(t)
	repoPath := filepath.Join(tmpDir, "test-repo")

	ctx := context.Background()
	if err := runGit(ctx, "", "init", "-b", "main", repoPath); err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}

	configureTestRepo(t, repoPath)

	commitFile(t, repoPath, "README.md", "# test\n", "Initial commit")

	return repoPath
}

// commitFile writes a file and commits it.
func commitFile(t *testing.T, repoPath, name, content, message string) {
	t.Helper()
	ctx := context.Background()
	if err := os.WriteFile(filepath.Join(repoPath, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := runGit(ctx, repoPath, "add", name); err != nil {
		t.Fatalf("failed to add file: %v", err)
	}
	if err := runGit(ctx, repoPath, "commit", "-m", message); err != nil {
		t.Fatalf("failed to commit: %v", err)
	}
}

// tagAt creates an annotated tag with a fixed tagger date so creatordate
// ordering is deterministic.
func tagAt(t *testing.T, repoPath, tag, message, date string) {
	t.Helper()
	ctx := context.Background()
	env := append(os.Environ(), "GIT_COMMITTER_DATE="+date)
	if err := runGitEnv(ctx, repoPath, env, "tag", "-a", tag, "-m", message); err != nil {
		t.Fatalf("failed to tag %s: %v", tag, err)
	}
}

func TestCheckGit(t *testing.T) {
	if err := CheckGit(); err != nil {
		t.Skipf("git not installed: %v", err)
	}
}

func TestRepoRootAndName(t *testing.T) {
	repoPath := setupTestRepo(t)
	ctx := context.Background()

	root, err := RepoRoot(ctx, repoPath)
	if err != nil {
		t.Fatalf("RepoRoot: %v", err)
	}
	if root != repoPath {
		t.Errorf("RepoRoot = %q, want %q", root, repoPath)
	}

	// No origin configured: falls back to directory name.
	name, err := RepoName(ctx, repoPath)
	if err != nil {
		t.Fatalf("RepoName: %v", err)
	}
	if name != "test-repo" {
		t.Errorf("RepoName = %q, want %q", name, "test-repo")
	}

	// With origin, the URL basename wins.
	if err := runGit(ctx, repoPath, "remote", "add", "origin", "https://github.com/acme/widget-fw.git"); err != nil {
		t.Fatalf("add remote: %v", err)
	}
	name, err = RepoName(ctx, repoPath)
	if err != nil {
		t.Fatalf("RepoName: %v", err)
	}
	if name != "widget-fw" {
		t.Errorf("RepoName = %q, want %q", name, "widget-fw")
	}
}

func TestHasChangesAndCommit(t *testing.T) {
	repoPath := setupTestRepo(t)
	ctx := context.Background()

	dirty, err := HasChanges(ctx, repoPath)
	if err != nil {
		t.Fatalf("HasChanges: %v", err)
	}
	if dirty {
		t.Error("fresh repo should be clean")
	}

	// Commit on a clean tree is a tolerated no-op.
	created, err := Commit(ctx, repoPath, "noop")
	if err != nil {
		t.Fatalf("Commit on clean tree: %v", err)
	}
	if created {
		t.Error("expected no commit on clean tree")
	}

	if err := os.WriteFile(filepath.Join(repoPath, "new.txt"), []byte("x\n"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	dirty, err = HasChanges(ctx, repoPath)
	if err != nil {
		t.Fatalf("HasChanges: %v", err)
	}
	if !dirty {
		t.Error("expected dirty tree after new file")
	}

	if err := AddAll(ctx, repoPath); err != nil {
		t.Fatalf("AddAll: %v", err)
	}
	created, err = Commit(ctx, repoPath, "add new.txt")
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if !created {
		t.Error("expected a commit to be created")
	}
}

func TestTags(t *testing.T) {
	repoPath := setupTestRepo(t)
	ctx := context.Background()

	if TagExists(ctx, repoPath, "v1.0.0") {
		t.Error("tag should not exist yet")
	}

	tagAt(t, repoPath, "v1.0.0", "first release", "2024-01-01T10:00:00")
	commitFile(t, repoPath, "a.txt", "a\n", "Add feature A")
	tagAt(t, repoPath, "v1.1.0", "second release", "2024-02-01T10:00:00")
	tagAt(t, repoPath, "not-a-release", "scratch tag", "2024-03-01T10:00:00")

	if !TagExists(ctx, repoPath, "v1.0.0") {
		t.Error("tag v1.0.0 should exist")
	}

	tags, err := SemverTags(ctx, repoPath)
	if err != nil {
		t.Fatalf("SemverTags: %v", err)
	}
	if len(tags) != 2 || tags[0] != "v1.1.0" || tags[1] != "v1.0.0" {
		t.Errorf("SemverTags = %v, want [v1.1.0 v1.0.0]", tags)
	}

	subjects, err := SubjectsBetween(ctx, repoPath, "v1.0.0", "v1.1.0")
	if err != nil {
		t.Fatalf("SubjectsBetween: %v", err)
	}
	if len(subjects) != 1 || subjects[0] != "Add feature A" {
		t.Errorf("SubjectsBetween = %v", subjects)
	}

	subjects, err = SubjectsBetween(ctx, repoPath, "", "v1.0.0")
	if err != nil {
		t.Fatalf("SubjectsBetween full history: %v", err)
	}
	if len(subjects) != 1 || subjects[0] != "Initial commit" {
		t.Errorf("SubjectsBetween = %v", subjects)
	}

	// Re-creating an existing tag without force must fail.
	if err := CreateTag(ctx, repoPath, "v1.0.0", "again", false); err == nil {
		t.Error("expected error re-creating tag without force")
	}
	if err := CreateTag(ctx, repoPath, "v1.0.0", "again", true); err != nil {
		t.Errorf("force re-create tag: %v", err)
	}
}

func TestIsSemverTag(t *testing.T) {
	tests := []struct {
		tag  string
		want bool
	}{
		{"v1.2.3", true},
		{"v0.0.1", true},
		{"v10.20.30", true},
		{"1.2.3", false},
		{"v1.2", false},
		{"v1.2.3-rc1", false},
		{"release-1", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsSemverTag(tt.tag); got != tt.want {
			t.Errorf("IsSemverTag(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestCloneMirrorAndSetRemote(t *testing.T) {
	repoPath := setupTestRepo(t)
	tmpDir := resolveTempDir(t)
	mirror := filepath.Join(tmpDir, "test-repo.git")
	ctx := context.Background()

	if err := CloneMirror(ctx, repoPath, mirror); err != nil {
		t.Fatalf("CloneMirror: %v", err)
	}
	if _, err := os.Stat(filepath.Join(mirror, "HEAD")); err != nil {
		t.Fatalf("mirror is not a bare repo: %v", err)
	}

	// SetRemote is idempotent and must replace an existing definition.
	for _, url := range []string{"https://github.com/acme/one.git", "https://github.com/acme/two.git"} {
		if err := SetRemote(ctx, mirror, "github", url); err != nil {
			t.Fatalf("SetRemote(%s): %v", url, err)
		}
	}
	out, err := outputGit(ctx, mirror, "remote", "get-url", "github")
	if err != nil {
		t.Fatalf("get-url: %v", err)
	}
	if got := string(out); got != "https://github.com/acme/two.git\n" {
		t.Errorf("remote url = %q", got)
	}

	refs, err := LsRemote(ctx, mirror)
	if err != nil {
		t.Fatalf("LsRemote: %v", err)
	}
	if _, ok := refs["refs/heads/main"]; !ok {
		t.Errorf("expected refs/heads/main in %v", refs)
	}
}

func TestConfigurePushCredentials(t *testing.T) {
	repoPath := setupTestRepo(t)
	ctx := context.Background()

	if err := ConfigurePushCredentials(ctx, repoPath, "sebastiaan-knippels"); err != nil {
		t.Fatalf("ConfigurePushCredentials: %v", err)
	}

	out, err := outputGit(ctx, repoPath, "config", "--local", "credential.username")
	if err != nil {
		t.Fatalf("read credential.username: %v", err)
	}
	if got := string(out); got != "sebastiaan-knippels\n" {
		t.Errorf("credential.username = %q", got)
	}

	out, err = outputGit(ctx, repoPath, "config", "--local", "credential.https://github.com.helper")
	if err != nil {
		t.Fatalf("read gh helper: %v", err)
	}
	if got := string(out); got != "!gh auth git-credential\n" {
		t.Errorf("gh helper = %q", got)
	}
}
