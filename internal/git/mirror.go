package git

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// CloneMirror creates a bare mirror clone of url at dest, including all refs.
func CloneMirror(ctx context.Context, url, dest string) error {
	if err := runGit(ctx, "", "clone", "--mirror", url, dest); err != nil {
		return fmt.Errorf("mirror clone failed: %w", err)
	}
	return nil
}

// SetRemote points the named remote of the repo at dir to url, replacing any
// previous definition. Removal of a missing remote is not an error.
func SetRemote(ctx context.Context, dir, name, url string) error {
	_ = runGit(ctx, dir, "remote", "remove", name)
	if err := runGit(ctx, dir, "remote", "add", name, url); err != nil {
		return fmt.Errorf("add remote %s: %w", name, err)
	}
	if err := runGit(ctx, dir, "remote", "set-url", name, url); err != nil {
		return fmt.Errorf("set remote url %s: %w", name, err)
	}
	return nil
}

// ghCredentialHelper makes git ask gh for a github.com token.
const ghCredentialHelper = "!gh auth git-credential"

// ConfigurePushCredentials sets the repo-local credential configuration used
// for pushing to github.com as the given user:
//   - credential.helper manager (platform credential manager fallback)
//   - credential.username pinned to the push user
//   - credential.https://github.com.helper wired to gh (highest priority)
//   - stale http extraheaders removed
func ConfigurePushCredentials(ctx context.Context, dir, user string) error {
	settings := [][2]string{
		{"credential.helper", "manager"},
		{"credential.username", user},
		{"credential.https://github.com.helper", ghCredentialHelper},
	}
	for _, kv := range settings {
		if err := runGit(ctx, dir, "config", "--local", kv[0], kv[1]); err != nil {
			return fmt.Errorf("set %s: %w", kv[0], err)
		}
	}
	// Unset may fail when the key was never set.
	_ = runGit(ctx, dir, "config", "--local", "--unset-all", "http.https://github.com/.extraheader")
	return nil
}

// MirrorPushOptions configures a non-interactive mirror push.
type MirrorPushOptions struct {
	Remote      string // remote name to push to
	User        string // username git hands to the credential helper
	UseGHHelper bool   // true: token via gh; false: platform credential manager
}

// MirrorPush force-pushes all refs of the bare repo at dir to the remote,
// without ever prompting. GUI askpass programs are disabled via environment
// and inline -c overrides, and the credential username is pinned so a stale
// identity from a global helper cannot leak in.
func MirrorPush(ctx context.Context, dir string, opts MirrorPushOptions) error {
	env := pushEnv()

	args := []string{
		"-c", "core.askpass=",
		"-c", "credential.helper=",
		"-c", "credential.username=" + opts.User,
		"-c", "http.https://github.com/.extraheader=",
	}
	if opts.UseGHHelper {
		args = append(args, "-c", "credential.https://github.com.helper="+ghCredentialHelper)
	} else {
		args = append(args, "-c", "credential.helper=manager")
	}
	args = append(args, "push", "--mirror", opts.Remote)

	if err := runGitEnv(ctx, dir, env, args...); err != nil {
		return fmt.Errorf("mirror push failed: %w", err)
	}
	return nil
}

// pushEnv returns the current environment with terminal prompting disabled
// and askpass variables stripped.
func pushEnv() []string {
	env := []string{
		"GIT_TERMINAL_PROMPT=0",
		"GCM_INTERACTIVE=0",
	}
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		switch key {
		case "GIT_ASKPASS", "SSH_ASKPASS", "GIT_TERMINAL_PROMPT", "GCM_INTERACTIVE":
			continue
		}
		env = append(env, kv)
	}
	return env
}
