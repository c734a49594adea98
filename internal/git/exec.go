package git

import (
	"context"

	"github.com/bask185/forgeport/internal/cmd"
)

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// runGit executes a git command with context support and verbose logging.
func runGit(ctx context.Context, dir string, args ...string) error {
	return cmd.RunContext(ctx, "", nil, "git", gitArgs(dir, args)...)
}

// runGitEnv is runGit with a fully replaced environment.
func runGitEnv(ctx context.Context, dir string, env []string, args ...string) error {
	return cmd.RunContext(ctx, "", env, "git", gitArgs(dir, args)...)
}

// outputGit executes a git command with context support and verbose logging,
// returning stdout.
func outputGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return cmd.OutputContext(ctx, "", "git", gitArgs(dir, args)...)
}

// Run executes a git command in dir. Exported for commands that need raw
// git access.
func Run(ctx context.Context, dir string, args ...string) error {
	return runGit(ctx, dir, args...)
}
