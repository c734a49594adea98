// Package editor opens the user's editor to compose release messages.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// DefaultTemplate is the initial buffer content for release messages.
const DefaultTemplate = "# Enter your release/commit message below.\n" +
	"# Lines starting with # are ignored.\n" +
	"\n"

// Open opens the user's preferred editor with the given initial content and
// returns the edited content. Editor resolution: $GIT_EDITOR, $EDITOR,
// git config core.editor, then vi.
func Open(initialContent string) (string, error) {
	tmpFile, err := os.CreateTemp("", "forgeport-message-*.txt")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	if _, err := tmpFile.WriteString(initialContent); err != nil {
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	editor := resolveEditor()

	cmd := exec.Command("sh", "-c", fmt.Sprintf("%s %s", editor, tmpFile.Name()))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor exited with error: %w", err)
	}

	content, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", fmt.Errorf("read edited file: %w", err)
	}

	return string(content), nil
}

// resolveEditor returns the editor command to use.
func resolveEditor() string {
	if e := os.Getenv("GIT_EDITOR"); e != "" {
		return e
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	if out, err := exec.Command("git", "config", "--get", "core.editor").Output(); err == nil {
		if e := strings.TrimSpace(string(out)); e != "" {
			return e
		}
	}
	return "vi"
}

// StripComments removes lines starting with '#' (like git commit messages)
// and trims surrounding whitespace.
func StripComments(content string) string {
	var kept []string
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
