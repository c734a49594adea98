// Package forge parses the remote URLs a self-hosted forge hands out.
//
// Gitea installs typically serve repos over SSH on a non-standard port
// (ssh://git@forge.example.com:2222/org/repo.git), over scp-style SSH
// (git@forge.example.com:org/repo.git), or over HTTPS. All three carry
// the owner and repo name in the path; this package extracts them so a
// registry entry can be derived from the URL alone.
package forge

import (
	"fmt"
	"net/url"
	"strings"
)

// Remote identifies a repository on a forge.
type Remote struct {
	Host  string // hostname without port
	Owner string // organization or user owning the repo
	Name  string // repo name without the .git suffix
}

// ParseRemote extracts host, owner and repo name from a git remote URL.
func ParseRemote(remoteURL string) (Remote, error) {
	remoteURL = strings.TrimSpace(remoteURL)
	if remoteURL == "" {
		return Remote{}, fmt.Errorf("empty remote URL")
	}

	// scp-style SSH: git@host:owner/repo.git
	if strings.HasPrefix(remoteURL, "git@") && !strings.Contains(remoteURL, "://") {
		rest := strings.TrimPrefix(remoteURL, "git@")
		host, path, ok := strings.Cut(rest, ":")
		if !ok || host == "" {
			return Remote{}, fmt.Errorf("malformed SSH remote %q", remoteURL)
		}
		return remoteFromPath(host, path, remoteURL)
	}

	parsed, err := url.Parse(remoteURL)
	if err != nil {
		return Remote{}, fmt.Errorf("parse remote %q: %w", remoteURL, err)
	}
	switch parsed.Scheme {
	case "ssh", "http", "https", "git":
	default:
		return Remote{}, fmt.Errorf("unsupported remote scheme %q in %q", parsed.Scheme, remoteURL)
	}
	if parsed.Hostname() == "" {
		return Remote{}, fmt.Errorf("no host in remote %q", remoteURL)
	}
	return remoteFromPath(parsed.Hostname(), parsed.Path, remoteURL)
}

// RepoName returns just the repo name from a remote URL, or an empty
// string when the URL cannot be parsed.
func RepoName(remoteURL string) string {
	remote, err := ParseRemote(remoteURL)
	if err != nil {
		return ""
	}
	return remote.Name
}

func remoteFromPath(host, path, remoteURL string) (Remote, error) {
	path = strings.Trim(path, "/")
	path = strings.TrimSuffix(path, ".git")

	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[len(parts)-1] == "" {
		return Remote{}, fmt.Errorf("no owner/repo path in remote %q", remoteURL)
	}

	return Remote{
		Host:  host,
		Owner: strings.Join(parts[:len(parts)-1], "/"),
		Name:  parts[len(parts)-1],
	}, nil
}
