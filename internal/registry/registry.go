// Package registry manages the repo registry file (gitea_repos.json), a JSON
// list mapping repository names to their source clone URLs on the forge.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// nameRe restricts repo names to letters, numbers, underscore, hyphen, dot.
var nameRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Repo is one registry entry.
type Repo struct {
	Name string `json:"name"` // Short name, used for selection
	SSH  string `json:"ssh"`  // Source clone URL on the forge
}

// Registry holds all registered repos, keyed by their position in the file.
type Registry struct {
	Repos []Repo

	path string
}

// ValidateName checks a repo name against the allowed character set.
func ValidateName(name string) error {
	if name == "" {
		return errors.New("name cannot be empty")
	}
	if !nameRe.MatchString(name) {
		return fmt.Errorf("invalid name %q: allowed are letters, numbers, underscore, hyphen, dot", name)
	}
	return nil
}

// Load reads the registry from path. A missing file yields an empty registry
// so that `repos add` works on a fresh checkout. Entries without a name or
// URL are skipped.
func Load(path string) (*Registry, error) {
	reg := &Registry{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return reg, nil
		}
		return nil, fmt.Errorf("read registry: %w", err)
	}

	var items []Repo
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", path, err)
	}

	for _, item := range items {
		if item.Name == "" || item.SSH == "" {
			continue
		}
		reg.Repos = append(reg.Repos, item)
	}

	return reg, nil
}

// Path returns the file path this registry was loaded from.
func (r *Registry) Path() string {
	return r.path
}

// Save writes the registry back to its file atomically.
func (r *Registry) Save() error {
	data, err := json.MarshalIndent(r.Repos, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal registry: %w", err)
	}
	data = append(data, '\n')

	// Write to temp file first for atomic operation
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write registry: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save registry: %w", err)
	}

	return nil
}

// Names returns all registered repo names, sorted and deduplicated.
func (r *Registry) Names() []string {
	seen := make(map[string]bool, len(r.Repos))
	var names []string
	for _, repo := range r.Repos {
		if !seen[repo.Name] {
			seen[repo.Name] = true
			names = append(names, repo.Name)
		}
	}
	sort.Strings(names)
	return names
}

// Resolve returns the entry for name.
func (r *Registry) Resolve(name string) (Repo, error) {
	if err := ValidateName(name); err != nil {
		return Repo{}, err
	}
	for _, repo := range r.Repos {
		if repo.Name == name {
			if repo.SSH == "" {
				return Repo{}, fmt.Errorf("repo %q has no source URL in registry", name)
			}
			return repo, nil
		}
	}
	return Repo{}, fmt.Errorf("repo %q not found in %s (known: %s)",
		name, r.path, strings.Join(r.Names(), ", "))
}

// Add registers a new repo. Returns an error if the name is invalid or
// already registered.
func (r *Registry) Add(repo Repo) error {
	if err := ValidateName(repo.Name); err != nil {
		return err
	}
	if repo.SSH == "" {
		return errors.New("source URL cannot be empty")
	}
	for _, existing := range r.Repos {
		if existing.Name == repo.Name {
			return fmt.Errorf("repo already registered: %s", repo.Name)
		}
	}
	r.Repos = append(r.Repos, repo)
	return nil
}

// Remove deletes a repo by name. Returns an error if not found.
func (r *Registry) Remove(name string) error {
	for i, repo := range r.Repos {
		if repo.Name == name {
			r.Repos = append(r.Repos[:i], r.Repos[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("repo not registered: %s", name)
}
