package release

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RootEnv is the environment variable naming the public releases root.
const RootEnv = "FORGEPORT_RELEASE_ROOT"

// rootFileName is the per-user / per-directory pointer file holding the
// public releases root path.
const rootFileName = "forgeport_release_root"

// ResolvePublicRoot resolves the checkout of the public releases repo.
// First match wins:
//
//  1. configured release.public_root
//  2. env FORGEPORT_RELEASE_ROOT
//  3. ~/.forgeport_release_root
//  4. ./forgeport_release_root in the current working directory
//
// Each candidate must name an existing directory.
func ResolvePublicRoot(configured string) (string, error) {
	if configured != "" {
		if dirExists(configured) {
			return configured, nil
		}
	}

	if env := os.Getenv(RootEnv); env != "" {
		if dirExists(env) {
			return env, nil
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		if path := readRootFile(filepath.Join(home, "."+rootFileName)); path != "" {
			return path, nil
		}
	}

	if cwd, err := os.Getwd(); err == nil {
		if path := readRootFile(filepath.Join(cwd, rootFileName)); path != "" {
			return path, nil
		}
	}

	return "", fmt.Errorf("could not resolve the public releases root; provide it via one of:\n"+
		" - release.public_root in the config file\n"+
		" - env %s\n"+
		" - ~/.%s\n"+
		" - ./%s in the current working directory", RootEnv, rootFileName, rootFileName)
}

// readRootFile reads a pointer file and returns the path it names, or an
// empty string when the file is missing or the path does not exist.
func readRootFile(file string) string {
	data, err := os.ReadFile(file)
	if err != nil {
		return ""
	}
	path := strings.TrimSpace(string(data))
	if path == "" || !dirExists(path) {
		return ""
	}
	return path
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
