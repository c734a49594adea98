// Package migrate implements the forge-to-GitHub migration pipeline:
// mirror-clone the source, ensure the target repo exists, configure the
// remote and repo-local credentials, mirror-push non-interactively, and
// verify the ref sets match.
package migrate
