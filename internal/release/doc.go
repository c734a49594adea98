// Package release implements publishing a release from a private source
// repo to a public releases repository: commit and tag the source, generate
// a changelog from tag history, move staged artifacts into the public tree,
// and commit and push both repos.
package release
