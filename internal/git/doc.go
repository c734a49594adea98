// Package git wraps the git CLI for the operations forgeport needs:
// mirror clones, remote and credential configuration, non-interactive
// mirror pushes, tag management, and ref listing.
//
// All functions shell out to git; there is no libgit dependency. Commands
// run with context support and are echoed on stderr in verbose mode.
package git
