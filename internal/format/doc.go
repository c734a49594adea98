// Package format expands the release layout template that decides where
// published artifacts land inside the public release root.
//
// The template is a relative path with placeholders, for example the
// default "{machine}/{version}" puts a release of machine a51 at
// <public_root>/a51/v1.4.0/. Path-hostile characters in the substituted
// values are replaced so a branch-like version string cannot escape the
// layout.
package format
