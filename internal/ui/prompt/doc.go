// Package prompt provides small interactive terminal prompts (confirm,
// text input, fuzzy select) built on bubbletea.
//
// Prompts render to stderr so stdout remains available for piping. Callers
// are expected to gate prompts on a TTY check and provide flag-based
// alternatives for scripted use.
package prompt
