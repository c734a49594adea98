package format

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultReleaseLayout is the default layout for published releases
// inside the public root.
const DefaultReleaseLayout = "{machine}/{version}"

// ValidPlaceholders lists all supported placeholders.
var ValidPlaceholders = []string{"{machine}", "{version}"}

// LayoutParams contains the values for placeholder substitution.
type LayoutParams struct {
	Machine string // repo name of the machine being released
	Version string // the vX.Y.Z tag
}

// placeholderRegex matches {placeholder-name} patterns.
var placeholderRegex = regexp.MustCompile(`\{[a-z-]+\}`)

// ValidateLayout checks if a layout string is valid.
// Returns an error for unknown placeholders, absolute paths, or layouts
// that try to traverse out of the public root.
func ValidateLayout(layout string) error {
	matches := placeholderRegex.FindAllString(layout, -1)
	for _, match := range matches {
		if !isValidPlaceholder(match) {
			return fmt.Errorf("unknown placeholder %q in layout %q (valid: %s)",
				match, layout, strings.Join(ValidPlaceholders, ", "))
		}
	}

	if !strings.Contains(layout, "{version}") {
		return fmt.Errorf("layout %q must contain {version}, or every release would overwrite the last", layout)
	}
	if strings.HasPrefix(layout, "/") {
		return fmt.Errorf("layout %q must be relative to the public root", layout)
	}
	for _, part := range strings.Split(layout, "/") {
		if part == ".." {
			return fmt.Errorf("layout %q must not traverse out of the public root", layout)
		}
	}

	return nil
}

func isValidPlaceholder(placeholder string) bool {
	for _, valid := range ValidPlaceholders {
		if placeholder == valid {
			return true
		}
	}
	return false
}

// ReleasePath applies the layout template and returns the relative
// destination path inside the public root.
func ReleasePath(layout string, params LayoutParams) string {
	result := layout
	result = strings.ReplaceAll(result, "{machine}", SanitizeComponent(params.Machine))
	result = strings.ReplaceAll(result, "{version}", SanitizeComponent(params.Version))
	return result
}

// SanitizeComponent replaces characters that are problematic in file
// paths with "-".
func SanitizeComponent(name string) string {
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"\"", "-",
		"<", "-",
		">", "-",
		"|", "-",
	)
	return replacer.Replace(name)
}
