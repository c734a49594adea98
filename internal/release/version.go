package release

import (
	"fmt"

	"github.com/bask185/forgeport/internal/git"
)

// ValidateVersion checks that a version tag has the v1.2.3 form.
func ValidateVersion(version string) error {
	if !git.IsSemverTag(version) {
		return fmt.Errorf("version must match syntax v1.2.3, got %q", version)
	}
	return nil
}
