// Package versions reports build information and orders catalog versions.
package versions

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// IsNewerVersion reports whether candidate sorts strictly after current.
// Both strings are compared as semantic versions when they parse as such;
// otherwise the comparison is lexicographic, ignoring surrounding blanks.
func IsNewerVersion(candidate, current string) bool {
	candidate = strings.TrimSpace(candidate)
	current = strings.TrimSpace(current)

	next, errNext := semver.NewVersion(candidate)
	prev, errPrev := semver.NewVersion(current)
	if errNext != nil || errPrev != nil {
		return candidate > current
	}
	return next.GreaterThan(prev)
}
