package project

import (
	"strings"

	"golang.org/x/mod/semver"
)

// ValidVersion reports whether v is a full MAJOR.MINOR.PATCH semantic
// version. The leading "v" is optional. Shorthands such as "1.2" are
// rejected.
func ValidVersion(v string) bool {
	if v == "" {
		return false
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return false
	}
	// Canonical fills in missing minor/patch and drops build metadata.
	core, _, _ := strings.Cut(v, "+")
	return semver.Canonical(v) == core
}

// NormalizeVersion returns v without its optional leading "v".
func NormalizeVersion(v string) string {
	return strings.TrimPrefix(strings.TrimSpace(v), "v")
}
