package lined

import (
	_ "embed"
	"strings"

	"golang.org/x/mod/semver"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the release version in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a full SemVer 2.0.0 version without the `v`
// prefix. Shorthands such as "1.2" are rejected.
func IsSemver(v string) bool {
	tag := "v" + strings.TrimSpace(v)
	if !semver.IsValid(tag) {
		return false
	}
	return semver.Canonical(tag) == strings.TrimSuffix(tag, semver.Build(tag))
}

// VersionIsSemver reports whether the embedded Version is valid SemVer.
func VersionIsSemver() bool {
	return IsSemver(Version())
}
