// Package version exposes the build version of the profitplug binary.
package version

import (
	"github.com/Masterminds/semver/v3"
)

// version is overridden at build time via
// -ldflags "-X github.com/rshade/profitplug/pkg/version.version=1.2.3".
//
//nolint:gochecknoglobals // Set by the linker.
var version = "0.1.0"

// devVersion is reported when the linker value is not valid semver.
const devVersion = "0.0.0-dev"

// GetVersion returns the build version normalized to semver form without a
// leading "v". Values that do not parse as semver are reported as devVersion.
func GetVersion() string {
	v, err := semver.NewVersion(version)
	if err != nil {
		return devVersion
	}
	return v.String()
}

// IsRelease reports whether v is a release version, i.e. it parses as semver
// and carries no prerelease suffix.
func IsRelease(v string) bool {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return false
	}
	return sv.Prerelease() == ""
}
