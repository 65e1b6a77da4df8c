// Package version carries the build version and semver helpers around it.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Current is set at build time with -ldflags "-X .../version.Current=v1.2.3".
var Current = "dev"

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// IsRelease reports whether v is a valid semver release without prerelease tag.
func IsRelease(v string) bool {
	n := Normalize(v)
	return semver.IsValid(n) && semver.Prerelease(n) == ""
}

// Info is the version block returned by the health endpoint and the CLI.
type Info struct {
	Version string `json:"version"`
	Major   string `json:"major,omitempty"`
	Release bool   `json:"release"`
}

// Describe returns the Info of v.
func Describe(v string) Info {
	n := Normalize(v)
	info := Info{Version: v, Release: IsRelease(v)}
	if semver.IsValid(n) {
		info.Major = semver.Major(n)
	}
	return info
}
