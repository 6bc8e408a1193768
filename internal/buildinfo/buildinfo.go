// Package buildinfo exposes the version stamped into the binary at link
// time.
package buildinfo

// version is set by the linker during release builds:
//
//	-ldflags "-X github.com/benjaminabbitt/versionator/internal/buildinfo.version=1.2.3"
var version = "dev"

// Version returns the stamped version, or "dev" for local builds.
func Version() string {
	return version
}
