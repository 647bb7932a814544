package version

import "strings"

// Version is set via ldflags at build time:
// -ldflags "-X github.com/sharpcast/sharpcast/internal/version.Version=x.y.z"
var Version = ""

// Get returns the build version, or a development placeholder when none
// was stamped in.
func Get() string {
	if Version == "" {
		return "0.0.1-dev"
	}
	return strings.TrimPrefix(Version, "v")
}
