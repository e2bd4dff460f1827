// Package version holds the service version.
package version

// Version is the current release tag.
var Version = "0.3.0"

// DevVersion is the version used in dev mode.
var DevVersion = "0.0.0"

func GetCurrentVersion(mode string) string {
	if mode == "dev" || mode == "demo" {
		return DevVersion
	}
	return Version
}
