// Package version holds build version information.
package version

// Version is the release version, overridden at build time via -ldflags.
var Version = "dev"

// Commit is the git commit the binary was built from.
var Commit = "none"
