// internal/version/version.go
package version

// Version is the release string reported by --version.
var Version = "0.1.0"
