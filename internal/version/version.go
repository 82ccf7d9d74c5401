// internal/version/version.go
package version

// Version is overridden at build time via -ldflags "-X profseq/internal/version.Version=...".
var Version = "0.1.0-dev"
