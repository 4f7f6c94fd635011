// Package version carries build-time identifiers for the rocker binary.
package version

var (
	// Version is the rocker release version, set via -ldflags at build time.
	Version = "dev"
	// GitCommit is the commit the binary was built from, set via -ldflags.
	GitCommit = "HEAD"
	// Program is the name used for data directories and log prefixes.
	Program = "rocker"
)
