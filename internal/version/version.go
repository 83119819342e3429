// Package version exposes the build-stamped version string.
package version

// version is injected at build time via
// -ldflags "-X github.com/maestro-inspector/ctxhook/internal/version.version=vX.Y.Z".
var version = "dev"

// Value returns the version string.
func Value() string {
	return version
}
