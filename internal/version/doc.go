// Package version holds build-time version variables injected via ldflags
// and renders them as a single display line.
//
// When ldflags are not set (e.g. go install), an init function reads
// runtime/debug.BuildInfo as a fallback so the binary reports the module
// version, VCS metadata and Go toolchain instead of the placeholder values.
//
//	-X github.com/tbckr/verline/internal/version.Version=1.2.3
//	-X github.com/tbckr/verline/internal/version.CommitHash=abc1234
//	-X github.com/tbckr/verline/internal/version.CommitDate=2024-01-15
//	-X github.com/tbckr/verline/internal/version.Toolchain=go1.23.2
package version
