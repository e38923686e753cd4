package version

import (
	"runtime/debug"
	"strings"
)

// Build-time variables injected via -ldflags. Empty means absent.
var (
	Version    = "dev"
	CommitHash = ""
	CommitDate = ""
	Toolchain  = ""
)

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	applyBuildInfo(bi)
}

// applyBuildInfo overwrites package vars from bi only when they still hold
// their default (ldflags-unset) values. ldflags always win.
func applyBuildInfo(bi *debug.BuildInfo) {
	if Version == "dev" {
		v := bi.Main.Version
		if v != "" && v != "(devel)" {
			Version = strings.TrimPrefix(v, "v")
		}
	}

	var revision, vcsTime string
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			vcsTime = s.Value
		}
	}

	// Hash and date are taken as a pair so a value set via ldflags is never
	// matched with VCS data from another commit.
	if CommitHash == "" && CommitDate == "" && revision != "" && vcsTime != "" {
		if len(revision) > 7 {
			revision = revision[:7]
		}
		CommitHash = revision
		CommitDate = vcsTime
	}

	if Toolchain == "" && bi.GoVersion != "" {
		Toolchain = bi.GoVersion
	}
}

// Constants are the raw build-time strings an Info is assembled from.
type Constants struct {
	Version    string
	CommitHash string
	CommitDate string
	Toolchain  string
}

// Current returns the package's build-time variables as Constants.
func Current() Constants {
	return Constants{
		Version:    Version,
		CommitHash: CommitHash,
		CommitDate: CommitDate,
		Toolchain:  Toolchain,
	}
}

// Assemble packages the build-time variables into an Info.
func Assemble() Info {
	return FromConstants(Current())
}

// FromConstants packages c into an Info without validating or transforming
// any field. Commit info is only present when both hash and date are set;
// a lone hash or date is dropped.
func FromConstants(c Constants) Info {
	info := Info{
		Version:   c.Version,
		Toolchain: c.Toolchain,
	}
	if c.CommitHash != "" && c.CommitDate != "" {
		info.Commit = &CommitInfo{ShortHash: c.CommitHash, Date: c.CommitDate}
	}
	return info
}
