package version

import (
	"io"
	"strings"
	"sync"
)

// CommitInfo is the source revision a binary was built from.
type CommitInfo struct {
	ShortHash string
	Date      string
}

// Info is the version of a binary plus optional build annotations.
// A nil Commit or an empty Toolchain renders as absent.
type Info struct {
	Version   string
	Commit    *CommitInfo
	Toolchain string
}

// String renders i as a single display line, e.g.
// "1.2.3 (abc1234 2024-01-15, built with toolchain go1.23.2)".
func (i Info) String() string {
	var b strings.Builder
	// strings.Builder never returns a write error.
	_, _ = i.WriteTo(&b)
	return b.String()
}

// WriteTo writes the display line to w. Only errors from w are returned.
func (i Info) WriteTo(w io.Writer) (int64, error) {
	var s string
	switch {
	case i.Commit != nil && i.Toolchain != "":
		s = i.Version + " (" + i.Commit.ShortHash + " " + i.Commit.Date + ", built with toolchain " + i.Toolchain + ")"
	case i.Commit != nil:
		s = i.Version + " (" + i.Commit.ShortHash + " " + i.Commit.Date + ")"
	case i.Toolchain != "":
		s = i.Version + " (built with toolchain " + i.Toolchain + ")"
	default:
		s = i.Version
	}
	n, err := io.WriteString(w, s)
	return int64(n), err
}

// Memo returns an accessor that renders assemble() on first call and
// returns the same string on every later call. Safe for concurrent use.
func Memo(assemble func() Info) func() string {
	return sync.OnceValue(func() string {
		return assemble().String()
	})
}
