package version

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCommit = &CommitInfo{ShortHash: "abc1234", Date: "2024-01-15"}

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "no commit, no toolchain",
			info: Info{Version: "1.2.3"},
			want: "1.2.3",
		},
		{
			name: "commit only",
			info: Info{Version: "1.2.3", Commit: testCommit},
			want: "1.2.3 (abc1234 2024-01-15)",
		},
		{
			name: "toolchain only",
			info: Info{Version: "1.2.3", Toolchain: "1.75.0"},
			want: "1.2.3 (built with toolchain 1.75.0)",
		},
		{
			name: "commit and toolchain",
			info: Info{Version: "1.2.3", Commit: testCommit, Toolchain: "1.75.0"},
			want: "1.2.3 (abc1234 2024-01-15, built with toolchain 1.75.0)",
		},
		{
			name: "date not reformatted",
			info: Info{Version: "0.1.0", Commit: &CommitInfo{ShortHash: "deadbee", Date: "2024-06-01T12:00:00Z"}},
			want: "0.1.0 (deadbee 2024-06-01T12:00:00Z)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
			assert.Equal(t, tt.info.String(), tt.info.String(), "rendering is pure")
		})
	}
}

func TestInfoWriteTo(t *testing.T) {
	info := Info{Version: "1.2.3", Commit: testCommit, Toolchain: "1.75.0"}

	var b strings.Builder
	n, err := info.WriteTo(&b)
	require.NoError(t, err)
	assert.Equal(t, info.String(), b.String())
	assert.Equal(t, int64(b.Len()), n)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("sink closed") }

func TestInfoWriteTo_SinkError(t *testing.T) {
	_, err := Info{Version: "1.2.3"}.WriteTo(failingWriter{})
	require.EqualError(t, err, "sink closed")
}

func TestMemo(t *testing.T) {
	saveRestore(t)
	Version = "1.2.3"
	CommitHash = "abc1234"
	CommitDate = "2024-01-15"
	Toolchain = ""

	calls := 0
	line := Memo(func() Info {
		calls++
		return Assemble()
	})

	assert.Equal(t, Assemble().String(), line())
	assert.Equal(t, "1.2.3 (abc1234 2024-01-15)", line())

	// Later changes to the build vars are not observed.
	Version = "9.9.9"
	assert.Equal(t, "1.2.3 (abc1234 2024-01-15)", line())
	assert.Equal(t, 1, calls)
}

func TestMemo_Concurrent(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	line := Memo(func() Info {
		mu.Lock()
		calls++
		mu.Unlock()
		return Info{Version: "1.2.3", Toolchain: "1.75.0"}
	})

	const readers = 32
	results := make([]string, readers)
	var wg sync.WaitGroup
	for i := range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = line()
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, "1.2.3 (built with toolchain 1.75.0)", got)
	}
	assert.Equal(t, 1, calls)
}
