package parse

import (
	"strconv"
	"testing"

	"github.com/jmgilman/go/gitcli/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseParser(t *testing.T) {
	tests := []struct {
		name   string
		parser Parser
		line   string
		want   progress.Event
	}{
		{
			name:   "receiving with bytes and rate",
			parser: Receiving,
			line:   "Receiving objects:  23% (920758/3974313), 5.68 MiB | 2.53 MiB/s",
			want: progress.Progress{
				Phase:     "Receiving objects",
				Completed: 0.23,
				Count:     920758,
				Total:     3974313,
				Bytes:     mebibytes(5.68),
				Rate:      mebibytes(2.53),
				HasBytes:  true,
			},
		},
		{
			name:   "resolving done",
			parser: Resolving,
			line:   "Resolving deltas: 100% (2/2), done.",
			want:   progress.Progress{Phase: "Resolving deltas", Completed: 1, Count: 2, Total: 2},
		},
		{
			name:   "writing with plain bytes",
			parser: Writing,
			line:   "Writing objects: 100% (3/3), 240 bytes | 240.00 KiB/s, done.",
			want: progress.Progress{
				Phase:     "Writing objects",
				Completed: 1,
				Count:     3,
				Total:     3,
				Bytes:     240,
				Rate:      240 * 1024,
				HasBytes:  true,
			},
		},
		{
			name:   "count greater than total",
			parser: Counting,
			line:   "Counting objects:  50% (9/4)",
			want:   progress.Progress{Phase: "Counting objects", Completed: 0.5, Count: 9, Total: 4},
		},
		{
			name:   "percent above one hundred clamps",
			parser: Compressing,
			line:   "Compressing objects: 150% (3/2)",
			want:   progress.Progress{Phase: "Compressing objects", Completed: 1, Count: 3, Total: 2},
		},
		{
			name:   "count form done",
			parser: Enumerating,
			line:   "Enumerating objects: 5, done.",
			want:   progress.Progress{Phase: "Enumerating objects", Completed: 1, Count: 5, Total: 5},
		},
		{
			name:   "count form in progress",
			parser: Enumerating,
			line:   "Enumerating objects: 12",
			want:   progress.Progress{Phase: "Enumerating objects", Count: 12},
		},
		{
			name:   "updating files",
			parser: Updating,
			line:   "Updating files:  40% (2/5)",
			want:   progress.Progress{Phase: "Updating files", Completed: 0.4, Count: 2, Total: 5},
		},
		{
			name:   "other phase",
			parser: Receiving,
			line:   "Resolving deltas:  10% (1/10)",
			want:   nil,
		},
		{
			name:   "malformed numbers",
			parser: Receiving,
			line:   "Receiving objects: 23% (99999999999999999999/1)",
			want:   nil,
		},
		{
			name:   "prefix without numbers",
			parser: Receiving,
			line:   "Receiving objects: stalled",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parser.Parse(tt.line)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}

			require.IsType(t, progress.Progress{}, got)
			want := tt.want.(progress.Progress)
			p := got.(progress.Progress)
			assert.Equal(t, want.Phase, p.Phase)
			assert.InDelta(t, want.Completed, p.Completed, 1e-9)
			assert.Equal(t, want.Count, p.Count)
			assert.Equal(t, want.Total, p.Total)
			assert.Equal(t, want.Bytes, p.Bytes)
			assert.Equal(t, want.Rate, p.Rate)
			assert.Equal(t, want.HasBytes, p.HasBytes)
		})
	}
}

func TestPhaseParser_PercentFraction(t *testing.T) {
	for pct := 0; pct <= 100; pct++ {
		line := "Receiving objects: " + strconv.Itoa(pct) + "% (1/100)"
		got, err := Receiving.Parse(line)
		require.NoError(t, err)
		require.NotNil(t, got, line)
		assert.InDelta(t, float64(pct)/100.0, got.(progress.Progress).Completed, 1e-9)
	}
}

func TestPhaseParser_Idempotent(t *testing.T) {
	line := "Receiving objects:  23% (920758/3974313), 5.68 MiB | 2.53 MiB/s"
	first, err := Receiving.Parse(line)
	require.NoError(t, err)
	second, err := Receiving.Parse(line)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRemoteProgressParser(t *testing.T) {
	got, err := RemoteProgress.Parse("remote: Counting objects:  50% (1/2)")
	require.NoError(t, err)
	p, ok := got.(progress.Progress)
	require.True(t, ok)
	assert.True(t, p.Remote)
	assert.Equal(t, "Counting objects", p.Phase)
	assert.InDelta(t, 0.5, p.Completed, 1e-9)

	got, err = RemoteProgress.Parse("remote: Enumerating objects: 5, done.")
	require.NoError(t, err)
	assert.Equal(t, progress.Progress{Phase: "Enumerating objects", Completed: 1, Count: 5, Total: 5, Remote: true}, got)

	got, err = RemoteProgress.Parse("remote: Total 3 (delta 0), reused 0 (delta 0), pack-reused 0")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = RemoteProgress.Parse("Counting objects: 50% (1/2)")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBytesFromMagnitude(t *testing.T) {
	tests := []struct {
		value float64
		unit  string
		want  int64
	}{
		{value: 1, unit: "KiB", want: 1024},
		{value: 1, unit: "MiB", want: 1024 * 1024},
		{value: 1, unit: "GiB", want: 1024 * 1024 * 1024},
		{value: 1, unit: "TiB", want: 1024 * 1024 * 1024 * 1024},
		{value: 2.5, unit: "KiB", want: 2560},
		{value: 5.68, unit: "MiB", want: mebibytes(5.68)},
		{value: 240, unit: "bytes", want: 240},
		{value: 7.9, unit: "KB", want: 7},
		{value: 3, unit: "", want: 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BytesFromMagnitude(tt.value, tt.unit), "%v %s", tt.value, tt.unit)
	}
}

// mebibytes mirrors the parser's float arithmetic.
func mebibytes(v float64) int64 {
	return int64(v * (1 << 20))
}
