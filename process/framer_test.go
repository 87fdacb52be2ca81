package process

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/jmgilman/go/gitcli/pipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, r io.Reader) []string {
	t.Helper()
	var lines []string
	f := NewFramer(Stderr, func(o Output) {
		assert.Equal(t, Stderr, o.Source)
		assert.False(t, o.Closed)
		lines = append(lines, o.Line)
	})
	require.NoError(t, f.Run(r))
	return lines
}

func TestFramer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "newlines", input: "a\nb\n", want: []string{"a", "b"}},
		{name: "carriage returns", input: "Receiving objects:  50% (1/2)\rReceiving objects: 100% (2/2), done.\n", want: []string{"Receiving objects:  50% (1/2)", "Receiving objects: 100% (2/2), done."}},
		{name: "crlf counts once", input: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "blank lines kept", input: "a\n\nb\n", want: []string{"a", "", "b"}},
		{name: "trailing partial line", input: "a\nno newline", want: []string{"a", "no newline"}},
		{name: "empty", input: "", want: nil},
		{name: "utf8", input: "Submodule 'données'\n", want: []string{"Submodule 'données'"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collect(t, strings.NewReader(tt.input)))
		})
	}
}

func TestFramer_OneByteReads(t *testing.T) {
	input := "remote: Counting objects:  50% (1/2)\r\nremote: done\n"
	got := collect(t, iotest.OneByteReader(strings.NewReader(input)))
	assert.Equal(t, []string{"remote: Counting objects:  50% (1/2)", "remote: done"}, got)
}

func TestFramer_ReadError(t *testing.T) {
	boom := errors.New("boom")
	f := NewFramer(Stdout, func(Output) {})
	err := f.Run(iotest.ErrReader(boom))
	assert.ErrorIs(t, err, boom)
}

func TestFramer_FromPipe(t *testing.T) {
	buf := pipe.New(8)
	go func() {
		_, _ = buf.Write([]byte("a long first line that exceeds capacity\nsecond\n"))
		_ = buf.Close()
	}()

	assert.Equal(t, []string{"a long first line that exceeds capacity", "second"}, collect(t, buf))
}

func TestSource(t *testing.T) {
	assert.Equal(t, "stdout", Stdout.String())
	assert.Equal(t, "stderr", Stderr.String())
	assert.True(t, ClosedOutput.Closed)
}
