package text

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_Append(t *testing.T) {
	b := NewBuffer(4)
	b.AppendString("Submodule ").AppendByte('\'').AppendRune('é').AppendByteString(FromString("'"))

	assert.Equal(t, "Submodule 'é'", b.String())
	assert.Equal(t, len("Submodule 'é'"), b.Len())

	n, err := fmt.Fprintf(b, " %d", 42)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "Submodule 'é' 42", b.String())

	b.Truncate(9)
	assert.Equal(t, "Submodule", b.String())
	assert.Panics(t, func() { b.Truncate(100) })
}

func TestBuffer_AppendEscaped(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no specials", input: "plain", want: "plain"},
		{name: "bare quote", input: `say "hi"`, want: `say \"hi\"`},
		{name: "already escaped", input: `say \"hi\"`, want: `say \"hi\"`},
		{name: "escaped backslash before quote", input: `a\\"b`, want: `a\\\"b`},
		{name: "three escapes before quote", input: `a\\\"b`, want: `a\\\"b`},
		{name: "escape not before quote", input: `C:\path "x"`, want: `C:\path \"x\"`},
		{name: "multibyte", input: `日"本`, want: `日\"本`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(0)
			b.AppendEscaped(tt.input, '\\', '"')
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestBuffer_ViewAndCopy(t *testing.T) {
	b := NewBuffer(16)
	b.AppendString("Updating abc..def")

	view := b.View()
	owned := b.ByteString()
	assert.Equal(t, "Updating abc..def", view.String())

	b.Reset()
	b.AppendString("XXXXXXXX")
	assert.Equal(t, "Updating abc..def", owned.String())
}

func TestBufferPool(t *testing.T) {
	b := GetBuffer()
	b.AppendString("leftover")
	b.Release()

	again := GetBuffer()
	defer again.Release()
	assert.Equal(t, 0, again.Len())

	big := NewBuffer(maxPooledSize + 1)
	big.Release()
}
