package text

import (
	"sync"
	"unicode/utf8"
)

const (
	defaultBufferSize = 256

	// Buffers that grew past this size are dropped instead of pooled.
	maxPooledSize = 64 * 1024
)

var bufferPool = sync.Pool{
	New: func() any {
		return &Buffer{data: make([]byte, 0, defaultBufferSize)}
	},
}

// Buffer is a growable, append-only UTF-8 text buffer.
// A Buffer must not be used concurrently.
type Buffer struct {
	data []byte
}

// NewBuffer returns an empty Buffer with the given capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{data: make([]byte, 0, capacity)}
}

// GetBuffer returns an empty Buffer from the shared pool.
func GetBuffer() *Buffer {
	b, _ := bufferPool.Get().(*Buffer)
	b.Reset()
	return b
}

// Release returns the buffer to the shared pool. The buffer and any
// ByteString obtained from View must not be used afterwards.
func (b *Buffer) Release() {
	if cap(b.data) > maxPooledSize {
		return
	}
	b.Reset()
	bufferPool.Put(b)
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Reset empties the buffer, keeping its storage.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}

// Truncate discards all but the first n bytes.
func (b *Buffer) Truncate(n int) {
	if n < 0 || n > len(b.data) {
		panic("text: truncation out of range")
	}
	b.data = b.data[:n]
}

// Write implements io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

// AppendString appends s.
func (b *Buffer) AppendString(s string) *Buffer {
	b.data = append(b.data, s...)
	return b
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(c byte) *Buffer {
	b.data = append(b.data, c)
	return b
}

// AppendRune appends the UTF-8 encoding of r.
func (b *Buffer) AppendRune(r rune) *Buffer {
	b.data = utf8.AppendRune(b.data, r)
	return b
}

// AppendByteString appends the bytes of s.
func (b *Buffer) AppendByteString(s ByteString) *Buffer {
	b.data = append(b.data, s.data...)
	return b
}

// AppendEscaped appends s, inserting escape before every occurrence of
// special that is not already escaped. An occurrence counts as escaped when
// it is preceded by an odd number of escape characters.
func (b *Buffer) AppendEscaped(s string, escape, special rune) *Buffer {
	run := 0
	for _, r := range s {
		switch r {
		case escape:
			run++
		case special:
			if run%2 == 0 {
				b.data = utf8.AppendRune(b.data, escape)
			}
			run = 0
		default:
			run = 0
		}
		b.data = utf8.AppendRune(b.data, r)
	}
	return b
}

// View returns a ByteString sharing the buffer's storage. The view is
// invalidated by the next write, Reset or Release.
func (b *Buffer) View() ByteString {
	return ByteString{data: b.data[:len(b.data):len(b.data)]}
}

// ByteString returns a ByteString holding a copy of the contents.
func (b *Buffer) ByteString() ByteString {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return ByteString{data: out}
}

// String returns the contents as a string.
func (b *Buffer) String() string {
	return string(b.data)
}
