package text

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/spaolacci/murmur3"
	"golang.org/x/text/cases"
)

// ByteString is an immutable view over UTF-8 encoded bytes.
// The zero value is an empty string.
type ByteString struct {
	data []byte
}

// New returns a ByteString viewing b. The caller must not modify b afterwards.
func New(b []byte) ByteString {
	return ByteString{data: b}
}

// FromString returns a ByteString holding a copy of s.
func FromString(s string) ByteString {
	return ByteString{data: []byte(s)}
}

// Len returns the length in bytes.
func (s ByteString) Len() int {
	return len(s.data)
}

// IsEmpty reports whether the string has no bytes.
func (s ByteString) IsEmpty() bool {
	return len(s.data) == 0
}

// Bytes returns the underlying bytes. The result must be treated as read-only.
func (s ByteString) Bytes() []byte {
	return s.data
}

// String decodes the view into a Go string.
func (s ByteString) String() string {
	return string(s.data)
}

// Slice returns the view between byte offsets start and end.
//
// Out of range offsets are clamped. A start offset that falls on a UTF-8
// continuation byte moves forward to the next rune start, and an end offset
// that would cut a rune in half moves back to that rune's first byte, so the
// result always holds whole code points.
func (s ByteString) Slice(start, end int) ByteString {
	n := len(s.data)
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= end {
		return ByteString{}
	}

	for start < end && isContinuation(s.data[start]) {
		start++
	}
	if end < n {
		for end > start && isContinuation(s.data[end]) {
			end--
		}
	}
	if start >= end {
		return ByteString{}
	}

	return ByteString{data: s.data[start:end:end]}
}

// Substring returns the view from start to the end of the string.
func (s ByteString) Substring(start int) ByteString {
	return s.Slice(start, len(s.data))
}

// IndexByte returns the offset of the first c, or -1.
func (s ByteString) IndexByte(c byte) int {
	return bytes.IndexByte(s.data, c)
}

// Index returns the offset of the first occurrence of sub, or -1.
func (s ByteString) Index(sub string) int {
	return bytes.Index(s.data, []byte(sub))
}

// HasPrefix reports whether the string begins with prefix.
func (s ByteString) HasPrefix(prefix string) bool {
	return len(s.data) >= len(prefix) && string(s.data[:len(prefix)]) == prefix
}

// HasSuffix reports whether the string ends with suffix.
func (s ByteString) HasSuffix(suffix string) bool {
	return len(s.data) >= len(suffix) && string(s.data[len(s.data)-len(suffix):]) == suffix
}

// TrimPrefix returns s without the given prefix, or s unchanged.
func (s ByteString) TrimPrefix(prefix string) ByteString {
	if s.HasPrefix(prefix) {
		return ByteString{data: s.data[len(prefix):]}
	}
	return s
}

// TrimRight returns s without trailing ASCII whitespace.
func (s ByteString) TrimRight() ByteString {
	end := len(s.data)
	for end > 0 && isSpace(s.data[end-1]) {
		end--
	}
	return ByteString{data: s.data[:end]}
}

// TrimSpace returns s without leading and trailing ASCII whitespace.
func (s ByteString) TrimSpace() ByteString {
	start := 0
	for start < len(s.data) && isSpace(s.data[start]) {
		start++
	}
	return ByteString{data: s.data[start:]}.TrimRight()
}

// Equal reports whether both strings hold the same bytes.
func (s ByteString) Equal(other ByteString) bool {
	return bytes.Equal(s.data, other.data)
}

// Compare orders two strings by their raw bytes.
func (s ByteString) Compare(other ByteString) int {
	return bytes.Compare(s.data, other.data)
}

// EqualFold reports whether both strings are equal under Unicode case folding.
func (s ByteString) EqualFold(other ByteString) bool {
	return s.CompareFold(other) == 0
}

// CompareFold orders two strings after Unicode case folding.
// Both strings are fully decoded, so this is slower than Compare.
func (s ByteString) CompareFold(other ByteString) int {
	if bytes.Equal(s.data, other.data) {
		return 0
	}
	fold := cases.Fold()
	a := fold.Bytes(s.data)
	fold.Reset()
	b := fold.Bytes(other.data)
	return bytes.Compare(a, b)
}

// Hash returns the 32-bit Murmur3 hash of the raw bytes.
func (s ByteString) Hash() uint32 {
	return Hash(s.data)
}

// RuneCount returns the number of code points.
func (s ByteString) RuneCount() int {
	return utf8.RuneCount(s.data)
}

// Hash returns the Murmur3 (x86, 32-bit, seed 0) hash of b.
func Hash(b []byte) uint32 {
	return murmur3.Sum32(b)
}

// HasPrefixFold reports whether s begins with prefix, ignoring case.
func HasPrefixFold(s, prefix string) bool {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return true
	}
	if isASCII(s) && isASCII(prefix) {
		return false
	}
	return foldIndex(s, prefix, true)
}

// HasSuffixFold reports whether s ends with suffix, ignoring case.
func HasSuffixFold(s, suffix string) bool {
	if len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix) {
		return true
	}
	if isASCII(s) && isASCII(suffix) {
		return false
	}
	return foldIndex(s, suffix, false)
}

func foldIndex(s, pattern string, prefix bool) bool {
	fold := cases.Fold()
	fs := fold.String(s)
	fold.Reset()
	fp := fold.String(pattern)
	if len(fp) > len(fs) {
		return false
	}
	if prefix {
		return fs[:len(fp)] == fp
	}
	return fs[len(fs)-len(fp):] == fp
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}
