package mapping

import (
	stderrors "errors"
	"testing"

	"github.com/jmgilman/go/gitcli/errors"
	"github.com/jmgilman/go/gitcli/failure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_Matches(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		suffix string
		line   string
		want   bool
	}{
		{name: "prefix only", prefix: "fatal: ", line: "fatal: bad object", want: true},
		{name: "prefix ignores case", prefix: "FATAL: ", line: "fatal: bad object", want: true},
		{name: "prefix mismatch", prefix: "error: ", line: "fatal: bad object", want: false},
		{name: "suffix only", suffix: "not found", line: "repository NOT FOUND", want: true},
		{name: "both", prefix: "fatal: repository '", suffix: "' not found", line: "fatal: repository 'https://x/y.git/' not found", want: true},
		{name: "both with wrong suffix", prefix: "fatal: repository '", suffix: "' not found", line: "fatal: repository 'x' is corrupt", want: false},
		{name: "wildcard", line: "anything at all", want: true},
		{name: "line shorter than prefix", prefix: "fatal: ", line: "fat", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEntry(failure.NewFatalError, tt.prefix, tt.suffix)
			assert.Equal(t, tt.want, e.Matches(tt.line))
		})
	}
}

func TestNewEntry_ConstructorShapes(t *testing.T) {
	t.Run("message and exit code", func(t *testing.T) {
		e := NewEntry(failure.NewNetworkError, "", "")
		err := e.Create(128, "fatal: unable to access")
		assert.Equal(t, 128, err.ExitCode())
		assert.Equal(t, "fatal: unable to access", err.Message())
	})

	t.Run("message only", func(t *testing.T) {
		e := NewEntry(failure.NewUsageError, "", "")
		err := e.Create(1, "usage: git clone")
		assert.Equal(t, "usage: git clone", err.Message())
		assert.Equal(t, errors.CodeInvalidInput, err.Code())
	})

	t.Run("no arguments", func(t *testing.T) {
		e := NewEntry(failure.NewNotRepositoryError, "", "")
		err := e.Create(1, "ignored")
		var notRepo *failure.NotRepositoryError
		assert.True(t, stderrors.As(err, &notRepo))
	})

	t.Run("error returning constructor", func(t *testing.T) {
		e := NewEntry(func(msg string) error { return failure.NewConflictError(msg, 1) }, "", "")
		assert.Equal(t, errors.CodeConflict, e.Create(1, "x").Code())
	})

	t.Run("error returning constructor with plain error", func(t *testing.T) {
		e := NewEntry(func() error { return stderrors.New("plain") }, "", "")
		assert.Equal(t, errors.CodeFatal, e.Create(1, "x").Code())
	})

	t.Run("unsupported shape panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewEntry(func(code int) error { return nil }, "", "")
		})
		assert.Panics(t, func() {
			NewEntry("not a function", "", "")
		})
	})
}

func TestMatch(t *testing.T) {
	entries := []Entry{
		NewEntry(failure.NewAuthenticationError, "fatal: Authentication failed", ""),
		NewEntry(failure.NewFatalError, "fatal: ", ""),
	}

	e, ok := Match(entries, "fatal: Authentication failed for 'https://example.com/'")
	require.True(t, ok)
	assert.Equal(t, "fatal: Authentication failed", e.Prefix)

	e, ok = Match(entries, "fatal: something else")
	require.True(t, ok)
	assert.Equal(t, "fatal: ", e.Prefix)

	_, ok = Match(entries, "Cloning into 'x'...")
	assert.False(t, ok)
}
