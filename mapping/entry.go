package mapping

import (
	"fmt"

	"github.com/jmgilman/go/gitcli/failure"
	"github.com/jmgilman/go/gitcli/text"
)

// Factory builds a failure from the accumulated message and an exit code.
type Factory func(message string, exitCode int) failure.Failure

// Entry is one line pattern and the failure it produces.
type Entry struct {
	// Prefix must match the start of the line. Empty matches anything.
	Prefix string

	// Suffix must match the end of the line. Empty matches anything.
	Suffix string

	create Factory
}

// NewEntry declares a mapping from lines matching prefix and suffix to the
// failure built by ctor.
//
// ctor must have one of these shapes, tried in this order:
//
//	func(message string, exitCode int) failure.Failure
//	func(message string) failure.Failure
//	func() failure.Failure
//
// Constructors returning plain error are accepted as long as the returned
// value implements failure.Failure. Any other shape panics, so a bad
// declaration fails when the table is built rather than when git fails.
func NewEntry(ctor any, prefix, suffix string) Entry {
	return Entry{
		Prefix: prefix,
		Suffix: suffix,
		create: factoryOf(ctor),
	}
}

func factoryOf(ctor any) Factory {
	switch c := ctor.(type) {
	case Factory:
		return c
	case func(string, int) failure.Failure:
		return c
	case func(string) failure.Failure:
		return func(msg string, _ int) failure.Failure { return c(msg) }
	case func() failure.Failure:
		return func(string, int) failure.Failure { return c() }
	case func(string, int) error:
		return func(msg string, code int) failure.Failure { return mustFailure(c(msg, code)) }
	case func(string) error:
		return func(msg string, _ int) failure.Failure { return mustFailure(c(msg)) }
	case func() error:
		return func(string, int) failure.Failure { return mustFailure(c()) }
	}
	panic(fmt.Sprintf("mapping: unsupported failure constructor %T", ctor))
}

func mustFailure(err error) failure.Failure {
	if f, ok := err.(failure.Failure); ok {
		return f
	}
	return failure.NewFatalError(err.Error(), failure.FatalExitCode)
}

// Matches reports whether line matches both patterns, ignoring case.
func (e Entry) Matches(line string) bool {
	return text.HasPrefixFold(line, e.Prefix) && text.HasSuffixFold(line, e.Suffix)
}

// Create builds the failure for this entry.
func (e Entry) Create(exitCode int, message string) failure.Failure {
	return e.create(message, exitCode)
}

// String describes the entry for logging.
func (e Entry) String() string {
	return fmt.Sprintf("%q..%q", e.Prefix, e.Suffix)
}

// Match returns the first entry in entries matching line.
func Match(entries []Entry, line string) (Entry, bool) {
	for _, e := range entries {
		if e.Matches(line) {
			return e, true
		}
	}
	return Entry{}, false
}
