package operation

import (
	"strings"

	"github.com/jmgilman/go/gitcli/failure"
	"github.com/jmgilman/go/gitcli/mapping"
	"github.com/jmgilman/go/gitcli/parse"
)

// Rebase parses the output of git rebase.
type Rebase struct {
	*base
	noClose
}

// NewRebase creates a rebase operation.
func NewRebase(opts ...Option) *Rebase {
	op := &Rebase{base: newBase(mapping.Rebase, parse.Local(), opts)}
	op.m = op
	return op
}

func (op *Rebase) parseLine(line string) bool {
	switch {
	case strings.HasPrefix(line, "Auto-merging "),
		strings.HasPrefix(line, "Falling back "),
		strings.HasPrefix(line, "Using index "):
		return op.message(line)
	case strings.HasPrefix(line, "error: cannot rebase: You have unstaged changes"),
		strings.HasPrefix(line, "error: cannot rebase: Your index contains uncommitted changes"):
		op.startFault(line, func(message string) error {
			return failure.NewUncommittedChangesError(message)
		})
		return true
	}

	if c, ok := parse.ClassifyConflict(line); ok {
		op.publish(c)
		return true
	}
	return op.standard(line)
}

// Revert parses the output of git revert.
type Revert struct {
	*base
	noClose
}

// NewRevert creates a revert operation.
func NewRevert(opts ...Option) *Revert {
	op := &Revert{base: newBase(mapping.Revert, parse.Local(), opts)}
	op.m = op
	return op
}

func (op *Revert) parseLine(line string) bool {
	if strings.HasPrefix(line, "Skipped ") {
		return op.message(line)
	}
	if c, ok := parse.ClassifyConflict(line); ok {
		op.publish(c)
		return true
	}
	return op.standard(line)
}
