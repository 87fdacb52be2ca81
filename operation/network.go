package operation

import (
	"regexp"
	"strings"

	"github.com/jmgilman/go/gitcli/failure"
	"github.com/jmgilman/go/gitcli/mapping"
	"github.com/jmgilman/go/gitcli/parse"
)

// Clone parses the output of git clone.
type Clone struct {
	*base
	noClose
}

// NewClone creates a clone operation.
func NewClone(opts ...Option) *Clone {
	op := &Clone{base: newBase(mapping.Clone, parse.Network(), opts)}
	op.m = op
	return op
}

func (op *Clone) parseLine(line string) bool {
	return op.standard(line)
}

// Fetch parses the output of git fetch.
type Fetch struct {
	*base
	noClose
}

// NewFetch creates a fetch operation.
func NewFetch(opts ...Option) *Fetch {
	op := &Fetch{base: newBase(mapping.Fetch, parse.Network(), opts)}
	op.m = op
	return op
}

func (op *Fetch) parseLine(line string) bool {
	return op.standard(line)
}

const (
	rejectedPrefix       = " ! [rejected]"
	remoteRejectedPrefix = " ! [remote rejected]"
)

// rejectPattern matches the remainder of a rejected ref line in both the
// human form ("main -> main (fetch first)") and the porcelain form
// ("refs/heads/a:refs/heads/a\t[rejected] (non-fast-forward)").
var rejectPattern = regexp.MustCompile(
	`^\s*(?P<local>[^\s:]+)(?::|\s+->\s+)(?P<remote>\S+)\s+(?:\[rejected\]\s+)?\((?P<reason>[^)]*)\)`)

// pushHints are the advice texts git prints after a rejected push.
var pushHints = []struct {
	prefix string
	hint   failure.PushHint
}{
	{"You cannot update a remote ref that points at a non-commit object", failure.HintNeedsForce},
	{"Updates were rejected because the tag already exists in the remote", failure.HintAlreadyExists},
	{"Updates were rejected because the remote contains work that you do", failure.HintFetchFirst},
	{"Updates were rejected because a pushed branch tip is behind its remote", failure.HintCheckoutPullPush},
	{"Updates were rejected because the tip of your current branch is behind", failure.HintCurrentBehindRemote},
}

// Push parses the output of git push.
type Push struct {
	*base
	noClose
}

// NewPush creates a push operation.
func NewPush(opts ...Option) *Push {
	op := &Push{base: newBase(mapping.Push, parse.Network(), opts)}
	op.m = op
	return op
}

func (op *Push) parseLine(line string) bool {
	switch {
	case strings.HasPrefix(line, rejectedPrefix):
		op.rejected(line, line[len(rejectedPrefix):])
		return true
	case strings.HasPrefix(line, remoteRejectedPrefix):
		rest := strings.TrimSpace(line[len(remoteRejectedPrefix):])
		op.startFault(line, func(message string) error {
			return failure.NewRemoteRejectedError(rest + strings.TrimPrefix(message, line))
		})
		return true
	}

	if hint, ok := pushHint(line); ok {
		op.startFault(line, func(message string) error {
			return failure.NewPushHintError(message, hint)
		})
		return true
	}
	return op.standard(line)
}

func (op *Push) rejected(line, rest string) {
	local, remote, reason := "", "", strings.TrimSpace(rest)
	if g := parse.Groups(rejectPattern, rest); g != nil {
		local, remote, reason = g["local"], g["remote"], g["reason"]
	}
	op.startFault(line, func(message string) error {
		return failure.NewPushRejectedError(message, local, remote, reason)
	})
}

func pushHint(line string) (failure.PushHint, bool) {
	var rest string
	switch {
	case strings.HasPrefix(line, "hint: "):
		rest = line[len("hint: "):]
	case strings.HasPrefix(line, "warning: "):
		rest = line[len("warning: "):]
	default:
		return 0, false
	}
	for _, h := range pushHints {
		if strings.HasPrefix(rest, h.prefix) {
			return h.hint, true
		}
	}
	return 0, false
}
