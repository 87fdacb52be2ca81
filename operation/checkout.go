package operation

import (
	"strings"

	"github.com/jmgilman/go/gitcli/failure"
	"github.com/jmgilman/go/gitcli/mapping"
	"github.com/jmgilman/go/gitcli/parse"
	"github.com/jmgilman/go/gitcli/progress"
)

// checkoutHeaders are the error headers git prints before a tab-indented
// list of paths it refused to touch. More specific headers come first.
var checkoutHeaders = []struct {
	fragment string
	conflict progress.ConflictType
}{
	{"untracked working tree files would be overwritten by", progress.UntrackedFileOverwrite},
	{"untracked working tree files would be removed by", progress.UntrackedFileRemove},
	{"would be overwritten by sparse checkout update", progress.SparseFileOverwrite},
	{"would be removed by sparse checkout update", progress.SparseFileRemove},
	{"would lose untracked files in them", progress.WouldLoseUntracked},
	{"not uptodate. Cannot", progress.NotUpToDate},
	{"local changes to the following files would be overwritten", progress.TrackedFileOverwrite},
}

const (
	checkoutNormal = iota
	checkoutPaths
)

// Checkout parses the output of git checkout and git switch.
type Checkout struct {
	*base

	state     int
	header    string
	lines     []string
	conflict  progress.ConflictType
	conflicts []progress.CheckoutConflict
}

// NewCheckout creates a checkout operation.
func NewCheckout(opts ...Option) *Checkout {
	op := &Checkout{base: newBase(mapping.Checkout, parse.Local(), opts)}
	op.m = op
	return op
}

func (op *Checkout) parseLine(line string) bool {
	if op.state == checkoutPaths {
		if strings.HasPrefix(line, "\t") {
			op.lines = append(op.lines, line)
			op.addConflict(strings.TrimSpace(line))
			return true
		}
		op.endPaths()
		if op.draining {
			op.accumulate(line)
			return true
		}
	}

	if strings.HasPrefix(line, "error: ") {
		if conflict, ok := checkoutConflictType(line); ok {
			op.state = checkoutPaths
			op.header = line
			op.lines = nil
			op.conflict = conflict
			op.conflicts = nil
			if conflict == progress.NotUpToDate {
				if path, ok := quotedPath(line); ok {
					op.addConflict(path)
				}
			}
			return true
		}
	}
	return op.standard(line)
}

func (op *Checkout) addConflict(path string) {
	c := progress.CheckoutConflict{Path: path, Type: op.conflict}
	op.conflicts = append(op.conflicts, c)
	op.publish(c)
}

// endPaths closes the path list: collected paths become a failure whose
// message keeps the header and the listed paths, an empty list degrades to
// a warning.
func (op *Checkout) endPaths() {
	op.state = checkoutNormal
	if len(op.conflicts) == 0 {
		op.publish(progress.NewMessage(progress.Warning, strings.TrimPrefix(op.header, "error: ")))
		return
	}

	conflicts := op.conflicts
	op.startFault(op.header, func(message string) error {
		return failure.NewCheckoutConflictError(message, conflicts)
	})
	for _, line := range op.lines {
		op.accumulate(line)
	}
	op.lines = nil
}

func (op *Checkout) closeStream() {
	if op.state == checkoutPaths {
		op.endPaths()
	}
}

// Conflicts returns the paths git refused to touch.
func (op *Checkout) Conflicts() []progress.CheckoutConflict {
	op.mu.Lock()
	defer op.mu.Unlock()
	return append([]progress.CheckoutConflict(nil), op.conflicts...)
}

func checkoutConflictType(line string) (progress.ConflictType, bool) {
	for _, h := range checkoutHeaders {
		if strings.Contains(line, h.fragment) {
			return h.conflict, true
		}
	}
	return 0, false
}

// quotedPath extracts the path from "Entry 'path' not uptodate".
func quotedPath(line string) (string, bool) {
	start := strings.IndexByte(line, '\'')
	if start < 0 {
		return "", false
	}
	end := strings.IndexByte(line[start+1:], '\'')
	if end < 0 {
		return "", false
	}
	return line[start+1 : start+1+end], true
}
