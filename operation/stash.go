package operation

import (
	"strings"

	"github.com/jmgilman/go/gitcli/mapping"
	"github.com/jmgilman/go/gitcli/parse"
	"github.com/jmgilman/go/gitcli/progress"
)

// StashPush parses the output of git stash push.
type StashPush struct {
	*base
	noClose

	saved bool
}

// NewStashPush creates a stash push operation.
func NewStashPush(opts ...Option) *StashPush {
	op := &StashPush{base: newBase(mapping.StashPush, parse.Local(), opts)}
	op.m = op
	return op
}

func (op *StashPush) parseLine(line string) bool {
	if strings.HasPrefix(line, "Saved working directory and index state") {
		op.saved = true
	}
	return op.standard(line)
}

// Saved reports whether git created a stash entry.
func (op *StashPush) Saved() bool {
	op.mu.Lock()
	defer op.mu.Unlock()
	return op.saved
}

// statusPrefixes maps git status labels to update kinds, staged then unstaged.
var statusPrefixes = []struct {
	label    string
	staged   progress.UpdateKind
	unstaged progress.UpdateKind
}{
	{"modified:", progress.StagedModified, progress.UnstagedModified},
	{"deleted:", progress.StagedDeleted, progress.UnstagedDeleted},
	{"new file:", progress.StagedAdded, progress.StagedAdded},
	{"renamed:", progress.StagedModified, progress.UnstagedModified},
	{"typechange:", progress.StagedModified, progress.UnstagedModified},
}

const statusNoise = `  (use "`

// StashApply parses the output of git stash apply and git stash pop.
type StashApply struct {
	*base
	noClose

	isStagedSection    bool
	isUntrackedSection bool
	isUnmergedSection  bool
	updates            []progress.FileUpdate
	conflicts          int
}

// NewStashApply creates a stash apply operation.
func NewStashApply(opts ...Option) *StashApply {
	op := &StashApply{base: newBase(mapping.StashApply, parse.Local(), opts)}
	op.m = op
	return op
}

func (op *StashApply) parseLine(line string) bool {
	if strings.HasPrefix(line, statusNoise) {
		return false
	}

	switch line {
	case "Changes to be committed:":
		op.section(true, false, false)
		return true
	case "Changes not staged for commit:":
		op.section(false, false, false)
		return true
	case "Untracked files:":
		op.section(false, true, false)
		return true
	case "Unmerged paths:":
		op.section(false, false, true)
		return true
	}

	if c, ok := parse.ClassifyConflict(line); ok {
		op.conflicts++
		op.update(c.Path, progress.Conflicted)
		op.publish(c)
		return true
	}

	if strings.HasPrefix(line, "\t") {
		return op.fileLine(strings.TrimSpace(line))
	}
	return op.standard(line)
}

func (op *StashApply) section(staged, untracked, unmerged bool) {
	op.isStagedSection = staged
	op.isUntrackedSection = untracked
	op.isUnmergedSection = unmerged
}

func (op *StashApply) fileLine(entry string) bool {
	switch {
	case op.isUnmergedSection:
		// Already reported by the CONFLICT lines.
		return false
	case op.isUntrackedSection:
		op.update(entry, progress.Untracked)
		return true
	}

	for _, p := range statusPrefixes {
		if strings.HasPrefix(entry, p.label) {
			kind := p.unstaged
			if op.isStagedSection {
				kind = p.staged
			}
			op.update(strings.TrimSpace(entry[len(p.label):]), kind)
			return true
		}
	}
	return op.message(entry)
}

func (op *StashApply) update(path string, kind progress.UpdateKind) {
	u := progress.FileUpdate{Path: path, Kind: kind}
	op.updates = append(op.updates, u)
	op.publish(u)
}

// Updates returns the file updates reported by git, conflicts included.
func (op *StashApply) Updates() []progress.FileUpdate {
	op.mu.Lock()
	defer op.mu.Unlock()
	return append([]progress.FileUpdate(nil), op.updates...)
}

// Conflicts returns the number of conflicted paths.
func (op *StashApply) Conflicts() int {
	op.mu.Lock()
	defer op.mu.Unlock()
	return op.conflicts
}

// AcceptsExit treats the exit status of an apply that left conflicts as an
// ordinary outcome.
func (op *StashApply) AcceptsExit(code int) bool {
	op.mu.Lock()
	defer op.mu.Unlock()
	return code == 1 && op.conflicts > 0
}
