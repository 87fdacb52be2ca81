package operation

import (
	"strings"

	"github.com/jmgilman/go/gitcli/mapping"
	"github.com/jmgilman/go/gitcli/parse"
	"github.com/jmgilman/go/gitcli/progress"
	"github.com/jmgilman/go/gitcli/text"
)

// PullResult is the outcome of a pull or merge as reported by git.
type PullResult int

const (
	// ResultUndefined means git printed nothing that identifies the outcome.
	ResultUndefined PullResult = iota
	// ResultFastForward means the branch was fast-forwarded.
	ResultFastForward
	// ResultNonFastForward means a merge commit was created.
	ResultNonFastForward
	// ResultUpToDate means there was nothing to integrate.
	ResultUpToDate
	// ResultConflict means the merge stopped on conflicts.
	ResultConflict
	// ResultRebase means the branch was rebased onto its upstream.
	ResultRebase
	// ResultRebaseConflict means the rebase stopped on conflicts.
	ResultRebaseConflict
)

var pullResultNames = map[PullResult]string{
	ResultUndefined:      "undefined",
	ResultFastForward:    "fast_forward",
	ResultNonFastForward: "non_fast_forward",
	ResultUpToDate:       "up_to_date",
	ResultConflict:       "conflict",
	ResultRebase:         "rebase",
	ResultRebaseConflict: "rebase_conflict",
}

func (r PullResult) String() string {
	if name, ok := pullResultNames[r]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (r PullResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Conflicted reports whether the result stopped on conflicts.
func (r PullResult) Conflicted() bool {
	return r == ResultConflict || r == ResultRebaseConflict
}

const (
	mergeNormal = iota
	mergeConflicts
	mergeSummary
)

// integration is the state machine shared by pull and merge.
type integration struct {
	*base

	trackRebase bool
	state       int
	isRebase    bool
	result      PullResult
	conflicts   []progress.MergeConflict
	summary     *text.Buffer
}

func newIntegration(kind mapping.Kind, chain parse.Chain, trackRebase bool, opts []Option) *integration {
	op := &integration{
		base:        newBase(kind, chain, opts),
		trackRebase: trackRebase,
		isRebase:    trackRebase && buildOptions(opts).rebase,
	}
	op.m = op
	return op
}

func (op *integration) parseLine(line string) bool {
	switch op.state {
	case mergeConflicts:
		return op.collect(line, true)
	case mergeSummary:
		return op.collect(line, false)
	}

	handled := op.classify(line)
	if op.isRebase {
		op.remap()
	}
	return handled
}

func (op *integration) classify(line string) bool {
	switch {
	case op.trackRebase && strings.HasPrefix(line, "First, rewinding head to replay your work"):
		op.isRebase = true
		return op.message(line)
	case op.trackRebase && strings.HasPrefix(line, "Successfully rebased and updated "):
		op.isRebase = true
		return op.message(line)
	case op.trackRebase && strings.HasPrefix(line, "Rebasing ("):
		op.isRebase = true
		return op.message(line)
	case strings.HasPrefix(line, "Auto-merging "), strings.HasPrefix(line, "Merging "):
		return op.message(line)
	case strings.HasPrefix(line, "Updating "):
		op.result = ResultFastForward
		return op.message(line)
	case strings.HasPrefix(line, "Already up"):
		op.result = ResultUpToDate
		return op.message(line)
	case strings.HasPrefix(line, "Current branch ") && strings.HasSuffix(line, " is up to date."):
		op.result = ResultUpToDate
		return op.message(line)
	case strings.HasPrefix(line, "Fast-forward"):
		op.result = ResultFastForward
		op.state = mergeSummary
		op.appendSummary(line)
		return true
	case strings.HasPrefix(line, "Merge made by the"):
		op.result = ResultNonFastForward
		op.state = mergeSummary
		op.appendSummary(line)
		return true
	case strings.HasPrefix(line, "CONFLICT"), strings.HasPrefix(line, "Automatic merge failed"):
		op.result = ResultConflict
		op.state = mergeConflicts
		return op.collect(line, true)
	}
	return op.standard(line)
}

// remap folds the merge outcome into its rebase counterpart.
func (op *integration) remap() {
	switch op.result {
	case ResultUndefined:
		op.result = ResultRebase
	case ResultConflict:
		op.result = ResultRebaseConflict
	case ResultRebase, ResultRebaseConflict, ResultUpToDate:
	default:
		op.logger.Warn("unexpected result during rebase", "result", op.result.String())
	}
}

// collect accumulates a conflict report or a success summary. Fatal lines
// still end the operation.
func (op *integration) collect(line string, conflicts bool) bool {
	if op.fatal(line) {
		return true
	}
	if conflicts {
		if c, ok := parse.ClassifyConflict(line); ok {
			op.conflicts = append(op.conflicts, c)
			op.publish(c)
		}
	}
	op.appendSummary(line)
	return true
}

func (op *integration) appendSummary(line string) {
	if op.summary == nil {
		op.summary = text.GetBuffer()
	} else {
		op.summary.AppendByte('\n')
	}
	op.summary.AppendString(line)
}

func (op *integration) closeStream() {
	if op.summary == nil {
		return
	}
	msg := op.summary.String()
	op.summary.Release()
	op.summary = nil

	switch op.state {
	case mergeConflicts:
		op.publish(progress.NewMessage(progress.Warning, msg))
	case mergeSummary:
		op.publish(progress.NewMessage(progress.Completed, msg))
	}
}

// Result returns the outcome recognized so far.
func (op *integration) Result() PullResult {
	op.mu.Lock()
	defer op.mu.Unlock()
	return op.result
}

// Conflicts returns the conflicts git reported.
func (op *integration) Conflicts() []progress.MergeConflict {
	op.mu.Lock()
	defer op.mu.Unlock()
	return append([]progress.MergeConflict(nil), op.conflicts...)
}

// AcceptsExit treats the exit status of a merge stopped on conflicts as an
// ordinary outcome.
func (op *integration) AcceptsExit(code int) bool {
	op.mu.Lock()
	defer op.mu.Unlock()
	return code == 1 && op.result.Conflicted()
}

// Pull parses the output of git pull, in both merge and rebase mode.
type Pull struct {
	*integration
}

// NewPull creates a pull operation.
func NewPull(opts ...Option) *Pull {
	return &Pull{newIntegration(mapping.Pull, parse.Network(), true, opts)}
}

// IsRebase reports whether git integrated the upstream by rebasing.
func (op *Pull) IsRebase() bool {
	op.mu.Lock()
	defer op.mu.Unlock()
	return op.isRebase
}

// Merge parses the output of git merge.
type Merge struct {
	*integration
}

// NewMerge creates a merge operation.
func NewMerge(opts ...Option) *Merge {
	return &Merge{newIntegration(mapping.Merge, parse.Local(), false, opts)}
}
