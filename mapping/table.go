package mapping

import (
	"sync"

	"github.com/jmgilman/go/gitcli/failure"
)

// universal entries apply to every operation and are tried last.
var universal = []Entry{
	NewEntry(failure.NewNotRepositoryError, "fatal: not a git repository", ""),
	NewEntry(failure.NewLockedError, "fatal: Unable to create '", "': File exists."),
	NewEntry(failure.NewUsageError, "usage: git", ""),
	NewEntry(failure.NewFatalError, "fatal: ", ""),
}

// network entries apply to operations that talk to a remote.
var network = []Entry{
	NewEntry(failure.NewAuthenticationError, "fatal: Authentication failed", ""),
	NewEntry(failure.NewAuthenticationError, "fatal: could not read Username", ""),
	NewEntry(failure.NewAuthenticationError, "fatal: could not read Password", ""),
	NewEntry(failure.NewAuthenticationError, "remote: Invalid username or password", ""),
	NewEntry(failure.NewRepositoryNotFoundError, "fatal: repository '", "' not found"),
	NewEntry(failure.NewNetworkError, "fatal: unable to access '", ""),
	NewEntry(failure.NewNetworkError, "fatal: Could not read from remote repository", ""),
	NewEntry(failure.NewNetworkError, "fatal: unable to connect", ""),
	NewEntry(failure.NewNetworkError, "ssh: connect to host", ""),
	NewEntry(failure.NewNetworkError, "ssh: Could not resolve hostname", ""),
}

var (
	mergeEntries = []Entry{
		NewEntry(failure.NewUnrelatedHistoriesError, "fatal: refusing to merge unrelated histories", ""),
		NewEntry(failure.NewNonFastForwardError, "fatal: Not possible to fast-forward", ""),
		NewEntry(failure.NewNoUpstreamError, "There is no tracking information", ""),
		NewEntry(failure.NewUncommittedChangesError, "error: Your local changes to the following files would be overwritten by merge", ""),
	}

	remoteRefEntries = []Entry{
		NewEntry(failure.NewRemoteRefNotFoundError, "fatal: couldn't find remote ref", ""),
	}
)

// declared holds the kind-specific entries, tried first.
var declared = map[Kind][]Entry{
	Clone: {
		NewEntry(failure.NewDestinationExistsError, "fatal: destination path '", "already exists and is not an empty directory."),
	},
	Fetch: remoteRefEntries,
	Pull:  concat(remoteRefEntries, mergeEntries),
	Merge: mergeEntries,
	Push: {
		NewEntry(failure.NewNoUpstreamError, "fatal: The current branch ", "has no upstream branch."),
		NewEntry(failure.NewInvalidReferenceError, "error: src refspec ", "does not match any"),
		NewEntry(failure.NewInvalidReferenceError, "error: src refspec ", "does not match any."),
		NewEntry(failure.NewPushFailedError, "error: failed to push some refs", ""),
	},
	Checkout: {
		NewEntry(failure.NewInvalidReferenceError, "error: pathspec '", "did not match any file(s) known to git"),
		NewEntry(failure.NewInvalidReferenceError, "error: pathspec '", "did not match any file(s) known to git."),
		NewEntry(failure.NewInvalidReferenceError, "fatal: invalid reference: ", ""),
		NewEntry(failure.NewBranchExistsError, "fatal: a branch named '", "already exists"),
	},
	Rebase: {
		NewEntry(failure.NewOperationInProgressError, "fatal: It seems that there is already a rebase-merge directory", ""),
		NewEntry(failure.NewOperationInProgressError, "fatal: It seems that there is already a rebase-apply directory", ""),
		NewEntry(failure.NewInvalidReferenceError, "fatal: invalid upstream", ""),
		NewEntry(failure.NewConflictError, "error: could not apply", ""),
	},
	Revert: {
		NewEntry(failure.NewConflictError, "error: could not revert", ""),
		NewEntry(failure.NewUncommittedChangesError, "error: your local changes would be overwritten by revert", ""),
		NewEntry(failure.NewInvalidReferenceError, "fatal: bad revision", ""),
	},
	StashPush: {
		NewEntry(failure.NewNoCommitsError, "You do not have the initial commit yet", ""),
	},
	StashApply: {
		NewEntry(failure.NewInvalidReferenceError, "error: ", "is not a valid reference"),
		NewEntry(failure.NewUncommittedChangesError, "error: Your local changes to the following files would be overwritten by merge", ""),
	},
	SubmoduleUpdate: {
		NewEntry(failure.NewSubmoduleError, "fatal: No url found for submodule path", ""),
	},
}

var resolved sync.Map // Kind -> []Entry

// For returns the entries for kind: kind-specific first, then the network
// family when the kind talks to a remote, then the universal entries.
// The returned slice is shared and must not be modified.
func For(kind Kind) []Entry {
	if v, ok := resolved.Load(kind); ok {
		return v.([]Entry)
	}

	// Concurrent first calls may both resolve; the tables are immutable so
	// either result is correct.
	entries := resolve(kind)
	resolved.Store(kind, entries)
	return entries
}

func resolve(kind Kind) []Entry {
	entries := concat(declared[kind])
	if kind.IsNetwork() {
		entries = append(entries, network...)
	}
	return append(entries, universal...)
}

func concat(lists ...[]Entry) []Entry {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	out := make([]Entry, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
