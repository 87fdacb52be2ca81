package git

import (
	"github.com/jmgilman/go/gitcli/operation"
	"github.com/jmgilman/go/gitcli/progress"
)

// CloneOptions configures Clone.
type CloneOptions struct {
	Branch       string // Branch or tag to check out instead of the remote HEAD
	Depth        int    // 0 for full clone, >0 for shallow clone
	SingleBranch bool   // Clone only a single branch
	Recursive    bool   // Initialize and clone submodules
	Bare         bool   // Create a bare repository
}

// FetchOptions configures Fetch.
type FetchOptions struct {
	Remote   string // Default: the branch's upstream remote, as git decides
	RefSpecs []string
	All      bool // Fetch every remote; Remote and RefSpecs are ignored
	Prune    bool
	Tags     bool
	Depth    int // For deepening shallow clones
}

// PullOptions configures Pull.
type PullOptions struct {
	Remote string // Default: the current branch's upstream
	Branch string // Remote branch to integrate; requires Remote
	Rebase bool   // Rebase instead of merging
	FFOnly bool   // Refuse to create a merge commit
}

// PushOptions configures Push.
type PushOptions struct {
	Remote         string // Default: the current branch's upstream remote
	RefSpecs       []string
	Force          bool
	ForceWithLease bool
	SetUpstream    bool // Track the pushed branch; defaults the remote to "origin"
	Tags           bool
}

// CheckoutOptions configures Checkout.
type CheckoutOptions struct {
	CreateBranch bool // Create the branch (-b) before switching to it
	Force        bool // Discard local changes
}

// MergeOptions configures Merge.
type MergeOptions struct {
	NoFF    bool
	FFOnly  bool
	Message string
}

// RebaseOptions configures Rebase.
type RebaseOptions struct {
	Onto      string
	Autostash bool
}

// RevertOptions configures Revert.
type RevertOptions struct {
	NoCommit bool
	Mainline int // Parent number for reverting a merge commit
}

// StashPushOptions configures StashPush.
type StashPushOptions struct {
	Message          string
	IncludeUntracked bool
	KeepIndex        bool
}

// StashApplyOptions configures StashApply.
type StashApplyOptions struct {
	Stash string // Default: the latest stash
	Index bool   // Restore the index as well
	Pop   bool   // Drop the stash after a clean apply
}

// SubmoduleUpdateOptions configures SubmoduleUpdate.
type SubmoduleUpdateOptions struct {
	Init      bool
	Recursive bool
	Remote    bool // Use the submodule's remote-tracking branch
	Rebase    bool
	Merge     bool
	Paths     []string
}

// MergeResult is the outcome of Pull and Merge.
type MergeResult struct {
	Result    operation.PullResult     `json:"result" yaml:"result"`
	Rebased   bool                     `json:"rebased" yaml:"rebased"`
	Conflicts []progress.MergeConflict `json:"conflicts,omitempty" yaml:"conflicts,omitempty"`
}

// StashApplyResult is the outcome of StashApply.
type StashApplyResult struct {
	Updates   []progress.FileUpdate `json:"updates,omitempty" yaml:"updates,omitempty"`
	Conflicts int                   `json:"conflicts" yaml:"conflicts"`
}
