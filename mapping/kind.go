package mapping

import "fmt"

// Kind identifies the git subcommand an operation runs.
type Kind int

const (
	Clone Kind = iota
	Fetch
	Pull
	Push
	Checkout
	Merge
	Rebase
	Revert
	StashPush
	StashApply
	SubmoduleUpdate
)

var kindNames = map[Kind]string{
	Clone:           "clone",
	Fetch:           "fetch",
	Pull:            "pull",
	Push:            "push",
	Checkout:        "checkout",
	Merge:           "merge",
	Rebase:          "rebase",
	Revert:          "revert",
	StashPush:       "stash-push",
	StashApply:      "stash-apply",
	SubmoduleUpdate: "submodule-update",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Kinds returns every known Kind.
func Kinds() []Kind {
	return []Kind{Clone, Fetch, Pull, Push, Checkout, Merge, Rebase, Revert, StashPush, StashApply, SubmoduleUpdate}
}

// IsNetwork reports whether the kind talks to a remote.
func (k Kind) IsNetwork() bool {
	switch k {
	case Clone, Fetch, Pull, Push, SubmoduleUpdate:
		return true
	}
	return false
}
