package git

import (
	"context"
	"strconv"

	"github.com/jmgilman/go/gitcli/errors"
	"github.com/jmgilman/go/gitcli/operation"
	"github.com/jmgilman/go/gitcli/progress"
)

// Clone clones url into dir.
//
// Example:
//
//	err := client.Clone(ctx, "https://github.com/org/repo", "/tmp/repo",
//	    git.CloneOptions{Depth: 1, SingleBranch: true}, handler)
func (c *Client) Clone(ctx context.Context, url, dir string, opts CloneOptions, handler progress.Handler) error {
	if url == "" {
		return c.fail(handler, errors.New(errors.CodeInvalidInput, "URL is required"))
	}

	args := []string{"clone", "--progress"}
	if opts.Branch != "" {
		args = append(args, "--branch", opts.Branch)
	}
	if opts.Depth > 0 {
		args = append(args, "--depth", strconv.Itoa(opts.Depth))
	}
	if opts.SingleBranch {
		args = append(args, "--single-branch")
	}
	if opts.Recursive {
		args = append(args, "--recurse-submodules")
	}
	if opts.Bare {
		args = append(args, "--bare")
	}
	args = append(args, "--", url)
	if dir != "" {
		args = append(args, dir)
	}

	return c.run(ctx, "", operation.NewClone(c.opLogger()), handler, args...)
}

// Fetch downloads objects and refs from a remote.
func (c *Client) Fetch(ctx context.Context, dir string, opts FetchOptions, handler progress.Handler) error {
	args := []string{"fetch", "--progress"}
	if opts.Prune {
		args = append(args, "--prune")
	}
	if opts.Tags {
		args = append(args, "--tags")
	}
	if opts.Depth > 0 {
		args = append(args, "--depth", strconv.Itoa(opts.Depth))
	}
	switch {
	case opts.All:
		args = append(args, "--all")
	case opts.Remote != "":
		args = append(args, opts.Remote)
		args = append(args, opts.RefSpecs...)
	}

	return c.run(ctx, dir, operation.NewFetch(c.opLogger()), handler, args...)
}

// Pull integrates the upstream of the current branch, or the given remote
// branch, into the working tree.
//
// A pull that stops on conflicts is not an error: the result reports
// operation.ResultConflict or operation.ResultRebaseConflict.
func (c *Client) Pull(ctx context.Context, dir string, opts PullOptions, handler progress.Handler) (MergeResult, error) {
	if opts.Remote == "" {
		if opts.Branch != "" {
			return MergeResult{}, c.fail(handler, errors.New(errors.CodeInvalidInput, "branch requires a remote"))
		}
		if _, err := c.upstream(dir); err != nil {
			return MergeResult{}, c.fail(handler, err)
		}
	}

	args := []string{"pull", "--progress"}
	if opts.Rebase {
		args = append(args, "--rebase")
	}
	if opts.FFOnly {
		args = append(args, "--ff-only")
	}
	if opts.Remote != "" {
		args = append(args, opts.Remote)
		if opts.Branch != "" {
			args = append(args, opts.Branch)
		}
	}

	popts := []operation.Option{c.opLogger()}
	if opts.Rebase {
		popts = append(popts, operation.WithRebase())
	}
	op := operation.NewPull(popts...)
	err := c.run(ctx, dir, op, handler, args...)
	return MergeResult{Result: op.Result(), Rebased: op.IsRebase(), Conflicts: op.Conflicts()}, err
}

// Push updates remote refs. Without a remote or refspecs the current branch
// is pushed to its upstream.
func (c *Client) Push(ctx context.Context, dir string, opts PushOptions, handler progress.Handler) error {
	remote, refspecs := opts.Remote, opts.RefSpecs
	if remote == "" && len(refspecs) == 0 {
		var err error
		if remote, refspecs, err = c.defaultPush(dir, opts.SetUpstream); err != nil {
			return c.fail(handler, err)
		}
	}

	args := []string{"push", "--progress"}
	if opts.Force {
		args = append(args, "--force")
	}
	if opts.ForceWithLease {
		args = append(args, "--force-with-lease")
	}
	if opts.SetUpstream {
		args = append(args, "--set-upstream")
	}
	if opts.Tags {
		args = append(args, "--tags")
	}
	if remote != "" {
		args = append(args, remote)
		args = append(args, refspecs...)
	}

	return c.run(ctx, dir, operation.NewPush(c.opLogger()), handler, args...)
}

// defaultPush resolves the remote and refspec for pushing the current branch.
func (c *Client) defaultPush(dir string, setUpstream bool) (string, []string, error) {
	repo, err := Open(dir)
	if err != nil {
		return "", nil, err
	}
	branch, err := repo.CurrentBranch()
	if err != nil {
		return "", nil, err
	}

	up, err := repo.Upstream(branch)
	if err != nil {
		if !setUpstream {
			return "", nil, err
		}
		return "origin", []string{branch}, nil
	}
	return up.Remote, []string{branch + ":" + up.Merge.String()}, nil
}

func (c *Client) upstream(dir string) (Upstream, error) {
	repo, err := Open(dir)
	if err != nil {
		return Upstream{}, err
	}
	branch, err := repo.CurrentBranch()
	if err != nil {
		return Upstream{}, err
	}
	return repo.Upstream(branch)
}

// Checkout switches the working tree to ref.
func (c *Client) Checkout(ctx context.Context, dir, ref string, opts CheckoutOptions, handler progress.Handler) error {
	if ref == "" {
		return c.fail(handler, errors.New(errors.CodeInvalidInput, "reference is required"))
	}

	args := []string{"checkout", "--progress"}
	if opts.Force {
		args = append(args, "--force")
	}
	if opts.CreateBranch {
		args = append(args, "-b")
	}
	args = append(args, ref)

	return c.run(ctx, dir, operation.NewCheckout(c.opLogger()), handler, args...)
}

// Merge merges ref into the current branch. Conflicts are reported in the
// result, not as an error.
func (c *Client) Merge(ctx context.Context, dir, ref string, opts MergeOptions, handler progress.Handler) (MergeResult, error) {
	if ref == "" {
		return MergeResult{}, c.fail(handler, errors.New(errors.CodeInvalidInput, "reference is required"))
	}

	args := []string{"merge", "--progress"}
	if opts.NoFF {
		args = append(args, "--no-ff")
	}
	if opts.FFOnly {
		args = append(args, "--ff-only")
	}
	if opts.Message != "" {
		args = append(args, "-m", opts.Message)
	}
	args = append(args, ref)

	op := operation.NewMerge(c.opLogger())
	err := c.run(ctx, dir, op, handler, args...)
	return MergeResult{Result: op.Result(), Conflicts: op.Conflicts()}, err
}

// Rebase replays the current branch onto upstream.
func (c *Client) Rebase(ctx context.Context, dir, upstream string, opts RebaseOptions, handler progress.Handler) error {
	args := []string{"rebase"}
	if opts.Autostash {
		args = append(args, "--autostash")
	}
	if opts.Onto != "" {
		args = append(args, "--onto", opts.Onto)
	}
	if upstream != "" {
		args = append(args, upstream)
	}

	return c.run(ctx, dir, operation.NewRebase(c.opLogger()), handler, args...)
}

// Revert creates commits that undo commits.
func (c *Client) Revert(ctx context.Context, dir string, commits []string, opts RevertOptions, handler progress.Handler) error {
	if len(commits) == 0 {
		return c.fail(handler, errors.New(errors.CodeInvalidInput, "at least one commit is required"))
	}

	args := []string{"revert", "--no-edit"}
	if opts.NoCommit {
		args = append(args, "--no-commit")
	}
	if opts.Mainline > 0 {
		args = append(args, "--mainline", strconv.Itoa(opts.Mainline))
	}
	args = append(args, commits...)

	return c.run(ctx, dir, operation.NewRevert(c.opLogger()), handler, args...)
}

// StashPush stashes local changes. It reports whether a stash entry was
// created; git creates none when there is nothing to save.
func (c *Client) StashPush(ctx context.Context, dir string, opts StashPushOptions, handler progress.Handler) (bool, error) {
	args := []string{"stash", "push"}
	if opts.IncludeUntracked {
		args = append(args, "--include-untracked")
	}
	if opts.KeepIndex {
		args = append(args, "--keep-index")
	}
	if opts.Message != "" {
		args = append(args, "--message", opts.Message)
	}

	op := operation.NewStashPush(c.opLogger())
	err := c.run(ctx, dir, op, handler, args...)
	return op.Saved(), err
}

// StashApply applies a stash, or pops it with opts.Pop. Conflicts are
// reported in the result, not as an error.
func (c *Client) StashApply(ctx context.Context, dir string, opts StashApplyOptions, handler progress.Handler) (StashApplyResult, error) {
	args := []string{"stash", "apply"}
	if opts.Pop {
		args[1] = "pop"
	}
	if opts.Index {
		args = append(args, "--index")
	}
	if opts.Stash != "" {
		args = append(args, opts.Stash)
	}

	op := operation.NewStashApply(c.opLogger())
	err := c.run(ctx, dir, op, handler, args...)
	return StashApplyResult{Updates: op.Updates(), Conflicts: op.Conflicts()}, err
}

// SubmoduleUpdate updates registered submodules. Failures git reports while
// still exiting 0 are returned as failure.SubmoduleError.
func (c *Client) SubmoduleUpdate(ctx context.Context, dir string, opts SubmoduleUpdateOptions, handler progress.Handler) error {
	if opts.Rebase && opts.Merge {
		return c.fail(handler, errors.New(errors.CodeInvalidInput, "rebase and merge are mutually exclusive"))
	}

	args := []string{"submodule", "update", "--progress"}
	if opts.Init {
		args = append(args, "--init")
	}
	if opts.Recursive {
		args = append(args, "--recursive")
	}
	if opts.Remote {
		args = append(args, "--remote")
	}
	if opts.Rebase {
		args = append(args, "--rebase")
	}
	if opts.Merge {
		args = append(args, "--merge")
	}
	if len(opts.Paths) > 0 {
		args = append(args, "--")
		args = append(args, opts.Paths...)
	}

	return c.run(ctx, dir, operation.NewSubmoduleUpdate(c.opLogger()), handler, args...)
}

func (c *Client) opLogger() operation.Option {
	return operation.WithLogger(c.logger)
}

// fail reports err to handler, keeping the single OnComplete contract for
// failures detected before git starts.
func (c *Client) fail(handler progress.Handler, err error) error {
	if handler != nil {
		handler.OnComplete(err)
	}
	return err
}
