package main

import (
	"fmt"
	"strings"

	"github.com/jmgilman/go/gitcli/git"
	"github.com/spf13/cobra"
)

func (a *app) cloneCmd() *cobra.Command {
	var opts git.CloneOptions
	cmd := &cobra.Command{
		Use:   "clone <url> <directory>",
		Short: "Clone a repository into a new directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.client.Clone(cmd.Context(), args[0], args[1], opts, a.printer)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.Branch, "branch", "b", "", "Check out this branch instead of the remote HEAD")
	f.IntVar(&opts.Depth, "depth", 0, "Create a shallow clone with this many commits")
	f.BoolVar(&opts.SingleBranch, "single-branch", false, "Clone only one branch")
	f.BoolVar(&opts.Recursive, "recurse-submodules", false, "Initialize and clone submodules")
	f.BoolVar(&opts.Bare, "bare", false, "Create a bare repository")
	return cmd
}

func (a *app) fetchCmd() *cobra.Command {
	var opts git.FetchOptions
	cmd := &cobra.Command{
		Use:   "fetch [remote [refspec...]]",
		Short: "Download objects and refs from a remote",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Remote, opts.RefSpecs = args[0], args[1:]
			}
			return a.client.Fetch(cmd.Context(), a.dir, opts, a.printer)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&opts.All, "all", false, "Fetch all remotes")
	f.BoolVarP(&opts.Prune, "prune", "p", false, "Remove remote-tracking refs that no longer exist")
	f.BoolVarP(&opts.Tags, "tags", "t", false, "Fetch all tags")
	f.IntVar(&opts.Depth, "depth", 0, "Deepen a shallow clone to this many commits")
	return cmd
}

func (a *app) pullCmd() *cobra.Command {
	var opts git.PullOptions
	cmd := &cobra.Command{
		Use:   "pull [remote [branch]]",
		Short: "Fetch from and integrate with a remote branch",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Remote = args[0]
			}
			if len(args) > 1 {
				opts.Branch = args[1]
			}
			res, err := a.client.Pull(cmd.Context(), a.dir, opts, a.printer)
			if err != nil {
				return err
			}
			a.printer.result(describeMerge(res), res)
			return nil
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&opts.Rebase, "rebase", "r", false, "Rebase onto the fetched branch instead of merging")
	f.BoolVar(&opts.FFOnly, "ff-only", false, "Refuse to create a merge commit")
	return cmd
}

func (a *app) pushCmd() *cobra.Command {
	var opts git.PushOptions
	cmd := &cobra.Command{
		Use:   "push [remote [refspec...]]",
		Short: "Update remote refs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Remote, opts.RefSpecs = args[0], args[1:]
			}
			return a.client.Push(cmd.Context(), a.dir, opts, a.printer)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&opts.Force, "force", "f", false, "Force the update")
	f.BoolVar(&opts.ForceWithLease, "force-with-lease", false, "Force only if the remote ref is as expected")
	f.BoolVarP(&opts.SetUpstream, "set-upstream", "u", false, "Track the pushed branch")
	f.BoolVar(&opts.Tags, "tags", false, "Push all tags")
	return cmd
}

func (a *app) checkoutCmd() *cobra.Command {
	var opts git.CheckoutOptions
	cmd := &cobra.Command{
		Use:   "checkout <ref>",
		Short: "Switch branches or restore the working tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.client.Checkout(cmd.Context(), a.dir, args[0], opts, a.printer)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&opts.CreateBranch, "create", "b", false, "Create the branch before switching to it")
	f.BoolVarP(&opts.Force, "force", "f", false, "Discard local changes")
	return cmd
}

func (a *app) mergeCmd() *cobra.Command {
	var opts git.MergeOptions
	cmd := &cobra.Command{
		Use:   "merge <ref>",
		Short: "Join another history into the current branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.Merge(cmd.Context(), a.dir, args[0], opts, a.printer)
			if err != nil {
				return err
			}
			a.printer.result(describeMerge(res), res)
			return nil
		},
	}
	f := cmd.Flags()
	f.BoolVar(&opts.NoFF, "no-ff", false, "Always create a merge commit")
	f.BoolVar(&opts.FFOnly, "ff-only", false, "Refuse to create a merge commit")
	f.StringVarP(&opts.Message, "message", "m", "", "Merge commit message")
	return cmd
}

func (a *app) rebaseCmd() *cobra.Command {
	var opts git.RebaseOptions
	cmd := &cobra.Command{
		Use:   "rebase <upstream>",
		Short: "Reapply commits on top of another base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.client.Rebase(cmd.Context(), a.dir, args[0], opts, a.printer)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.Onto, "onto", "", "Starting point for the new commits")
	f.BoolVar(&opts.Autostash, "autostash", false, "Stash local changes around the rebase")
	return cmd
}

func (a *app) revertCmd() *cobra.Command {
	var opts git.RevertOptions
	cmd := &cobra.Command{
		Use:   "revert <commit>...",
		Short: "Revert existing commits",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.client.Revert(cmd.Context(), a.dir, args, opts, a.printer)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&opts.NoCommit, "no-commit", "n", false, "Apply the reverse changes without committing")
	f.IntVarP(&opts.Mainline, "mainline", "m", 0, "Parent number of a merge commit to revert against")
	return cmd
}

func (a *app) stashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stash",
		Short: "Stash or restore local changes",
	}

	var push git.StashPushOptions
	pushCmd := &cobra.Command{
		Use:   "push",
		Short: "Save local changes and revert the working tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			saved, err := a.client.StashPush(cmd.Context(), a.dir, push, a.printer)
			if err != nil {
				return err
			}
			text := "No local changes to save"
			if saved {
				text = "Saved working directory and index state"
			}
			a.printer.result(text, map[string]bool{"saved": saved})
			return nil
		},
	}
	pf := pushCmd.Flags()
	pf.StringVarP(&push.Message, "message", "m", "", "Stash description")
	pf.BoolVarP(&push.IncludeUntracked, "include-untracked", "u", false, "Stash untracked files too")
	pf.BoolVarP(&push.KeepIndex, "keep-index", "k", false, "Leave staged changes in place")

	var apply git.StashApplyOptions
	applyCmd := &cobra.Command{
		Use:   "apply [stash]",
		Short: "Apply a stash on top of the working tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				apply.Stash = args[0]
			}
			res, err := a.client.StashApply(cmd.Context(), a.dir, apply, a.printer)
			if err != nil {
				return err
			}
			text := fmt.Sprintf("%d files updated", len(res.Updates))
			if res.Conflicts > 0 {
				text += fmt.Sprintf(", %d conflicts", res.Conflicts)
			}
			a.printer.result(text, res)
			return nil
		},
	}
	af := applyCmd.Flags()
	af.BoolVar(&apply.Index, "index", false, "Restore the index as well")
	af.BoolVar(&apply.Pop, "pop", false, "Drop the stash after a clean apply")

	cmd.AddCommand(pushCmd, applyCmd)
	return cmd
}

func (a *app) submoduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submodule",
		Short: "Manage submodules",
	}

	var opts git.SubmoduleUpdateOptions
	update := &cobra.Command{
		Use:   "update [path...]",
		Short: "Check out the commits recorded for submodules",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return a.client.SubmoduleUpdate(cmd.Context(), a.dir, opts, a.printer)
		},
	}
	f := update.Flags()
	f.BoolVar(&opts.Init, "init", false, "Initialize submodules that are not yet initialized")
	f.BoolVar(&opts.Recursive, "recursive", false, "Recurse into nested submodules")
	f.BoolVar(&opts.Remote, "remote", false, "Use the remote-tracking branch instead of the recorded commit")
	f.BoolVar(&opts.Rebase, "rebase", false, "Rebase the current branch onto the commit")
	f.BoolVar(&opts.Merge, "merge", false, "Merge the commit into the current branch")

	cmd.AddCommand(update)
	return cmd
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the git version in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := a.client.Version(cmd.Context())
			if err != nil {
				return err
			}
			a.printer.result("git version "+v.String(), map[string]string{
				"git":    v.String(),
				"gitcli": version,
			})
			return nil
		},
	}
}

// describeMerge summarizes a pull or merge result for text output.
func describeMerge(res git.MergeResult) string {
	var b strings.Builder
	b.WriteString(res.Result.String())
	if res.Rebased {
		b.WriteString(" (rebase)")
	}
	for _, c := range res.Conflicts {
		fmt.Fprintf(&b, "\n  %s: %s", c.Kind, c.Path)
	}
	return b.String()
}
