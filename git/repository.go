package git

import (
	stderrors "errors"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/jmgilman/go/gitcli/errors"
	"github.com/jmgilman/go/gitcli/failure"
)

// Repository is a read-only view of a local repository, used to resolve
// defaults before running git.
type Repository struct {
	root string
	repo *gogit.Repository
}

// Upstream is the remote-tracking configuration of a branch.
type Upstream struct {
	// Remote is the configured remote name, e.g. "origin".
	Remote string

	// Merge is the remote ref the branch tracks, e.g. "refs/heads/main".
	Merge plumbing.ReferenceName
}

// Branch returns the short name of the tracked remote branch.
func (u Upstream) Branch() string {
	return u.Merge.Short()
}

// Open opens the repository containing path. Parent directories are searched
// for a .git directory, the same way git itself does.
//
// Returns failure.NotRepositoryError when no repository is found.
//
// Example:
//
//	repo, err := git.Open("/path/to/repo/sub/dir")
//	fmt.Println(repo.Root()) // /path/to/repo
func Open(path string) (*Repository, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "failed to resolve path")
	}

	repo, err := gogit.PlainOpenWithOptions(abs, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, wrapError(err, "failed to open repository")
	}

	root := abs
	if wt, err := repo.Worktree(); err == nil {
		root = wt.Filesystem.Root()
	}

	return &Repository{root: root, repo: repo}, nil
}

// Root returns the top-level directory of the working tree. For bare
// repositories it returns the path that was opened.
func (r *Repository) Root() string {
	return r.root
}

// Underlying returns the go-git repository for anything this view does not
// cover.
func (r *Repository) Underlying() *gogit.Repository {
	return r.repo
}

// CurrentBranch returns the short name of the checked out branch.
//
// Returns failure.NoCommitsError on an unborn branch and an error with
// CodeInvalidState when HEAD is detached.
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		if stderrors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", failure.NewNoCommitsError()
		}
		return "", wrapError(err, "failed to resolve HEAD")
	}
	if !head.Name().IsBranch() {
		return "", errors.New(errors.CodeInvalidState, "HEAD is detached")
	}
	return head.Name().Short(), nil
}

// Upstream returns the upstream configuration of branch.
//
// Returns failure.NoUpstreamError when the branch does not track a remote.
func (r *Repository) Upstream(branch string) (Upstream, error) {
	cfg, err := r.repo.Config()
	if err != nil {
		return Upstream{}, wrapError(err, "failed to read repository config")
	}

	b, ok := cfg.Branches[branch]
	if !ok || b.Remote == "" || b.Merge == "" {
		return Upstream{}, failure.NewNoUpstreamError(
			"There is no tracking information for the current branch '" + branch + "'.")
	}
	return Upstream{Remote: b.Remote, Merge: b.Merge}, nil
}

// HasRemote reports whether a remote with the given name is configured.
func (r *Repository) HasRemote(name string) bool {
	_, err := r.repo.Remote(name)
	return err == nil
}
