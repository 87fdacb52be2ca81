// Package testutil creates on-disk repositories for tests that run the git
// binary. Repositories are built with go-git so fixtures do not depend on
// the git CLI under test.
package testutil

import (
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// Test user information used for fixture commits.
const (
	// TestAuthor is the author name for fixture commits.
	TestAuthor = "Test User"

	// TestEmail is the author email for fixture commits.
	TestEmail = "test@example.com"
)

// TestBranchMain is the default branch of every fixture repository.
const TestBranchMain = "main"

// Repo is a fixture repository on the OS filesystem.
type Repo struct {
	// Dir is the working tree, or the repository itself when bare.
	Dir string

	// FS is rooted at Dir.
	FS billy.Filesystem

	// Repo is the go-git handle.
	Repo *gogit.Repository
}

// RequireGit skips the test if the git CLI is not available.
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git CLI not available, skipping test")
	}
}

// NewRepo initializes an empty repository on branch main in a temporary
// directory.
//
// Example:
//
//	r := testutil.NewRepo(t)
//	r.Commit(t, "README.md", "# Test", "Initial commit")
func NewRepo(t *testing.T) *Repo {
	t.Helper()
	return initRepo(t, filepath.Join(t.TempDir(), "repo"), false)
}

// NewBareRepo initializes an empty bare repository, typically used as a
// remote.
func NewBareRepo(t *testing.T) *Repo {
	t.Helper()
	return initRepo(t, filepath.Join(t.TempDir(), "remote.git"), true)
}

func initRepo(t *testing.T, dir string, bare bool) *Repo {
	t.Helper()

	repo, err := gogit.PlainInitWithOptions(dir, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{DefaultBranch: plumbing.NewBranchReferenceName(TestBranchMain)},
		Bare:        bare,
	})
	require.NoError(t, err)

	return &Repo{Dir: dir, FS: osfs.New(dir), Repo: repo}
}

// WriteFile writes content to path inside the working tree, creating parent
// directories.
func (r *Repo) WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, util.WriteFile(r.FS, path, []byte(content), 0o644))
}

// Commit writes path and commits it, returning the commit hash.
func (r *Repo) Commit(t *testing.T, path, content, message string) string {
	t.Helper()

	r.WriteFile(t, path, content)

	wt, err := r.Repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(path)
	require.NoError(t, err)

	hash, err := wt.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  TestAuthor,
			Email: TestEmail,
			When:  time.Now(),
		},
	})
	require.NoError(t, err)
	return hash.String()
}

// Branch creates branch at HEAD without checking it out.
func (r *Repo) Branch(t *testing.T, name string) {
	t.Helper()

	head, err := r.Repo.Head()
	require.NoError(t, err)
	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(name), head.Hash())
	require.NoError(t, r.Repo.Storer.SetReference(ref))
}

// Checkout switches the working tree to an existing branch.
func (r *Repo) Checkout(t *testing.T, name string) {
	t.Helper()

	wt, err := r.Repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
	}))
}

// AddRemote configures a remote named name pointing at url.
func (r *Repo) AddRemote(t *testing.T, name, url string) {
	t.Helper()

	_, err := r.Repo.CreateRemote(&config.RemoteConfig{
		Name:  name,
		URLs:  []string{url},
		Fetch: []config.RefSpec{config.RefSpec("+refs/heads/*:refs/remotes/" + name + "/*")},
	})
	require.NoError(t, err)
}

// SetUpstream makes branch track remote's branch of the same name.
func (r *Repo) SetUpstream(t *testing.T, branch, remote string) {
	t.Helper()

	require.NoError(t, r.Repo.CreateBranch(&config.Branch{
		Name:   branch,
		Remote: remote,
		Merge:  plumbing.NewBranchReferenceName(branch),
	}))
}
