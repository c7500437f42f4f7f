// Package testutil provides test helpers shared by relnotes packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// GitRepo builds a repository in a temp dir with go-git, so tests do not
// need a git binary. Commit times advance one minute per commit.
type GitRepo struct {
	t    *testing.T
	Dir  string
	Repo *git.Repository
	n    int
}

// NewGitRepo initializes an empty repository in a new temp dir.
func NewGitRepo(t *testing.T) *GitRepo {
	t.Helper()
	return InitGitRepo(t, t.TempDir())
}

// InitGitRepo initializes an empty repository in dir.
func InitGitRepo(t *testing.T, dir string) *GitRepo {
	t.Helper()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	return &GitRepo{t: t, Dir: dir, Repo: repo}
}

func (r *GitRepo) signature() *object.Signature {
	return &object.Signature{
		Name:  "Test User",
		Email: "test@test.com",
		When:  time.Date(2025, 1, 1, 12, r.n, 0, 0, time.UTC),
	}
}

// Commit records a change to a tracked file with message and returns the
// new commit hash.
func (r *GitRepo) Commit(message string) plumbing.Hash {
	r.t.Helper()
	r.n++

	wt, err := r.Repo.Worktree()
	require.NoError(r.t, err)

	require.NoError(r.t, os.WriteFile(filepath.Join(r.Dir, "notes.txt"), []byte(message), 0o644))
	_, err = wt.Add("notes.txt")
	require.NoError(r.t, err)

	hash, err := wt.Commit(message, &git.CommitOptions{Author: r.signature()})
	require.NoError(r.t, err)
	return hash
}

// Tag creates a lightweight tag, or an annotated one when annotated is true.
func (r *GitRepo) Tag(name string, hash plumbing.Hash, annotated bool) {
	r.t.Helper()
	var opts *git.CreateTagOptions
	if annotated {
		opts = &git.CreateTagOptions{Tagger: r.signature(), Message: "Release " + name}
	}
	_, err := r.Repo.CreateTag(name, hash, opts)
	require.NoError(r.t, err)
}
