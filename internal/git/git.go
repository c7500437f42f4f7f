// Package git reads release history from a Git repository: semantic version
// tags and the commits between two points. It uses go-git so no git binary is
// required.
package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// debugLogger is a function that logs debug messages when debug mode is enabled.
// By default, it's a no-op.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Tag is a tag whose name parses as a semantic version.
type Tag struct {
	Name    string
	Version *semver.Version
	// Hash is the commit the tag points at (annotated tags are peeled).
	Hash plumbing.Hash
}

// Commit is the part of a commit that release notes care about.
type Commit struct {
	Hash      string
	ShortHash string
	Subject   string
	Body      string
	Author    string
	When      time.Time
	IsMerge   bool
}

// Repository wraps an opened go-git repository.
type Repository struct {
	repo *git.Repository
	path string
}

// Open opens the repository containing path, walking up the directory tree
// to find the .git directory. An empty path means the working directory.
func Open(path string) (*Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return &Repository{repo: repo, path: path}, nil
}

// Head returns the commit hash HEAD points at.
func (r *Repository) Head() (plumbing.Hash, error) {
	head, err := r.repo.Head()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("getting HEAD reference: %w", err)
	}
	return head.Hash(), nil
}

// SemverTags returns the tags whose name, after removing prefix, parses as a
// semantic version. The result is sorted by version, lowest first.
func (r *Repository) SemverTags(prefix string) ([]Tag, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer iter.Close()

	var tags []Tag
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		if !strings.HasPrefix(name, prefix) {
			return nil
		}
		v, perr := semver.NewVersion(strings.TrimPrefix(name, prefix))
		if perr != nil {
			logDebug("[git] skipping non-semver tag %s", name)
			return nil
		}
		hash, perr := r.peel(ref)
		if perr != nil {
			return fmt.Errorf("resolving tag %s: %w", name, perr)
		}
		tags = append(tags, Tag{Name: name, Version: v, Hash: hash})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].Version.LessThan(tags[j].Version)
	})
	logDebug("[git] found %d semver tags", len(tags))
	return tags, nil
}

// peel resolves annotated tags to the commit they reference.
func (r *Repository) peel(ref *plumbing.Reference) (plumbing.Hash, error) {
	obj, err := r.repo.TagObject(ref.Hash())
	switch {
	case err == nil:
		c, cerr := obj.Commit()
		if cerr != nil {
			return plumbing.ZeroHash, cerr
		}
		return c.Hash, nil
	case errors.Is(err, plumbing.ErrObjectNotFound):
		return ref.Hash(), nil
	default:
		return plumbing.ZeroHash, err
	}
}

// CommitsBetween returns the commits reachable from to but not from from,
// newest first. A zero from returns the full history of to.
func (r *Repository) CommitsBetween(ctx context.Context, from, to plumbing.Hash) ([]Commit, error) {
	exclude := map[plumbing.Hash]bool{}
	if !from.IsZero() {
		if err := r.walk(ctx, from, func(c *object.Commit) {
			exclude[c.Hash] = true
		}); err != nil {
			return nil, fmt.Errorf("walking history of %s: %w", from.String()[:7], err)
		}
	}

	var commits []Commit
	err := r.walk(ctx, to, func(c *object.Commit) {
		if exclude[c.Hash] {
			return
		}
		commits = append(commits, newCommit(c))
	})
	if err != nil {
		return nil, fmt.Errorf("walking history of %s: %w", to.String()[:7], err)
	}

	logDebug("[git] %d commits between %s and %s", len(commits), from, to)
	return commits, nil
}

func (r *Repository) walk(ctx context.Context, from plumbing.Hash, fn func(*object.Commit)) error {
	iter, err := r.repo.Log(&git.LogOptions{From: from, Order: git.LogOrderCommitterTime})
	if err != nil {
		return err
	}
	defer iter.Close()

	return iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(c)
		return nil
	})
}

func newCommit(c *object.Commit) Commit {
	subject, body, _ := strings.Cut(strings.TrimSpace(c.Message), "\n")
	hash := c.Hash.String()
	return Commit{
		Hash:      hash,
		ShortHash: hash[:7],
		Subject:   strings.TrimSpace(subject),
		Body:      strings.TrimSpace(body),
		Author:    c.Author.Name,
		When:      c.Committer.When,
		IsMerge:   c.NumParents() > 1,
	}
}
