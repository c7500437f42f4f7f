package changelog

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/dprint/relnotes/internal/git"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/sirupsen/logrus"
)

// noNotableChanges is the changelog text when the range holds no feature or
// fix commits.
const noNotableChanges = "Internal changes only."

var conventionalSubject = regexp.MustCompile(`^([A-Za-z]+)(\([^)]*\))?(!)?:\s*(.+)$`)

// GitProvider builds the changelog from commits between release tags.
type GitProvider struct {
	// RepoPath is any path inside the repository; empty means the working
	// directory.
	RepoPath string
	// TagPrefix is stripped from tag names before parsing them as versions.
	TagPrefix string
	Log       logrus.FieldLogger
}

// FetchChangelog implements Provider. When versionTo is already tagged the
// range ends at that tag, otherwise at HEAD. The range starts after the
// previous release tag.
func (p *GitProvider) FetchChangelog(ctx context.Context, versionTo string) (string, error) {
	log := fieldLogger(p.Log)

	repo, err := git.Open(p.RepoPath)
	if err != nil {
		return "", err
	}

	tags, err := repo.SemverTags(p.TagPrefix)
	if err != nil {
		return "", err
	}

	target, start := selectRange(tags, versionTo, p.TagPrefix)

	var to plumbing.Hash
	if target != nil {
		to = target.Hash
	} else {
		if to, err = repo.Head(); err != nil {
			return "", err
		}
	}

	from := plumbing.ZeroHash
	if start != nil {
		from = start.Hash
	}

	log.WithFields(logrus.Fields{
		"from": tagName(start),
		"to":   tagName(target),
	}).Debug("Collecting commits")

	commits, err := repo.CommitsBetween(ctx, from, to)
	if err != nil {
		return "", fmt.Errorf("reading commit history: %w", err)
	}

	return formatCommits(commits), nil
}

// selectRange finds the tag for versionTo (nil when not yet tagged) and the
// release tag before it (nil when there is none). tags must be sorted lowest
// version first.
func selectRange(tags []git.Tag, versionTo, prefix string) (target, start *git.Tag) {
	raw := strings.TrimPrefix(strings.TrimSpace(versionTo), prefix)
	want, err := semver.NewVersion(raw)

	for i := range tags {
		t := &tags[i]
		if t.Name == versionTo || t.Name == prefix+raw || (err == nil && t.Version.Equal(want)) {
			target = t
		}
	}

	for i := len(tags) - 1; i >= 0; i-- {
		t := &tags[i]
		if t == target {
			continue
		}
		if err == nil && !t.Version.LessThan(want) {
			continue
		}
		if err != nil && target != nil && !t.Version.LessThan(target.Version) {
			continue
		}
		start = t
		break
	}
	return target, start
}

type noteGroup struct {
	title string
	lines []string
}

// formatCommits groups conventional commits into Features and Fixes.
func formatCommits(commits []git.Commit) string {
	features := noteGroup{title: "Features"}
	fixes := noteGroup{title: "Fixes"}

	for _, c := range commits {
		if c.IsMerge {
			continue
		}
		m := conventionalSubject.FindStringSubmatch(c.Subject)
		if m == nil {
			continue
		}

		line := fmt.Sprintf("* %s (%s)", m[4], c.ShortHash)
		if m[3] == "!" || strings.Contains(c.Body, "BREAKING CHANGE") {
			line = fmt.Sprintf("* **Breaking:** %s (%s)", m[4], c.ShortHash)
		}

		switch strings.ToLower(m[1]) {
		case "feat":
			features.lines = append(features.lines, line)
		case "fix":
			fixes.lines = append(fixes.lines, line)
		}
	}

	var sections []string
	for _, g := range []noteGroup{features, fixes} {
		if len(g.lines) == 0 {
			continue
		}
		sections = append(sections, "### "+g.title+"\n\n"+strings.Join(g.lines, "\n"))
	}
	if len(sections) == 0 {
		return noNotableChanges
	}
	return strings.Join(sections, "\n\n")
}

func tagName(t *git.Tag) string {
	if t == nil {
		return ""
	}
	return t.Name
}
