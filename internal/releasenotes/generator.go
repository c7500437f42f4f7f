// Package releasenotes assembles the release notes document published with
// each plugin release: the changelog for the version followed by fixed
// installation instructions.
package releasenotes

import (
	"context"
	"fmt"
	"strings"

	"github.com/dprint/relnotes/internal/changelog"
	"github.com/sirupsen/logrus"
)

// Generator renders release notes from a changelog provider.
type Generator struct {
	provider changelog.Provider
	log      logrus.FieldLogger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for progress messages.
func WithLogger(log logrus.FieldLogger) Option {
	return func(g *Generator) {
		g.log = log
	}
}

// New returns a Generator that reads changelogs from provider.
func New(provider changelog.Provider, opts ...Option) *Generator {
	g := &Generator{provider: provider}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		g.log = l
	}
	return g
}

// Generate returns the release notes document for version. The version is
// passed to the provider verbatim. A provider failure is returned as a
// *ProviderError and no document is produced.
func (g *Generator) Generate(ctx context.Context, version string) (string, error) {
	if strings.TrimSpace(version) == "" {
		return "", &UsageError{Message: "version is required"}
	}

	log := g.log.WithField("version", version)
	log.Debug("Fetching changelog")

	text, err := g.provider.FetchChangelog(ctx, version)
	if err != nil {
		return "", &ProviderError{Version: version, Err: err}
	}

	log.WithField("bytes", len(text)).Debug("Rendering release notes")

	var b strings.Builder
	if err := document.Execute(&b, templateData{Changelog: text}); err != nil {
		return "", fmt.Errorf("rendering release notes: %w", err)
	}
	return b.String(), nil
}
