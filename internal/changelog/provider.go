package changelog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// Provider names accepted by NewProvider.
const (
	ProviderGit    = "git"
	ProviderRemote = "remote"
	ProviderFile   = "file"
)

// ErrUnknownProvider is returned by NewProvider for an unrecognized name.
var ErrUnknownProvider = errors.New("unknown changelog provider")

// Provider produces Markdown changelog text for a version.
type Provider interface {
	FetchChangelog(ctx context.Context, versionTo string) (string, error)
}

// ProviderFunc adapts an ordinary function to the Provider interface.
type ProviderFunc func(ctx context.Context, versionTo string) (string, error)

// FetchChangelog calls f(ctx, versionTo).
func (f ProviderFunc) FetchChangelog(ctx context.Context, versionTo string) (string, error) {
	return f(ctx, versionTo)
}

// ProviderOptions selects and configures a Provider.
type ProviderOptions struct {
	// Name is one of ProviderGit, ProviderRemote or ProviderFile.
	// Empty selects ProviderGit.
	Name string

	URL        string
	HTTPClient *http.Client

	Path string

	RepoPath  string
	TagPrefix string

	Log logrus.FieldLogger
}

// ProviderNames lists the accepted provider names.
func ProviderNames() []string {
	return []string{ProviderGit, ProviderRemote, ProviderFile}
}

// NewProvider builds the provider named in opts.
func NewProvider(opts ProviderOptions) (Provider, error) {
	log := fieldLogger(opts.Log)

	switch strings.ToLower(opts.Name) {
	case "", ProviderGit:
		return &GitProvider{RepoPath: opts.RepoPath, TagPrefix: opts.TagPrefix, Log: log}, nil
	case ProviderRemote:
		if opts.URL == "" {
			return nil, fmt.Errorf("remote provider requires a changelog URL")
		}
		return &RemoteProvider{URL: opts.URL, Client: opts.HTTPClient, Log: log}, nil
	case ProviderFile:
		if opts.Path == "" {
			return nil, fmt.Errorf("file provider requires a changelog path")
		}
		return &FileProvider{Path: opts.Path, Log: log}, nil
	default:
		return nil, fmt.Errorf("%w %q (available: %s)",
			ErrUnknownProvider, opts.Name, strings.Join(ProviderNames(), ", "))
	}
}

// renderFrom selects versionTo from a parsed changelog and renders it.
func renderFrom(log *Changelog, versionTo string) (string, error) {
	v, err := log.GetVersion(versionTo)
	if err != nil {
		return "", err
	}
	return RenderVersionString(v)
}

func fieldLogger(l logrus.FieldLogger) logrus.FieldLogger {
	if l != nil {
		return l
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return discard
}
