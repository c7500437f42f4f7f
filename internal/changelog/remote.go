package changelog

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

// RemoteProvider fetches a CHANGELOG.yaml over HTTP and renders the requested
// version.
type RemoteProvider struct {
	URL string
	// Client defaults to http.DefaultClient.
	Client *http.Client
	Log    logrus.FieldLogger
}

// FetchChangelog implements Provider.
func (p *RemoteProvider) FetchChangelog(ctx context.Context, versionTo string) (string, error) {
	log, err := p.fetch(ctx)
	if err != nil {
		return "", fmt.Errorf("fetching remote changelog: %w", err)
	}
	return renderFrom(log, versionTo)
}

func (p *RemoteProvider) fetch(ctx context.Context) (*Changelog, error) {
	fieldLogger(p.Log).WithField("url", p.URL).Debug("Fetching remote changelog")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return Parse(resp.Body)
}
