package changelog

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// FileProvider reads a CHANGELOG.yaml from disk.
type FileProvider struct {
	Path string
	Log  logrus.FieldLogger
}

// FetchChangelog implements Provider. The context is only checked before the
// read.
func (p *FileProvider) FetchChangelog(ctx context.Context, versionTo string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fieldLogger(p.Log).WithField("path", p.Path).Debug("Loading changelog file")

	log, err := Load(p.Path)
	if err != nil {
		return "", fmt.Errorf("loading %s: %w", p.Path, err)
	}
	return renderFrom(log, versionTo)
}
