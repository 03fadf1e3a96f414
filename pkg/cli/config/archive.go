package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/atrium-hq/atrium/pkg/service/archive"
)

// Archive holds CLI flags for the minutes archive
type Archive struct {
	bucket string
	prefix string
}

// Flags returns CLI flags for archive configuration
func (a *Archive) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "archive-bucket",
			Usage:       "GCS bucket for archiving meeting minutes (disabled when empty)",
			Sources:     cli.EnvVars("ATRIUM_ARCHIVE_BUCKET"),
			Destination: &a.bucket,
		},
		&cli.StringFlag{
			Name:        "archive-prefix",
			Usage:       "Object key prefix inside the archive bucket",
			Value:       "minutes",
			Sources:     cli.EnvVars("ATRIUM_ARCHIVE_PREFIX"),
			Destination: &a.prefix,
		},
	}
}

// Configure creates the archive service when a bucket is configured.
// Returns nil when archiving is disabled.
func (a *Archive) Configure(ctx context.Context) (*archive.Service, error) {
	if a.bucket == "" {
		return nil, nil
	}

	svc, err := archive.New(ctx, a.bucket, archive.WithPrefix(a.prefix))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create archive service", goerr.V("bucket", a.bucket))
	}
	return svc, nil
}
