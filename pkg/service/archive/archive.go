package archive

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"

	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/atrium-hq/atrium/pkg/utils/logging"
)

// Service persists finalized minutes-of-meeting documents to a Cloud
// Storage bucket. Archiving is best-effort and happens off the meeting
// end path.
type Service struct {
	client *storage.Client
	bucket string
	prefix string
}

// Option is a functional option for Service configuration
type Option func(*Service)

// WithPrefix sets an object key prefix inside the bucket
func WithPrefix(prefix string) Option {
	return func(s *Service) {
		s.prefix = prefix
	}
}

// New creates an archive service writing to the given bucket
func New(ctx context.Context, bucket string, opts ...Option) (*Service, error) {
	if bucket == "" {
		return nil, goerr.New("archive bucket name is required")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client")
	}

	s := &Service{
		client: client,
		bucket: bucket,
		prefix: "minutes",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// objectKey builds the object path for a minutes document
func (s *Service) objectKey(mom *model.MinutesOfMeeting) string {
	return fmt.Sprintf("%s/%s/%s.json", s.prefix, mom.Date.UTC().Format("2006/01/02"), mom.MeetingID)
}

// StoreMinutes writes the minutes document as JSON to the bucket
func (s *Service) StoreMinutes(ctx context.Context, mom *model.MinutesOfMeeting) error {
	key := s.objectKey(mom)

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = "application/json"

	if err := json.NewEncoder(w).Encode(mom); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to encode minutes",
			goerr.V("bucket", s.bucket),
			goerr.V("key", key),
		)
	}

	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to write minutes object",
			goerr.V("bucket", s.bucket),
			goerr.V("key", key),
		)
	}

	logging.From(ctx).Info("minutes archived", "bucket", s.bucket, "key", key)
	return nil
}

// Close releases the storage client
func (s *Service) Close() error {
	return s.client.Close()
}
