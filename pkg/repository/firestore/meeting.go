package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/atrium-hq/atrium/pkg/domain/interfaces"
	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type meetingRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newMeetingRepository(client *firestore.Client) *meetingRepository {
	return &meetingRepository{client: client}
}

func (r *meetingRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_meetings"
	}
	return "meetings"
}

func (r *meetingRepository) Create(ctx context.Context, m *model.Meeting) (*model.Meeting, error) {
	now := time.Now().UTC()
	created := *m
	if created.ID == "" {
		created.ID = model.NewMeetingID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	if _, err := r.client.Collection(r.collection()).Doc(created.ID.String()).Create(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create meeting", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *meetingRepository) Get(ctx context.Context, id model.MeetingID) (*model.Meeting, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "meeting not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get meeting", goerr.V("id", id))
	}

	var m model.Meeting
	if err := docSnap.DataTo(&m); err != nil {
		return nil, goerr.Wrap(err, "failed to decode meeting", goerr.V("id", id))
	}

	return &m, nil
}

func (r *meetingRepository) List(ctx context.Context, opts ...interfaces.ListMeetingOption) ([]*model.Meeting, error) {
	var filter interfaces.ListMeetingFilter
	for _, opt := range opts {
		opt(&filter)
	}

	query := r.client.Collection(r.collection()).Query
	if filter.Status != "" {
		query = query.Where("status", "==", filter.Status.String())
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var meetings []*model.Meeting
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate meetings")
		}

		var m model.Meeting
		if err := docSnap.DataTo(&m); err != nil {
			return nil, goerr.Wrap(err, "failed to decode meeting", goerr.V("doc_id", docSnap.Ref.ID))
		}

		meetings = append(meetings, &m)
	}

	return meetings, nil
}

func (r *meetingRepository) Update(ctx context.Context, m *model.Meeting) (*model.Meeting, error) {
	docRef := r.client.Collection(r.collection()).Doc(m.ID.String())

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "meeting not found", goerr.V("id", m.ID))
		}
		return nil, goerr.Wrap(err, "failed to get meeting", goerr.V("id", m.ID))
	}

	var existing model.Meeting
	if err := docSnap.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode meeting", goerr.V("id", m.ID))
	}

	updated := *m
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	// Whole-document set: status changes and summary/minutes attachment
	// land as one atomic write
	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update meeting", goerr.V("id", m.ID))
	}

	return &updated, nil
}

func (r *meetingRepository) Delete(ctx context.Context, id model.MeetingID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "meeting not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get meeting", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete meeting", goerr.V("id", id))
	}

	return nil
}
