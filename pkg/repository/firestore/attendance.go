package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type attendanceRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAttendanceRepository(client *firestore.Client) *attendanceRepository {
	return &attendanceRepository{client: client}
}

func (r *attendanceRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_attendance"
	}
	return "attendance"
}

func (r *attendanceRepository) Create(ctx context.Context, rec *model.AttendanceRecord) (*model.AttendanceRecord, error) {
	now := time.Now().UTC()
	created := *rec
	if created.ID == "" {
		created.ID = model.NewAttendanceID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	if _, err := r.client.Collection(r.collection()).Doc(string(created.ID)).Create(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create attendance record", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *attendanceRepository) Get(ctx context.Context, id model.AttendanceID) (*model.AttendanceRecord, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "attendance record not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get attendance record", goerr.V("id", id))
	}

	var rec model.AttendanceRecord
	if err := docSnap.DataTo(&rec); err != nil {
		return nil, goerr.Wrap(err, "failed to decode attendance record", goerr.V("id", id))
	}

	return &rec, nil
}

func (r *attendanceRepository) listQuery(ctx context.Context, query firestore.Query) ([]*model.AttendanceRecord, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var records []*model.AttendanceRecord
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate attendance records")
		}

		var rec model.AttendanceRecord
		if err := docSnap.DataTo(&rec); err != nil {
			return nil, goerr.Wrap(err, "failed to decode attendance record", goerr.V("doc_id", docSnap.Ref.ID))
		}

		records = append(records, &rec)
	}

	return records, nil
}

func (r *attendanceRepository) List(ctx context.Context) ([]*model.AttendanceRecord, error) {
	return r.listQuery(ctx, r.client.Collection(r.collection()).Query)
}

func (r *attendanceRepository) ListByUser(ctx context.Context, userID model.UserID) ([]*model.AttendanceRecord, error) {
	query := r.client.Collection(r.collection()).Where("user_id", "==", string(userID))
	return r.listQuery(ctx, query)
}

func (r *attendanceRepository) Update(ctx context.Context, rec *model.AttendanceRecord) (*model.AttendanceRecord, error) {
	docRef := r.client.Collection(r.collection()).Doc(string(rec.ID))

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "attendance record not found", goerr.V("id", rec.ID))
		}
		return nil, goerr.Wrap(err, "failed to get attendance record", goerr.V("id", rec.ID))
	}

	var existing model.AttendanceRecord
	if err := docSnap.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode attendance record", goerr.V("id", rec.ID))
	}

	updated := *rec
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update attendance record", goerr.V("id", rec.ID))
	}

	return &updated, nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id model.AttendanceID) error {
	docRef := r.client.Collection(r.collection()).Doc(string(id))

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "attendance record not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get attendance record", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete attendance record", goerr.V("id", id))
	}

	return nil
}
