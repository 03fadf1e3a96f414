package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/atrium-hq/atrium/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// Firestore is the Cloud Firestore repository backend
type Firestore struct {
	client     *firestore.Client
	meeting    *meetingRepository
	user       *userRepository
	task       *taskRepository
	attendance *attendanceRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix prefixes all collection names, letting multiple
// deployments share one database
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.meeting.collectionPrefix = prefix
		f.user.collectionPrefix = prefix
		f.task.collectionPrefix = prefix
		f.attendance.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID), goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:     client,
		meeting:    newMeetingRepository(client),
		user:       newUserRepository(client),
		task:       newTaskRepository(client),
		attendance: newAttendanceRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Meeting() interfaces.MeetingRepository {
	return f.meeting
}

func (f *Firestore) User() interfaces.UserRepository {
	return f.user
}

func (f *Firestore) Task() interfaces.TaskRepository {
	return f.task
}

func (f *Firestore) Attendance() interfaces.AttendanceRepository {
	return f.attendance
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
