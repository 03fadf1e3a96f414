package memory

import (
	"github.com/atrium-hq/atrium/pkg/domain/interfaces"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

// Memory is the in-memory repository backend, intended for development
// and tests
type Memory struct {
	meeting    *meetingRepository
	user       *userRepository
	task       *taskRepository
	attendance *attendanceRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		meeting:    newMeetingRepository(),
		user:       newUserRepository(),
		task:       newTaskRepository(),
		attendance: newAttendanceRepository(),
	}
}

func (m *Memory) Meeting() interfaces.MeetingRepository {
	return m.meeting
}

func (m *Memory) User() interfaces.UserRepository {
	return m.user
}

func (m *Memory) Task() interfaces.TaskRepository {
	return m.task
}

func (m *Memory) Attendance() interfaces.AttendanceRepository {
	return m.attendance
}

func (m *Memory) Close() error {
	return nil
}
