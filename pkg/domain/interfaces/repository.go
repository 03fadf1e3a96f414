package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Meeting() MeetingRepository
	User() UserRepository
	Task() TaskRepository
	Attendance() AttendanceRepository

	Close() error
}
