package domain

import "context"

// Enrollment links a user to a course with independent progress.
// IsCompleted is derived: it must equal (Progress >= 100) after every
// progress update and is never set independently.
type Enrollment struct {
	ID          int64
	UserID      int64
	CourseID    int64
	Progress    int
	IsCompleted bool
}

// NewEnrollment creates a fresh enrollment at zero progress.
func NewEnrollment(userID, courseID int64) *Enrollment {
	return &Enrollment{
		UserID:      userID,
		CourseID:    courseID,
		Progress:    0,
		IsCompleted: false,
	}
}

// SetProgress is the single mutation path for progress so the completion
// flag cannot drift from it.
func (e *Enrollment) SetProgress(progress int) {
	e.Progress = progress
	e.IsCompleted = progress >= 100
}

// EnrollmentRepository defines the interface for enrollment persistence.
// Duplicate (user, course) pairs are permitted; no uniqueness is enforced.
type EnrollmentRepository interface {
	CreateEnrollment(ctx context.Context, enrollment *Enrollment) (*Enrollment, error)
	GetEnrollmentByID(ctx context.Context, id int64) (*Enrollment, error)
	ListEnrollmentsByUser(ctx context.Context, userID int64) ([]*Enrollment, error)
	UpdateEnrollment(ctx context.Context, enrollment *Enrollment) error
}

// ActivityRecorder is notified whenever a user performs a streak-qualifying
// action. The enrollment tracker emits through this interface so alternate
// activity sources (quizzes, logins) can feed the same streak state without
// the tracker knowing about streaks directly.
type ActivityRecorder interface {
	RecordActivity(ctx context.Context, userID int64) (*LearningStreak, error)
}
