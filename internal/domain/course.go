package domain

import "context"

// Course is a catalog entry. Courses are immutable after seeding; there are
// no update or delete operations.
type Course struct {
	ID          int64
	Title       string
	Description string
	Category    string
	ImageURL    string
	Rating      int
	ReviewCount int
	Difficulty  string
}

// CourseRepository defines the interface for catalog persistence.
// List results are stable in insertion order.
type CourseRepository interface {
	CreateCourse(ctx context.Context, course *Course) (*Course, error)
	GetCourseByID(ctx context.Context, id int64) (*Course, error)
	ListCourses(ctx context.Context) ([]*Course, error)
	ListCoursesByCategory(ctx context.Context, category string) ([]*Course, error)
}
