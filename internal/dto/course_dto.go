package dto

import "edutech/internal/domain"

// CourseResponse is a single catalog entry. Accent is the UI theming key
// resolved from the course category.
type CourseResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Accent      string `json:"accent"`
	ImageURL    string `json:"image_url,omitempty"`
	Rating      int    `json:"rating"`
	ReviewCount int    `json:"review_count"`
	Difficulty  string `json:"difficulty,omitempty"`
}

// NewCourseResponse maps a domain course into its response shape.
func NewCourseResponse(course *domain.Course) CourseResponse {
	return CourseResponse{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		Category:    course.Category,
		Accent:      domain.AccentForCategory(course.Category),
		ImageURL:    course.ImageURL,
		Rating:      course.Rating,
		ReviewCount: course.ReviewCount,
		Difficulty:  course.Difficulty,
	}
}

// NewCourseListResponse maps a slice of courses preserving order.
func NewCourseListResponse(courses []*domain.Course) []CourseResponse {
	out := make([]CourseResponse, len(courses))
	for i, course := range courses {
		out[i] = NewCourseResponse(course)
	}
	return out
}

// EnrollRequest is the request body for enrolling in a course.
// @Description Request body for course enrollment
type EnrollRequest struct {
	CourseID int64 `json:"course_id" validate:"required"`
}

// UpdateProgressRequest carries a progress update. Progress is decoded as a
// float so fractional values can be rejected explicitly instead of failing
// opaquely in the JSON decoder.
// @Description Request body for updating enrollment progress
type UpdateProgressRequest struct {
	Progress float64 `json:"progress"`
}

// EnrollmentResponse is a bare enrollment record.
type EnrollmentResponse struct {
	ID          int64 `json:"id"`
	UserID      int64 `json:"user_id"`
	CourseID    int64 `json:"course_id"`
	Progress    int   `json:"progress"`
	IsCompleted bool  `json:"is_completed"`
}

// NewEnrollmentResponse maps a domain enrollment into its response shape.
func NewEnrollmentResponse(enrollment *domain.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:          enrollment.ID,
		UserID:      enrollment.UserID,
		CourseID:    enrollment.CourseID,
		Progress:    enrollment.Progress,
		IsCompleted: enrollment.IsCompleted,
	}
}

// EnrolledCourseResponse is an enrollment joined with its course.
type EnrolledCourseResponse struct {
	EnrollmentResponse
	Course CourseResponse `json:"course"`
}

// RecommendationsResponse lists recommended catalog entries.
type RecommendationsResponse struct {
	Recommendations []CourseResponse `json:"recommendations"`
}
