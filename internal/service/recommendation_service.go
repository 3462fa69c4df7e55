package service

import (
	"context"
	"fmt"

	"edutech/internal/domain"
	"edutech/internal/dto"
)

// DefaultRecommendationLimit caps how many courses a recommendation listing
// returns when the caller does not say otherwise.
const DefaultRecommendationLimit = 3

// RecommendationService suggests catalog courses the user has not enrolled
// in. The selection is deliberately simple: catalog order, enrolled courses
// excluded, truncated at the limit. A learning-to-rank model can replace
// this behind the same interface.
type RecommendationService interface {
	GetRecommendedCourses(ctx context.Context, userID int64, limit int) ([]dto.CourseResponse, error)
}

type recommendationServiceImpl struct {
	courseRepo     domain.CourseRepository
	enrollmentRepo domain.EnrollmentRepository
}

// NewRecommendationService creates a new instance of RecommendationService.
func NewRecommendationService(
	courseRepo domain.CourseRepository,
	enrollmentRepo domain.EnrollmentRepository,
) RecommendationService {
	return &recommendationServiceImpl{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// GetRecommendedCourses returns up to limit unenrolled courses in catalog
// order. A non-positive limit falls back to the default. A fully enrolled
// user gets an empty list.
func (s *recommendationServiceImpl) GetRecommendedCourses(ctx context.Context, userID int64, limit int) ([]dto.CourseResponse, error) {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	enrollments, err := s.enrollmentRepo.ListEnrollmentsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}

	enrolled := make(map[int64]struct{}, len(enrollments))
	for _, e := range enrollments {
		enrolled[e.CourseID] = struct{}{}
	}

	courses, err := s.courseRepo.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	out := make([]dto.CourseResponse, 0, limit)
	for _, course := range courses {
		if _, ok := enrolled[course.ID]; ok {
			continue
		}
		out = append(out, dto.NewCourseResponse(course))
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
