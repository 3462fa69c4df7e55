package service

import (
	"context"
	"testing"

	"edutech/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestRecommendationService_GetRecommendedCourses(t *testing.T) {
	ctx := context.Background()
	catalog := []*domain.Course{
		{ID: 1, Title: "Go Basics"},
		{ID: 2, Title: "Web Dev Bootcamp"},
		{ID: 3, Title: "Focus & Flow"},
		{ID: 4, Title: "SQL Deep Dive"},
		{ID: 5, Title: "Marketing 101"},
	}

	t.Run("excludes enrolled, keeps catalog order, applies limit", func(t *testing.T) {
		courseRepo := new(MockCourseRepository)
		enrollRepo := new(MockEnrollmentRepository)
		enrollRepo.On("ListEnrollmentsByUser", ctx, int64(1)).Return([]*domain.Enrollment{
			{ID: 1, UserID: 1, CourseID: 2},
		}, nil)
		courseRepo.On("ListCourses", ctx).Return(catalog, nil)

		svc := NewRecommendationService(courseRepo, enrollRepo)
		out, err := svc.GetRecommendedCourses(ctx, 1, 3)

		assert.NoError(t, err)
		assert.Len(t, out, 3)
		assert.Equal(t, int64(1), out[0].ID)
		assert.Equal(t, int64(3), out[1].ID)
		assert.Equal(t, int64(4), out[2].ID)
	})

	t.Run("fully enrolled user gets empty list", func(t *testing.T) {
		courseRepo := new(MockCourseRepository)
		enrollRepo := new(MockEnrollmentRepository)
		enrollRepo.On("ListEnrollmentsByUser", ctx, int64(1)).Return([]*domain.Enrollment{
			{CourseID: 1}, {CourseID: 2}, {CourseID: 3}, {CourseID: 4}, {CourseID: 5},
		}, nil)
		courseRepo.On("ListCourses", ctx).Return(catalog, nil)

		svc := NewRecommendationService(courseRepo, enrollRepo)
		out, err := svc.GetRecommendedCourses(ctx, 1, 3)

		assert.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("non-positive limit falls back to default", func(t *testing.T) {
		courseRepo := new(MockCourseRepository)
		enrollRepo := new(MockEnrollmentRepository)
		enrollRepo.On("ListEnrollmentsByUser", ctx, int64(1)).Return([]*domain.Enrollment{}, nil)
		courseRepo.On("ListCourses", ctx).Return(catalog, nil)

		svc := NewRecommendationService(courseRepo, enrollRepo)
		out, err := svc.GetRecommendedCourses(ctx, 1, 0)

		assert.NoError(t, err)
		assert.Len(t, out, DefaultRecommendationLimit)
	})

	t.Run("duplicate enrollments count once", func(t *testing.T) {
		courseRepo := new(MockCourseRepository)
		enrollRepo := new(MockEnrollmentRepository)
		enrollRepo.On("ListEnrollmentsByUser", ctx, int64(1)).Return([]*domain.Enrollment{
			{CourseID: 2}, {CourseID: 2}, {CourseID: 2},
		}, nil)
		courseRepo.On("ListCourses", ctx).Return(catalog, nil)

		svc := NewRecommendationService(courseRepo, enrollRepo)
		out, err := svc.GetRecommendedCourses(ctx, 1, 10)

		assert.NoError(t, err)
		assert.Len(t, out, 4)
		for _, c := range out {
			assert.NotEqual(t, int64(2), c.ID)
		}
	})
}
