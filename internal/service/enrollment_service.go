package service

import (
	"context"
	"fmt"

	"edutech/internal/domain"
	"edutech/internal/dto"
	"edutech/internal/logger"

	"go.uber.org/zap"
)

// EnrollmentService defines the interface for enrollment and progress
// operations.
type EnrollmentService interface {
	Enroll(ctx context.Context, userID int64, req *dto.EnrollRequest) (*dto.EnrollmentResponse, error)
	// UpdateProgress stores a validated progress value and records streak
	// activity as a side effect. Either both happen or neither does.
	UpdateProgress(ctx context.Context, userID, enrollmentID int64, progress int) (*dto.EnrollmentResponse, error)
	ListUserCourses(ctx context.Context, userID int64) ([]dto.EnrolledCourseResponse, error)
}

type enrollmentServiceImpl struct {
	enrollmentRepo domain.EnrollmentRepository
	courseRepo     domain.CourseRepository
	activity       domain.ActivityRecorder
	txManager      domain.TransactionManager
}

// NewEnrollmentService creates a new instance of EnrollmentService.
func NewEnrollmentService(
	enrollmentRepo domain.EnrollmentRepository,
	courseRepo domain.CourseRepository,
	activity domain.ActivityRecorder,
	txManager domain.TransactionManager,
) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		activity:       activity,
		txManager:      txManager,
	}
}

// Enroll creates a fresh zero-progress enrollment. Enrolling in the same
// course again creates another independent record.
func (s *enrollmentServiceImpl) Enroll(ctx context.Context, userID int64, req *dto.EnrollRequest) (*dto.EnrollmentResponse, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if course == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("course not found: %d", req.CourseID))
	}

	created, err := s.enrollmentRepo.CreateEnrollment(ctx, domain.NewEnrollment(userID, req.CourseID))
	if err != nil {
		return nil, fmt.Errorf("failed to create enrollment: %w", err)
	}

	logger.Get().Info("User enrolled in course",
		zap.Int64("userID", userID),
		zap.Int64("courseID", req.CourseID))

	resp := dto.NewEnrollmentResponse(created)
	return &resp, nil
}

// UpdateProgress sets the enrollment's progress and derived completion flag,
// then touches the user's streak, all inside one transaction. An enrollment
// belonging to another user is reported as not found.
func (s *enrollmentServiceImpl) UpdateProgress(ctx context.Context, userID, enrollmentID int64, progress int) (*dto.EnrollmentResponse, error) {
	var updated *domain.Enrollment

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		enrollment, err := s.enrollmentRepo.GetEnrollmentByID(txCtx, enrollmentID)
		if err != nil {
			return fmt.Errorf("failed to get enrollment: %w", err)
		}
		if enrollment == nil || enrollment.UserID != userID {
			return domain.NewNotFoundError(fmt.Sprintf("enrollment not found: %d", enrollmentID))
		}

		enrollment.SetProgress(progress)
		if err := s.enrollmentRepo.UpdateEnrollment(txCtx, enrollment); err != nil {
			return fmt.Errorf("failed to update enrollment: %w", err)
		}

		if _, err := s.activity.RecordActivity(txCtx, userID); err != nil {
			return fmt.Errorf("failed to record activity: %w", err)
		}

		updated = enrollment
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := dto.NewEnrollmentResponse(updated)
	return &resp, nil
}

// ListUserCourses returns the user's enrollments joined with their courses,
// in enrollment order. Course data is resolved at read time.
func (s *enrollmentServiceImpl) ListUserCourses(ctx context.Context, userID int64) ([]dto.EnrolledCourseResponse, error) {
	enrollments, err := s.enrollmentRepo.ListEnrollmentsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}

	out := make([]dto.EnrolledCourseResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		course, err := s.courseRepo.GetCourseByID(ctx, enrollment.CourseID)
		if err != nil {
			return nil, fmt.Errorf("failed to get course %d: %w", enrollment.CourseID, err)
		}
		if course == nil {
			logger.Get().Warn("Enrollment references missing course",
				zap.Int64("enrollmentID", enrollment.ID),
				zap.Int64("courseID", enrollment.CourseID))
			continue
		}
		out = append(out, dto.EnrolledCourseResponse{
			EnrollmentResponse: dto.NewEnrollmentResponse(enrollment),
			Course:             dto.NewCourseResponse(course),
		})
	}
	return out, nil
}
