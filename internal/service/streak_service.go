package service

import (
	"context"
	"fmt"
	"time"

	"edutech/internal/domain"
	"edutech/internal/dto"
	"edutech/internal/logger"

	"go.uber.org/zap"
)

// StreakService defines the interface for learning streak operations.
type StreakService interface {
	// GetStreak returns the current streak state without touching it.
	GetStreak(ctx context.Context, userID int64) (*dto.StreakResponse, error)
	// Touch records a qualifying activity at the current time and returns
	// the resulting streak state.
	Touch(ctx context.Context, userID int64) (*dto.StreakResponse, error)
}

type streakServiceImpl struct {
	streakRepo domain.StreakRepository
	now        func() time.Time
}

// NewStreakService creates a new instance of StreakService. The returned
// service also implements domain.ActivityRecorder so other services can
// report qualifying activity without depending on this package's DTOs.
func NewStreakService(streakRepo domain.StreakRepository) StreakService {
	return &streakServiceImpl{streakRepo: streakRepo, now: time.Now}
}

func (s *streakServiceImpl) GetStreak(ctx context.Context, userID int64) (*dto.StreakResponse, error) {
	streak, err := s.streakRepo.GetStreakByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get streak: %w", err)
	}
	if streak == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("streak not found for user: %d", userID))
	}
	return dto.NewStreakResponse(streak), nil
}

func (s *streakServiceImpl) Touch(ctx context.Context, userID int64) (*dto.StreakResponse, error) {
	streak, err := s.RecordActivity(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewStreakResponse(streak), nil
}

// RecordActivity implements domain.ActivityRecorder. A user with no streak
// record starts at one; otherwise the streak advances by calendar-day rules.
func (s *streakServiceImpl) RecordActivity(ctx context.Context, userID int64) (*domain.LearningStreak, error) {
	now := s.now()

	streak, err := s.streakRepo.GetStreakByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get streak: %w", err)
	}

	if streak == nil {
		created, err := s.streakRepo.CreateStreak(ctx, domain.NewLearningStreak(userID, now))
		if err != nil {
			return nil, fmt.Errorf("failed to create streak: %w", err)
		}
		logger.Get().Info("Streak started", zap.Int64("userID", userID))
		return created, nil
	}

	streak.Advance(now)
	if err := s.streakRepo.UpdateStreak(ctx, streak); err != nil {
		return nil, fmt.Errorf("failed to update streak: %w", err)
	}
	return streak, nil
}
