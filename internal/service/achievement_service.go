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

// AchievementService defines the interface for badge operations.
type AchievementService interface {
	ListAchievements(ctx context.Context) ([]dto.AchievementResponse, error)
	ListUserAchievements(ctx context.Context, userID int64) ([]dto.UserAchievementResponse, error)
	// Award grants a badge to the user. The same badge can be awarded
	// repeatedly; every call creates a distinct record.
	Award(ctx context.Context, userID, achievementID int64) (*dto.UserAchievementResponse, error)
}

type achievementServiceImpl struct {
	achievementRepo domain.AchievementRepository
	awardRepo       domain.UserAchievementRepository
}

// NewAchievementService creates a new instance of AchievementService.
func NewAchievementService(
	achievementRepo domain.AchievementRepository,
	awardRepo domain.UserAchievementRepository,
) AchievementService {
	return &achievementServiceImpl{
		achievementRepo: achievementRepo,
		awardRepo:       awardRepo,
	}
}

func (s *achievementServiceImpl) ListAchievements(ctx context.Context) ([]dto.AchievementResponse, error) {
	achievements, err := s.achievementRepo.ListAchievements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}

	out := make([]dto.AchievementResponse, len(achievements))
	for i, a := range achievements {
		out[i] = dto.NewAchievementResponse(a)
	}
	return out, nil
}

// ListUserAchievements returns the user's awards joined with their badge
// definitions, in award order.
func (s *achievementServiceImpl) ListUserAchievements(ctx context.Context, userID int64) ([]dto.UserAchievementResponse, error) {
	awards, err := s.awardRepo.ListUserAchievementsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user achievements: %w", err)
	}

	out := make([]dto.UserAchievementResponse, 0, len(awards))
	for _, award := range awards {
		achievement, err := s.achievementRepo.GetAchievementByID(ctx, award.AchievementID)
		if err != nil {
			return nil, fmt.Errorf("failed to get achievement %d: %w", award.AchievementID, err)
		}
		if achievement == nil {
			logger.Get().Warn("Award references missing achievement",
				zap.Int64("awardID", award.ID),
				zap.Int64("achievementID", award.AchievementID))
			continue
		}
		out = append(out, dto.UserAchievementResponse{
			ID:          award.ID,
			UserID:      award.UserID,
			AwardedAt:   award.AwardedAt,
			Achievement: dto.NewAchievementResponse(achievement),
		})
	}
	return out, nil
}

func (s *achievementServiceImpl) Award(ctx context.Context, userID, achievementID int64) (*dto.UserAchievementResponse, error) {
	achievement, err := s.achievementRepo.GetAchievementByID(ctx, achievementID)
	if err != nil {
		return nil, fmt.Errorf("failed to get achievement: %w", err)
	}
	if achievement == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("achievement not found: %d", achievementID))
	}

	created, err := s.awardRepo.CreateUserAchievement(ctx, &domain.UserAchievement{
		UserID:        userID,
		AchievementID: achievementID,
		AwardedAt:     time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create award: %w", err)
	}

	logger.Get().Info("Achievement awarded",
		zap.Int64("userID", userID),
		zap.Int64("achievementID", achievementID))

	return &dto.UserAchievementResponse{
		ID:          created.ID,
		UserID:      created.UserID,
		AwardedAt:   created.AwardedAt,
		Achievement: dto.NewAchievementResponse(achievement),
	}, nil
}
