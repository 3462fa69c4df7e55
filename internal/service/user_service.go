package service

import (
	"context"
	"errors"
	"fmt"

	"edutech/internal/domain"
	"edutech/internal/dto"

	"golang.org/x/sync/errgroup"
)

// UserService defines the interface for profile and dashboard operations.
type UserService interface {
	GetUserProfile(ctx context.Context, userID int64) (*dto.UserProfileResponse, error)
	UpdateOnboarding(ctx context.Context, userID int64, completed bool) (*dto.OnboardingResponse, error)
	UpdatePreferences(ctx context.Context, userID int64, req *dto.UpdatePreferencesRequest) (*dto.UserProfileResponse, error)
	// GetDashboard aggregates the user's enrolled courses, achievements,
	// streak, and recommendations in one call.
	GetDashboard(ctx context.Context, userID int64) (*dto.DashboardResponse, error)
}

type userServiceImpl struct {
	userRepo           domain.UserRepository
	enrollmentService  EnrollmentService
	achievementService AchievementService
	streakService      StreakService
	recommendations    RecommendationService
}

// NewUserService creates a new instance of UserService.
func NewUserService(
	userRepo domain.UserRepository,
	enrollmentService EnrollmentService,
	achievementService AchievementService,
	streakService StreakService,
	recommendations RecommendationService,
) UserService {
	return &userServiceImpl{
		userRepo:           userRepo,
		enrollmentService:  enrollmentService,
		achievementService: achievementService,
		streakService:      streakService,
		recommendations:    recommendations,
	}
}

func (s *userServiceImpl) getUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("user not found: %d", userID))
	}
	return user, nil
}

func (s *userServiceImpl) GetUserProfile(ctx context.Context, userID int64) (*dto.UserProfileResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewUserProfileResponse(user), nil
}

func (s *userServiceImpl) UpdateOnboarding(ctx context.Context, userID int64, completed bool) (*dto.OnboardingResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.OnboardingCompleted = completed
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &dto.OnboardingResponse{OnboardingCompleted: user.OnboardingCompleted}, nil
}

// UpdatePreferences applies the non-nil fields of req and leaves the rest
// untouched.
func (s *userServiceImpl) UpdatePreferences(ctx context.Context, userID int64, req *dto.UpdatePreferencesRequest) (*dto.UserProfileResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.PreferredLanguage != nil {
		user.PreferredLanguage = *req.PreferredLanguage
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return dto.NewUserProfileResponse(user), nil
}

// GetDashboard fans out the four independent reads concurrently. A user
// without a streak record yet gets a dashboard with a nil streak.
func (s *userServiceImpl) GetDashboard(ctx context.Context, userID int64) (*dto.DashboardResponse, error) {
	if _, err := s.getUser(ctx, userID); err != nil {
		return nil, err
	}

	var resp dto.DashboardResponse
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		courses, err := s.enrollmentService.ListUserCourses(gCtx, userID)
		if err != nil {
			return err
		}
		resp.Courses = courses
		return nil
	})

	g.Go(func() error {
		achievements, err := s.achievementService.ListUserAchievements(gCtx, userID)
		if err != nil {
			return err
		}
		resp.Achievements = achievements
		return nil
	})

	g.Go(func() error {
		streak, err := s.streakService.GetStreak(gCtx, userID)
		if err != nil {
			var domainErr *domain.DomainError
			if errors.As(err, &domainErr) && domainErr.Code == domain.CodeNotFound {
				return nil
			}
			return err
		}
		resp.Streak = streak
		return nil
	})

	g.Go(func() error {
		recs, err := s.recommendations.GetRecommendedCourses(gCtx, userID, DefaultRecommendationLimit)
		if err != nil {
			return err
		}
		resp.Recommendations = recs
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &resp, nil
}
