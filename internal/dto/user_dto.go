package dto

import (
	"time"

	"edutech/internal/domain"
)

// UserProfileResponse defines the structure for a user's profile information.
type UserProfileResponse struct {
	ID                  int64     `json:"id"`
	Username            string    `json:"username"`
	FirstName           string    `json:"first_name,omitempty"`
	LastName            string    `json:"last_name,omitempty"`
	Email               string    `json:"email"`
	AvatarURL           string    `json:"avatar_url,omitempty"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	PreferredLanguage   string    `json:"preferred_language,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// NewUserProfileResponse maps a domain user into its response shape.
// The password hash never leaves the service layer.
func NewUserProfileResponse(user *domain.User) *UserProfileResponse {
	return &UserProfileResponse{
		ID:                  user.ID,
		Username:            user.Username,
		FirstName:           user.FirstName,
		LastName:            user.LastName,
		Email:               user.Email,
		AvatarURL:           user.AvatarURL,
		OnboardingCompleted: user.OnboardingCompleted,
		PreferredLanguage:   user.PreferredLanguage,
		CreatedAt:           user.CreatedAt,
	}
}

// UpdateOnboardingRequest flips the onboarding-completed flag.
// @Description Request body for the onboarding status update
type UpdateOnboardingRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

// OnboardingResponse reports the stored onboarding flag.
type OnboardingResponse struct {
	OnboardingCompleted bool `json:"onboarding_completed"`
}

// UpdatePreferencesRequest updates optional profile preferences. Nil fields
// are left untouched.
// @Description Request body for profile preference updates
type UpdatePreferencesRequest struct {
	PreferredLanguage *string `json:"preferred_language,omitempty"`
	AvatarURL         *string `json:"avatar_url,omitempty"`
}

// StreakResponse is a user's learning streak state.
type StreakResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
	LastActivity  time.Time `json:"last_activity"`
}

// NewStreakResponse maps a domain streak into its response shape.
func NewStreakResponse(streak *domain.LearningStreak) *StreakResponse {
	return &StreakResponse{
		ID:            streak.ID,
		UserID:        streak.UserID,
		CurrentStreak: streak.CurrentStreak,
		LongestStreak: streak.LongestStreak,
		LastActivity:  streak.LastActivity,
	}
}

// AchievementResponse is a badge definition. Icon is resolved against the
// known presentation set, falling back to the default icon.
type AchievementResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Accent      string `json:"accent"`
}

// NewAchievementResponse maps a domain achievement into its response shape.
func NewAchievementResponse(achievement *domain.Achievement) AchievementResponse {
	return AchievementResponse{
		ID:          achievement.ID,
		Title:       achievement.Title,
		Description: achievement.Description,
		Icon:        domain.IconForAchievement(achievement.Icon),
		Category:    achievement.Category,
		Accent:      domain.AccentForCategory(achievement.Category),
	}
}

// AwardRequest is the request body for awarding an achievement.
// @Description Request body for awarding an achievement
type AwardRequest struct {
	AchievementID int64 `json:"achievement_id" validate:"required"`
}

// UserAchievementResponse is an award joined with its badge definition.
type UserAchievementResponse struct {
	ID          int64               `json:"id"`
	UserID      int64               `json:"user_id"`
	AwardedAt   time.Time           `json:"awarded_at"`
	Achievement AchievementResponse `json:"achievement"`
}

// AssistantRequest is the request body for a course assistant query.
// @Description Request body for the AI course assistant
type AssistantRequest struct {
	Query string `json:"query" validate:"required"`
}

// AssistantResponse carries the assistant's reply.
type AssistantResponse struct {
	Response string `json:"response"`
}

// DashboardResponse aggregates the dashboard view for a user.
type DashboardResponse struct {
	Courses         []EnrolledCourseResponse  `json:"courses"`
	Achievements    []UserAchievementResponse `json:"achievements"`
	Streak          *StreakResponse           `json:"streak,omitempty"`
	Recommendations []CourseResponse          `json:"recommendations"`
}
