package domain

import (
	"context"
	"time"
)

// Achievement is a badge definition, seeded once and immutable.
// Icon is a string tag mapped to a fixed presentation set; unrecognized
// keys fall back to a default at render time.
type Achievement struct {
	ID          int64
	Title       string
	Description string
	Icon        string
	Category    string
}

// UserAchievement is an award instance of a badge to a user. No uniqueness
// is enforced: the same achievement can be awarded to a user repeatedly,
// producing distinct records.
type UserAchievement struct {
	ID            int64
	UserID        int64
	AchievementID int64
	AwardedAt     time.Time
}

// AchievementRepository defines the interface for badge definitions.
type AchievementRepository interface {
	CreateAchievement(ctx context.Context, achievement *Achievement) (*Achievement, error)
	GetAchievementByID(ctx context.Context, id int64) (*Achievement, error)
	ListAchievements(ctx context.Context) ([]*Achievement, error)
}

// UserAchievementRepository defines the interface for award records.
type UserAchievementRepository interface {
	CreateUserAchievement(ctx context.Context, award *UserAchievement) (*UserAchievement, error)
	ListUserAchievementsByUser(ctx context.Context, userID int64) ([]*UserAchievement, error)
}
