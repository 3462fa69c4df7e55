package models

import (
	"database/sql"
	"time"

	"edutech/internal/domain"
	"edutech/internal/util"
)

// Course is the courses table row.
type Course struct {
	ID          int64          `db:"id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Category    string         `db:"category"`
	ImageURL    sql.NullString `db:"image_url"`
	Rating      int            `db:"rating"`
	ReviewCount int            `db:"review_count"`
	Difficulty  sql.NullString `db:"difficulty"`
}

func FromDomainCourse(c *domain.Course) *Course {
	return &Course{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		ImageURL:    util.StringToNullString(c.ImageURL),
		Rating:      c.Rating,
		ReviewCount: c.ReviewCount,
		Difficulty:  util.StringToNullString(c.Difficulty),
	}
}

func (c *Course) ToDomain() *domain.Course {
	return &domain.Course{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		ImageURL:    c.ImageURL.String,
		Rating:      c.Rating,
		ReviewCount: c.ReviewCount,
		Difficulty:  c.Difficulty.String,
	}
}

// Enrollment is the user_courses table row.
type Enrollment struct {
	ID          int64 `db:"id"`
	UserID      int64 `db:"user_id"`
	CourseID    int64 `db:"course_id"`
	Progress    int   `db:"progress"`
	IsCompleted bool  `db:"is_completed"`
}

func FromDomainEnrollment(e *domain.Enrollment) *Enrollment {
	return &Enrollment{
		ID:          e.ID,
		UserID:      e.UserID,
		CourseID:    e.CourseID,
		Progress:    e.Progress,
		IsCompleted: e.IsCompleted,
	}
}

func (e *Enrollment) ToDomain() *domain.Enrollment {
	return &domain.Enrollment{
		ID:          e.ID,
		UserID:      e.UserID,
		CourseID:    e.CourseID,
		Progress:    e.Progress,
		IsCompleted: e.IsCompleted,
	}
}

// Achievement is the achievements table row.
type Achievement struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Icon        string `db:"icon"`
	Category    string `db:"category"`
}

func FromDomainAchievement(a *domain.Achievement) *Achievement {
	return &Achievement{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Icon:        a.Icon,
		Category:    a.Category,
	}
}

func (a *Achievement) ToDomain() *domain.Achievement {
	return &domain.Achievement{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Icon:        a.Icon,
		Category:    a.Category,
	}
}

// UserAchievement is the user_achievements table row.
type UserAchievement struct {
	ID            int64     `db:"id"`
	UserID        int64     `db:"user_id"`
	AchievementID int64     `db:"achievement_id"`
	AwardedAt     time.Time `db:"awarded_at"`
}

func FromDomainUserAchievement(a *domain.UserAchievement) *UserAchievement {
	return &UserAchievement{
		ID:            a.ID,
		UserID:        a.UserID,
		AchievementID: a.AchievementID,
		AwardedAt:     a.AwardedAt,
	}
}

func (a *UserAchievement) ToDomain() *domain.UserAchievement {
	return &domain.UserAchievement{
		ID:            a.ID,
		UserID:        a.UserID,
		AchievementID: a.AchievementID,
		AwardedAt:     a.AwardedAt,
	}
}

// LearningStreak is the learning_streaks table row.
type LearningStreak struct {
	ID            int64     `db:"id"`
	UserID        int64     `db:"user_id"`
	CurrentStreak int       `db:"current_streak"`
	LongestStreak int       `db:"longest_streak"`
	LastActivity  time.Time `db:"last_activity"`
}

func FromDomainStreak(s *domain.LearningStreak) *LearningStreak {
	return &LearningStreak{
		ID:            s.ID,
		UserID:        s.UserID,
		CurrentStreak: s.CurrentStreak,
		LongestStreak: s.LongestStreak,
		LastActivity:  s.LastActivity,
	}
}

func (s *LearningStreak) ToDomain() *domain.LearningStreak {
	return &domain.LearningStreak{
		ID:            s.ID,
		UserID:        s.UserID,
		CurrentStreak: s.CurrentStreak,
		LongestStreak: s.LongestStreak,
		LastActivity:  s.LastActivity,
	}
}
