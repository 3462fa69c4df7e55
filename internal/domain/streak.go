package domain

import (
	"context"
	"time"
)

// LearningStreak tracks consecutive calendar days of qualifying activity
// for a single user. One record exists per user.
type LearningStreak struct {
	ID            int64
	UserID        int64
	CurrentStreak int
	LongestStreak int
	LastActivity  time.Time
}

// NewLearningStreak creates the streak record for a user's first
// qualifying activity.
func NewLearningStreak(userID int64, now time.Time) *LearningStreak {
	return &LearningStreak{
		UserID:        userID,
		CurrentStreak: 1,
		LongestStreak: 1,
		LastActivity:  now,
	}
}

// Advance transitions the streak for an activity happening at now.
// Comparison is at calendar-day granularity; time of day is ignored:
//   - last activity yesterday: the streak continues and grows by one
//   - last activity today: no change (multiple same-day activities do not
//     double-increment)
//   - anything else, including a lastActivity in the future: reset to 1
//
// LongestStreak and LastActivity are updated unconditionally.
func (s *LearningStreak) Advance(now time.Time) {
	switch {
	case sameCalendarDay(s.LastActivity, now):
		// Already counted today.
	case sameCalendarDay(s.LastActivity, now.AddDate(0, 0, -1)):
		s.CurrentStreak++
	default:
		s.CurrentStreak = 1
	}

	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
	s.LastActivity = now
}

func sameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// StreakRepository defines the interface for streak persistence.
// GetStreakByUser reports a missing record as (nil, nil).
type StreakRepository interface {
	CreateStreak(ctx context.Context, streak *LearningStreak) (*LearningStreak, error)
	GetStreakByUser(ctx context.Context, userID int64) (*LearningStreak, error)
	UpdateStreak(ctx context.Context, streak *LearningStreak) error
}
