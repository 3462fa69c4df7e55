// Package seed loads the sample catalog and badge set into an empty store.
package seed

import (
	"context"
	"fmt"

	"edutech/internal/domain"
	"edutech/internal/logger"

	"go.uber.org/zap"
)

var sampleCourses = []domain.Course{
	{
		Title:       "HTML & CSS Basics",
		Description: "Learn the fundamental building blocks of web design",
		Category:    "Web Development",
		ImageURL:    "https://images.unsplash.com/photo-1507721999472-8ed4421c4af2?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Rating:      4,
		ReviewCount: 1200,
		Difficulty:  "Beginner",
	},
	{
		Title:       "Time Management Mastery",
		Description: "Optimize your daily routine and boost productivity",
		Category:    "Productivity",
		ImageURL:    "https://images.unsplash.com/photo-1483058712412-4245e9b90334?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Rating:      5,
		ReviewCount: 850,
		Difficulty:  "Intermediate",
	},
	{
		Title:       "Python Fundamentals",
		Description: "Learn Python programming from scratch",
		Category:    "Programming",
		ImageURL:    "https://images.unsplash.com/photo-1526379095098-d400fd0bf935?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Rating:      5,
		ReviewCount: 1500,
		Difficulty:  "Beginner",
	},
	{
		Title:       "JavaScript for Web Development",
		Description: "Take your HTML/CSS skills to the next level",
		Category:    "Web Development",
		ImageURL:    "https://images.unsplash.com/photo-1579468118864-1b9ea3c0db4a?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Rating:      5,
		ReviewCount: 2156,
		Difficulty:  "Intermediate",
	},
	{
		Title:       "Business Planning for Young Entrepreneurs",
		Description: "Learn how to start your business at any age",
		Category:    "Business",
		ImageURL:    "https://images.unsplash.com/photo-1450101499163-c8848c66ca85?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Rating:      4,
		ReviewCount: 867,
		Difficulty:  "Beginner",
	},
	{
		Title:       "Digital Marketing Essentials",
		Description: "Master social media, SEO, and content marketing",
		Category:    "Marketing",
		ImageURL:    "https://images.unsplash.com/photo-1460925895917-afdab827c52f?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Rating:      4,
		ReviewCount: 1423,
		Difficulty:  "Intermediate",
	},
}

var sampleAchievements = []domain.Achievement{
	{Title: "HTML Hero", Description: "Completed HTML Basics", Icon: "code", Category: "Web Development"},
	{Title: "Style Master", Description: "Completed CSS Fundamentals", Icon: "brush", Category: "Web Development"},
	{Title: "Consistency King", Description: "5-Day Learning Streak", Icon: "clock", Category: "Engagement"},
	{Title: "Quiz Champion", Description: "Perfect score on Web Quiz", Icon: "award", Category: "Assessment"},
	{Title: "Project Pioneer", Description: "Completed first project", Icon: "star", Category: "Project"},
	{Title: "Early Bird", Description: "5AM learning session", Icon: "layers", Category: "Engagement"},
}

// Run inserts the sample catalog and badge set. It skips seeding entirely
// when courses already exist, so it is safe to call on every startup.
func Run(ctx context.Context, courseRepo domain.CourseRepository, achievementRepo domain.AchievementRepository) error {
	existing, err := courseRepo.ListCourses(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing catalog: %w", err)
	}
	if len(existing) > 0 {
		logger.Get().Debug("Catalog already seeded, skipping", zap.Int("courses", len(existing)))
		return nil
	}

	for i := range sampleCourses {
		course := sampleCourses[i]
		if _, err := courseRepo.CreateCourse(ctx, &course); err != nil {
			return fmt.Errorf("failed to seed course %q: %w", course.Title, err)
		}
	}
	for i := range sampleAchievements {
		achievement := sampleAchievements[i]
		if _, err := achievementRepo.CreateAchievement(ctx, &achievement); err != nil {
			return fmt.Errorf("failed to seed achievement %q: %w", achievement.Title, err)
		}
	}

	logger.Get().Info("Seeded sample data",
		zap.Int("courses", len(sampleCourses)),
		zap.Int("achievements", len(sampleAchievements)),
	)
	return nil
}
