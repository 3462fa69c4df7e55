package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"edutech/internal/domain"
)

// Store is an in-memory entity store. Every entity type has its own keyed
// map and a monotonic ID counter starting at 1; IDs are never reused, so ID
// order is insertion order. All methods are safe for concurrent use.
//
// The store implements every domain repository interface plus
// domain.TransactionManager, so it can be swapped 1:1 with the SQL-backed
// repositories.
type Store struct {
	mu sync.RWMutex
	// txMu serializes multi-record mutations run through WithTransaction so
	// two read-modify-write sequences on the same record cannot interleave.
	txMu sync.Mutex

	users            map[int64]domain.User
	courses          map[int64]domain.Course
	enrollments      map[int64]domain.Enrollment
	achievements     map[int64]domain.Achievement
	userAchievements map[int64]domain.UserAchievement
	streaks          map[int64]domain.LearningStreak

	nextUserID            int64
	nextCourseID          int64
	nextEnrollmentID      int64
	nextAchievementID     int64
	nextUserAchievementID int64
	nextStreakID          int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:            make(map[int64]domain.User),
		courses:          make(map[int64]domain.Course),
		enrollments:      make(map[int64]domain.Enrollment),
		achievements:     make(map[int64]domain.Achievement),
		userAchievements: make(map[int64]domain.UserAchievement),
		streaks:          make(map[int64]domain.LearningStreak),

		nextUserID:            1,
		nextCourseID:          1,
		nextEnrollmentID:      1,
		nextAchievementID:     1,
		nextUserAchievementID: 1,
		nextStreakID:          1,
	}
}

// WithTransaction implements domain.TransactionManager. The memory store has
// no rollback; it provides the required atomicity by serializing the whole
// mutation sequence.
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(ctx)
}

// --- UserRepository ---

func (s *Store) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return nil, domain.NewConflictError(fmt.Sprintf("username %q is already taken", user.Username))
		}
		if existing.Email == user.Email {
			return nil, domain.NewConflictError(fmt.Sprintf("email %q is already registered", user.Email))
		}
	}

	created := *user
	created.ID = s.nextUserID
	s.nextUserID++
	s.users[created.ID] = created
	return &created, nil
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Exact, case-sensitive match; no normalization.
	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (s *Store) UpdateUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return domain.NewNotFoundError(fmt.Sprintf("user not found: %d", user.ID))
	}
	s.users[user.ID] = *user
	return nil
}

// --- CourseRepository ---

func (s *Store) CreateCourse(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := *course
	created.ID = s.nextCourseID
	s.nextCourseID++
	s.courses[created.ID] = created
	return &created, nil
}

func (s *Store) GetCourseByID(ctx context.Context, id int64) (*domain.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	course, ok := s.courses[id]
	if !ok {
		return nil, nil
	}
	return &course, nil
}

func (s *Store) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Course, 0, len(s.courses))
	for _, id := range sortedKeys(s.courses) {
		course := s.courses[id]
		out = append(out, &course)
	}
	return out, nil
}

func (s *Store) ListCoursesByCategory(ctx context.Context, category string) ([]*domain.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Course
	for _, id := range sortedKeys(s.courses) {
		course := s.courses[id]
		if course.Category == category {
			out = append(out, &course)
		}
	}
	return out, nil
}

// --- EnrollmentRepository ---

func (s *Store) CreateEnrollment(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := *enrollment
	created.ID = s.nextEnrollmentID
	s.nextEnrollmentID++
	s.enrollments[created.ID] = created
	return &created, nil
}

func (s *Store) GetEnrollmentByID(ctx context.Context, id int64) (*domain.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	enrollment, ok := s.enrollments[id]
	if !ok {
		return nil, nil
	}
	return &enrollment, nil
}

func (s *Store) ListEnrollmentsByUser(ctx context.Context, userID int64) ([]*domain.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Enrollment
	for _, id := range sortedKeys(s.enrollments) {
		enrollment := s.enrollments[id]
		if enrollment.UserID == userID {
			out = append(out, &enrollment)
		}
	}
	return out, nil
}

func (s *Store) UpdateEnrollment(ctx context.Context, enrollment *domain.Enrollment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.enrollments[enrollment.ID]; !ok {
		return domain.NewNotFoundError(fmt.Sprintf("enrollment not found: %d", enrollment.ID))
	}
	s.enrollments[enrollment.ID] = *enrollment
	return nil
}

// --- AchievementRepository ---

func (s *Store) CreateAchievement(ctx context.Context, achievement *domain.Achievement) (*domain.Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := *achievement
	created.ID = s.nextAchievementID
	s.nextAchievementID++
	s.achievements[created.ID] = created
	return &created, nil
}

func (s *Store) GetAchievementByID(ctx context.Context, id int64) (*domain.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	achievement, ok := s.achievements[id]
	if !ok {
		return nil, nil
	}
	return &achievement, nil
}

func (s *Store) ListAchievements(ctx context.Context) ([]*domain.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Achievement, 0, len(s.achievements))
	for _, id := range sortedKeys(s.achievements) {
		achievement := s.achievements[id]
		out = append(out, &achievement)
	}
	return out, nil
}

// --- UserAchievementRepository ---

func (s *Store) CreateUserAchievement(ctx context.Context, award *domain.UserAchievement) (*domain.UserAchievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := *award
	created.ID = s.nextUserAchievementID
	s.nextUserAchievementID++
	s.userAchievements[created.ID] = created
	return &created, nil
}

func (s *Store) ListUserAchievementsByUser(ctx context.Context, userID int64) ([]*domain.UserAchievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.UserAchievement
	for _, id := range sortedKeys(s.userAchievements) {
		award := s.userAchievements[id]
		if award.UserID == userID {
			out = append(out, &award)
		}
	}
	return out, nil
}

// --- StreakRepository ---

func (s *Store) CreateStreak(ctx context.Context, streak *domain.LearningStreak) (*domain.LearningStreak, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := *streak
	created.ID = s.nextStreakID
	s.nextStreakID++
	s.streaks[created.ID] = created
	return &created, nil
}

func (s *Store) GetStreakByUser(ctx context.Context, userID int64) (*domain.LearningStreak, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedKeys(s.streaks) {
		streak := s.streaks[id]
		if streak.UserID == userID {
			return &streak, nil
		}
	}
	return nil, nil
}

func (s *Store) UpdateStreak(ctx context.Context, streak *domain.LearningStreak) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.streaks[streak.ID]; !ok {
		return domain.NewNotFoundError(fmt.Sprintf("streak not found: %d", streak.ID))
	}
	s.streaks[streak.ID] = *streak
	return nil
}

// sortedKeys returns map keys in ascending order. IDs are monotonic, so
// this is insertion order.
func sortedKeys[T any](m map[int64]T) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
