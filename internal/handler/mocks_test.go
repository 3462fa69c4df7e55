package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"edutech/internal/config"
	"edutech/internal/dto"
	"edutech/internal/logger"
	"edutech/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "debug", Env: "test"}); err != nil {
		panic("failed to initialize logger for tests: " + err.Error())
	}
	os.Exit(m.Run())
}

// newTestApp builds a fiber app with the production error handler and mounts
// the route behind a shim that injects the authenticated user id, the way
// middleware.Protected would.
func newTestApp(method, path string, userID int64, h fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Add(method, path, func(c *fiber.Ctx) error {
		if userID != 0 {
			c.Locals(middleware.UserIDKey, userID)
		}
		return h(c)
	})
	return app
}

// sendJSON issues a JSON request against the app and captures the response
// in a recorder so tests can assert on both status and body.
func sendJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	assert.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	rec := httptest.NewRecorder()
	rec.Code = resp.StatusCode
	_, err = rec.Body.ReadFrom(resp.Body)
	assert.NoError(t, err)
	return rec
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return sendJSON(t, app, "POST", path, body)
}

func patchJSON(t *testing.T, app *fiber.App, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return sendJSON(t, app, "PATCH", path, body)
}

// --- Manual Mocks ---

// MockAuthService
type MockAuthService struct {
	RegisterFunc     func(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	LoginFunc        func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	ValidateJWTFunc  func(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	RefreshTokenFunc func(ctx context.Context, refreshTokenString string) (*dto.TokenResponse, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	panic("MockAuthService.RegisterFunc not implemented")
}
func (m *MockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	panic("MockAuthService.LoginFunc not implemented")
}
func (m *MockAuthService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	if m.ValidateJWTFunc != nil {
		return m.ValidateJWTFunc(ctx, tokenString)
	}
	panic("MockAuthService.ValidateJWTFunc not implemented")
}
func (m *MockAuthService) RefreshToken(ctx context.Context, refreshTokenString string) (*dto.TokenResponse, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, refreshTokenString)
	}
	panic("MockAuthService.RefreshTokenFunc not implemented")
}

// MockCourseService
type MockCourseService struct {
	GetAllCoursesFunc        func(ctx context.Context) ([]dto.CourseResponse, error)
	GetCourseFunc            func(ctx context.Context, id int64) (*dto.CourseResponse, error)
	GetCoursesByCategoryFunc func(ctx context.Context, category string) ([]dto.CourseResponse, error)
}

func (m *MockCourseService) GetAllCourses(ctx context.Context) ([]dto.CourseResponse, error) {
	if m.GetAllCoursesFunc != nil {
		return m.GetAllCoursesFunc(ctx)
	}
	panic("MockCourseService.GetAllCoursesFunc not implemented")
}
func (m *MockCourseService) GetCourse(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	if m.GetCourseFunc != nil {
		return m.GetCourseFunc(ctx, id)
	}
	panic("MockCourseService.GetCourseFunc not implemented")
}
func (m *MockCourseService) GetCoursesByCategory(ctx context.Context, category string) ([]dto.CourseResponse, error) {
	if m.GetCoursesByCategoryFunc != nil {
		return m.GetCoursesByCategoryFunc(ctx, category)
	}
	panic("MockCourseService.GetCoursesByCategoryFunc not implemented")
}

// MockEnrollmentService
type MockEnrollmentService struct {
	EnrollFunc          func(ctx context.Context, userID int64, req *dto.EnrollRequest) (*dto.EnrollmentResponse, error)
	UpdateProgressFunc  func(ctx context.Context, userID, enrollmentID int64, progress int) (*dto.EnrollmentResponse, error)
	ListUserCoursesFunc func(ctx context.Context, userID int64) ([]dto.EnrolledCourseResponse, error)
}

func (m *MockEnrollmentService) Enroll(ctx context.Context, userID int64, req *dto.EnrollRequest) (*dto.EnrollmentResponse, error) {
	if m.EnrollFunc != nil {
		return m.EnrollFunc(ctx, userID, req)
	}
	panic("MockEnrollmentService.EnrollFunc not implemented")
}
func (m *MockEnrollmentService) UpdateProgress(ctx context.Context, userID, enrollmentID int64, progress int) (*dto.EnrollmentResponse, error) {
	if m.UpdateProgressFunc != nil {
		return m.UpdateProgressFunc(ctx, userID, enrollmentID, progress)
	}
	panic("MockEnrollmentService.UpdateProgressFunc not implemented")
}
func (m *MockEnrollmentService) ListUserCourses(ctx context.Context, userID int64) ([]dto.EnrolledCourseResponse, error) {
	if m.ListUserCoursesFunc != nil {
		return m.ListUserCoursesFunc(ctx, userID)
	}
	panic("MockEnrollmentService.ListUserCoursesFunc not implemented")
}

// MockAchievementService
type MockAchievementService struct {
	ListAchievementsFunc     func(ctx context.Context) ([]dto.AchievementResponse, error)
	ListUserAchievementsFunc func(ctx context.Context, userID int64) ([]dto.UserAchievementResponse, error)
	AwardFunc                func(ctx context.Context, userID, achievementID int64) (*dto.UserAchievementResponse, error)
}

func (m *MockAchievementService) ListAchievements(ctx context.Context) ([]dto.AchievementResponse, error) {
	if m.ListAchievementsFunc != nil {
		return m.ListAchievementsFunc(ctx)
	}
	panic("MockAchievementService.ListAchievementsFunc not implemented")
}
func (m *MockAchievementService) ListUserAchievements(ctx context.Context, userID int64) ([]dto.UserAchievementResponse, error) {
	if m.ListUserAchievementsFunc != nil {
		return m.ListUserAchievementsFunc(ctx, userID)
	}
	panic("MockAchievementService.ListUserAchievementsFunc not implemented")
}
func (m *MockAchievementService) Award(ctx context.Context, userID, achievementID int64) (*dto.UserAchievementResponse, error) {
	if m.AwardFunc != nil {
		return m.AwardFunc(ctx, userID, achievementID)
	}
	panic("MockAchievementService.AwardFunc not implemented")
}

// MockUserService
type MockUserService struct {
	GetUserProfileFunc    func(ctx context.Context, userID int64) (*dto.UserProfileResponse, error)
	UpdateOnboardingFunc  func(ctx context.Context, userID int64, completed bool) (*dto.OnboardingResponse, error)
	UpdatePreferencesFunc func(ctx context.Context, userID int64, req *dto.UpdatePreferencesRequest) (*dto.UserProfileResponse, error)
	GetDashboardFunc      func(ctx context.Context, userID int64) (*dto.DashboardResponse, error)
}

func (m *MockUserService) GetUserProfile(ctx context.Context, userID int64) (*dto.UserProfileResponse, error) {
	if m.GetUserProfileFunc != nil {
		return m.GetUserProfileFunc(ctx, userID)
	}
	panic("MockUserService.GetUserProfileFunc not implemented")
}
func (m *MockUserService) UpdateOnboarding(ctx context.Context, userID int64, completed bool) (*dto.OnboardingResponse, error) {
	if m.UpdateOnboardingFunc != nil {
		return m.UpdateOnboardingFunc(ctx, userID, completed)
	}
	panic("MockUserService.UpdateOnboardingFunc not implemented")
}
func (m *MockUserService) UpdatePreferences(ctx context.Context, userID int64, req *dto.UpdatePreferencesRequest) (*dto.UserProfileResponse, error) {
	if m.UpdatePreferencesFunc != nil {
		return m.UpdatePreferencesFunc(ctx, userID, req)
	}
	panic("MockUserService.UpdatePreferencesFunc not implemented")
}
func (m *MockUserService) GetDashboard(ctx context.Context, userID int64) (*dto.DashboardResponse, error) {
	if m.GetDashboardFunc != nil {
		return m.GetDashboardFunc(ctx, userID)
	}
	panic("MockUserService.GetDashboardFunc not implemented")
}

// MockStreakService
type MockStreakService struct {
	GetStreakFunc func(ctx context.Context, userID int64) (*dto.StreakResponse, error)
	TouchFunc     func(ctx context.Context, userID int64) (*dto.StreakResponse, error)
}

func (m *MockStreakService) GetStreak(ctx context.Context, userID int64) (*dto.StreakResponse, error) {
	if m.GetStreakFunc != nil {
		return m.GetStreakFunc(ctx, userID)
	}
	panic("MockStreakService.GetStreakFunc not implemented")
}
func (m *MockStreakService) Touch(ctx context.Context, userID int64) (*dto.StreakResponse, error) {
	if m.TouchFunc != nil {
		return m.TouchFunc(ctx, userID)
	}
	panic("MockStreakService.TouchFunc not implemented")
}

// MockRecommendationService
type MockRecommendationService struct {
	GetRecommendedCoursesFunc func(ctx context.Context, userID int64, limit int) ([]dto.CourseResponse, error)
}

func (m *MockRecommendationService) GetRecommendedCourses(ctx context.Context, userID int64, limit int) ([]dto.CourseResponse, error) {
	if m.GetRecommendedCoursesFunc != nil {
		return m.GetRecommendedCoursesFunc(ctx, userID, limit)
	}
	panic("MockRecommendationService.GetRecommendedCoursesFunc not implemented")
}

// MockAssistantService
type MockAssistantService struct {
	AskFunc func(ctx context.Context, userID int64, req *dto.AssistantRequest) (*dto.AssistantResponse, error)
}

func (m *MockAssistantService) Ask(ctx context.Context, userID int64, req *dto.AssistantRequest) (*dto.AssistantResponse, error) {
	if m.AskFunc != nil {
		return m.AskFunc(ctx, userID, req)
	}
	panic("MockAssistantService.AskFunc not implemented")
}
