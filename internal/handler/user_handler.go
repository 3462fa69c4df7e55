package handler

import (
	"strconv"

	"edutech/internal/domain"
	"edutech/internal/dto"
	"edutech/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UserHandler serves profile, streak, recommendation, and dashboard routes.
type UserHandler struct {
	userService    service.UserService
	streakService  service.StreakService
	recommendation service.RecommendationService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(
	userService service.UserService,
	streakService service.StreakService,
	recommendation service.RecommendationService,
) *UserHandler {
	return &UserHandler{
		userService:    userService,
		streakService:  streakService,
		recommendation: recommendation,
	}
}

// GetProfile godoc
// @Summary Get my profile
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.UserProfileResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /user/profile [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.userService.GetUserProfile(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// UpdateProfile godoc
// @Summary Update my preferences
// @Description Applies only the provided fields
// @Tags users
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdatePreferencesRequest true "Preferences payload"
// @Success 200 {object} dto.UserProfileResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /user/profile [patch]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	var req dto.UpdatePreferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("invalid request body")
	}

	profile, err := h.userService.UpdatePreferences(c.Context(), userID, &req)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// UpdateOnboarding godoc
// @Summary Update my onboarding status
// @Tags users
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateOnboardingRequest true "Onboarding payload"
// @Success 200 {object} dto.OnboardingResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /user/onboarding [patch]
func (h *UserHandler) UpdateOnboarding(c *fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateOnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	if req.Completed == nil {
		return domain.ValidationErrors{domain.NewMissingFieldError("completed")}
	}

	resp, err := h.userService.UpdateOnboarding(c.Context(), userID, *req.Completed)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetStreak godoc
// @Summary Get my learning streak
// @Tags streak
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.StreakResponse
// @Failure 404 {object} middleware.ErrorResponse "Streak not found"
// @Router /user/streak [get]
func (h *UserHandler) GetStreak(c *fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	streak, err := h.streakService.GetStreak(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(streak)
}

// TouchStreak godoc
// @Summary Record learning activity
// @Description Touches the streak at the current time and returns the new state
// @Tags streak
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.StreakResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /user/streak [patch]
func (h *UserHandler) TouchStreak(c *fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	streak, err := h.streakService.Touch(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(streak)
}

// GetRecommendedCourses godoc
// @Summary List recommended courses
// @Description Returns unenrolled catalog courses in catalog order
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Param limit query int false "Maximum courses to return" default(3)
// @Success 200 {object} dto.RecommendationsResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /user/recommended-courses [get]
func (h *UserHandler) GetRecommendedCourses(c *fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.Query("limit", "3"))

	recs, err := h.recommendation.GetRecommendedCourses(c.Context(), userID, limit)
	if err != nil {
		return err
	}
	return c.JSON(dto.RecommendationsResponse{Recommendations: recs})
}

// GetDashboard godoc
// @Summary Get my dashboard
// @Description Aggregates enrolled courses, awards, streak, and recommendations
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /user/dashboard [get]
func (h *UserHandler) GetDashboard(c *fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	dashboard, err := h.userService.GetDashboard(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dashboard)
}
