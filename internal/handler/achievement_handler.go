package handler

import (
	"edutech/internal/domain"
	"edutech/internal/dto"
	"edutech/internal/service"
	"edutech/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AchievementHandler serves badge definitions and awards.
type AchievementHandler struct {
	achievementService service.AchievementService
	validator          *validation.Validator
}

// NewAchievementHandler creates a new AchievementHandler instance.
func NewAchievementHandler(achievementService service.AchievementService, validator *validation.Validator) *AchievementHandler {
	return &AchievementHandler{achievementService: achievementService, validator: validator}
}

// GetAchievements godoc
// @Summary List all badge definitions
// @Tags achievements
// @Produce json
// @Success 200 {array} dto.AchievementResponse
// @Router /achievements [get]
func (h *AchievementHandler) GetAchievements(c *fiber.Ctx) error {
	achievements, err := h.achievementService.ListAchievements(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(achievements)
}

// GetUserAchievements godoc
// @Summary List my awards
// @Description Returns the authenticated user's awards joined with their badges
// @Tags achievements
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} dto.UserAchievementResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /user/achievements [get]
func (h *AchievementHandler) GetUserAchievements(c *fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	awards, err := h.achievementService.ListUserAchievements(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(awards)
}

// Award godoc
// @Summary Award a badge to myself
// @Description Creates an award record; repeat awards are allowed
// @Tags achievements
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.AwardRequest true "Award payload"
// @Success 201 {object} dto.UserAchievementResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse "Achievement not found"
// @Router /user/achievements [post]
func (h *AchievementHandler) Award(c *fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	var req dto.AwardRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	if errs := h.validator.ValidateAwardRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.achievementService.Award(c.Context(), userID, req.AchievementID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
