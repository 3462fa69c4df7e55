package handler

import (
	"edutech/internal/domain"
	"edutech/internal/dto"
	"edutech/internal/service"
	"edutech/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AssistantHandler serves the AI course assistant.
type AssistantHandler struct {
	assistantService service.AssistantService
	validator        *validation.Validator
}

// NewAssistantHandler creates a new AssistantHandler instance.
func NewAssistantHandler(assistantService service.AssistantService, validator *validation.Validator) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService, validator: validator}
}

// Ask godoc
// @Summary Ask the course assistant
// @Description Forwards the query to the assistant; responses are not cached
// @Tags assistant
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.AssistantRequest true "Assistant query"
// @Success 200 {object} dto.AssistantResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 503 {object} middleware.ErrorResponse "Assistant unavailable"
// @Router /ai/assistant [post]
func (h *AssistantHandler) Ask(c *fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	var req dto.AssistantRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	if errs := h.validator.ValidateAssistantRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.assistantService.Ask(c.Context(), userID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
