package handler

import (
	"strconv"

	"edutech/internal/domain"
	"edutech/internal/dto"
	"edutech/internal/service"
	"edutech/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// EnrollmentHandler serves a user's course enrollments and progress.
type EnrollmentHandler struct {
	enrollmentService service.EnrollmentService
	validator         *validation.Validator
}

// NewEnrollmentHandler creates a new EnrollmentHandler instance.
func NewEnrollmentHandler(enrollmentService service.EnrollmentService, validator *validation.Validator) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService, validator: validator}
}

// GetUserCourses godoc
// @Summary List my enrollments
// @Description Returns the authenticated user's enrollments joined with their courses
// @Tags user-courses
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} dto.EnrolledCourseResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /user/courses [get]
func (h *EnrollmentHandler) GetUserCourses(c *fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	courses, err := h.enrollmentService.ListUserCourses(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(courses)
}

// Enroll godoc
// @Summary Enroll in a course
// @Description Creates a zero-progress enrollment; re-enrolling creates another record
// @Tags user-courses
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.EnrollRequest true "Enrollment payload"
// @Success 201 {object} dto.EnrollmentResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse "Course not found"
// @Router /user/courses [post]
func (h *EnrollmentHandler) Enroll(c *fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	var req dto.EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	if errs := h.validator.ValidateEnrollRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.enrollmentService.Enroll(c.Context(), userID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateProgress godoc
// @Summary Update enrollment progress
// @Description Sets progress (integer 0-100); completion is derived, and the user's streak is touched
// @Tags user-courses
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "Enrollment ID"
// @Param request body dto.UpdateProgressRequest true "Progress payload"
// @Success 200 {object} dto.EnrollmentResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse "Enrollment not found"
// @Router /user/courses/{id}/progress [patch]
func (h *EnrollmentHandler) UpdateProgress(c *fiber.Ctx) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	enrollmentID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("id", c.Params("id"))}
	}

	var req dto.UpdateProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	if errs := h.validator.ValidateProgress(req.Progress); len(errs) > 0 {
		return errs
	}

	resp, err := h.enrollmentService.UpdateProgress(c.Context(), userID, enrollmentID, int(req.Progress))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
