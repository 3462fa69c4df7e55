package handler

import (
	"strconv"

	"edutech/internal/domain"
	"edutech/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CourseHandler serves catalog reads.
type CourseHandler struct {
	courseService service.CourseService
}

// NewCourseHandler creates a new CourseHandler instance.
func NewCourseHandler(courseService service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// GetCourses godoc
// @Summary List the course catalog
// @Description Returns all courses in catalog order
// @Tags courses
// @Produce json
// @Success 200 {array} dto.CourseResponse
// @Router /courses [get]
func (h *CourseHandler) GetCourses(c *fiber.Ctx) error {
	courses, err := h.courseService.GetAllCourses(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(courses)
}

// GetCourse godoc
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.CourseResponse
// @Failure 404 {object} middleware.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("id", c.Params("id"))}
	}

	course, err := h.courseService.GetCourse(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(course)
}

// GetCoursesByCategory godoc
// @Summary List courses in a category
// @Description Returns courses whose category exactly matches; unknown categories yield an empty list
// @Tags courses
// @Produce json
// @Param category path string true "Category name"
// @Success 200 {array} dto.CourseResponse
// @Router /courses/category/{category} [get]
func (h *CourseHandler) GetCoursesByCategory(c *fiber.Ctx) error {
	category, err := urlDecodeParam(c, "category")
	if err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("category", c.Params("category"))}
	}

	courses, err := h.courseService.GetCoursesByCategory(c.Context(), category)
	if err != nil {
		return err
	}
	return c.JSON(courses)
}
