package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"registrar/internal/app/models/dto"
	"registrar/internal/app/services"
	"registrar/internal/middleware"
)

// CourseController handles course-related requests
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse creates a course, creating its department on first sight of
// the prefix
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "invalid inputs"),
		))
		return
	}

	if err := c.courseService.CreateCourse(ctx, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.String(http.StatusOK, "Success")
}

// FindCourse looks up a single course by natural key. A POST body carries
// the key; the operation reads nothing but the course name.
func (c *CourseController) FindCourse(ctx *gin.Context) {
	var req dto.FindCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Both courseID and departmentID are required"),
		))
		return
	}

	course, err := c.courseService.FindCourse(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CourseResponse{Name: course.Name})
}

// UpdateCourse renames the course matching the natural key
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "invalid inputs"),
		))
		return
	}

	if err := c.courseService.UpdateCourse(ctx, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.String(http.StatusOK, "Success")
}

// DeleteCourse deletes the course matching the natural key
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	var req dto.DeleteCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "invalid inputs"),
		))
		return
	}

	if err := c.courseService.DeleteCourse(ctx, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.String(http.StatusOK, "Success")
}
