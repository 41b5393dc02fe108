package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"registrar/internal/app/models/dto"
	"registrar/internal/app/services"
	"registrar/internal/middleware"
)

// EnrollmentController handles enrollment-related requests
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// CreateEnrollment links a student to a course addressed by natural key
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "invalid inputs"),
		))
		return
	}

	if err := c.enrollmentService.CreateEnrollment(ctx, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.String(http.StatusOK, "Success")
}

// ListEnrollments returns every enrollment pair; an empty table is an empty
// list, not an error
func (c *EnrollmentController) ListEnrollments(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.ListEnrollments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	records := make([]dto.EnrollmentRecord, 0, len(enrollments))
	for _, enrollment := range enrollments {
		records = append(records, dto.EnrollmentRecord{
			CourseID:  enrollment.CourseID,
			StudentID: enrollment.StudentID,
		})
	}

	ctx.JSON(http.StatusOK, dto.EnrollmentListResponse{Enrollments: records})
}

// DeleteEnrollment removes the exact (student, course) pair
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	var req dto.DeleteEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "invalid inputs"),
		))
		return
	}

	if err := c.enrollmentService.DeleteEnrollment(ctx, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.String(http.StatusOK, "Success")
}
