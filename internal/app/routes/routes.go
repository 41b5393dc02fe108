package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"registrar/internal/app/controllers"
)

// SetupRouter configures all application routes. Paths are mounted at the
// root, matching the interface clients already use.
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
) {
	// Root banner (the legacy service rendered an HTML page here)
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "registrar: student, course and enrollment records")
	})

	students := router.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("/:id", studentController.GetStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	courses := router.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.POST("/find", courseController.FindCourse)
		courses.PUT("", courseController.UpdateCourse)
		courses.DELETE("", courseController.DeleteCourse)
	}

	enrollments := router.Group("/enrollments")
	{
		enrollments.POST("", enrollmentController.CreateEnrollment)
		enrollments.GET("", enrollmentController.ListEnrollments)
		enrollments.DELETE("", enrollmentController.DeleteEnrollment)
	}

	// Health check endpoint
	router.GET("/api/v1/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
