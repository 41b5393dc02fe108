package dto

// CreateCourseRequest represents a course creation request
type CreateCourseRequest struct {
	Name       string `json:"name" binding:"required"`
	Number     string `json:"number" binding:"required"`
	Department string `json:"department" binding:"required"`
}

// FindCourseRequest represents a course natural-key lookup request
type FindCourseRequest struct {
	Number     string `json:"number" binding:"required"`
	Department string `json:"department" binding:"required"`
}

// UpdateCourseRequest represents a course name update by natural key
type UpdateCourseRequest struct {
	Name       string `json:"name" binding:"required"`
	Number     string `json:"number" binding:"required"`
	Department string `json:"department" binding:"required"`
}

// DeleteCourseRequest represents a course deletion by natural key
type DeleteCourseRequest struct {
	Number     string `json:"number" binding:"required"`
	Department string `json:"department" binding:"required"`
}
