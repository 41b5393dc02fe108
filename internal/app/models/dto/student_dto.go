package dto

// CreateStudentRequest represents a student creation request
type CreateStudentRequest struct {
	Name  string  `json:"name" binding:"required"`
	Email *string `json:"email"`
}

// UpdateStudentRequest represents a partial student update. At least one
// field must be present; the handler rejects the all-absent shape.
type UpdateStudentRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
