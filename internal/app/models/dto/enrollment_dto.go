package dto

// CreateEnrollmentRequest links a student to a course addressed by natural key
type CreateEnrollmentRequest struct {
	StudentID  int64  `json:"studentID" binding:"required"`
	Number     string `json:"number" binding:"required"`
	Department string `json:"department" binding:"required"`
}

// DeleteEnrollmentRequest removes the exact (student, course) pair
type DeleteEnrollmentRequest struct {
	StudentID  int64  `json:"studentID" binding:"required"`
	Number     string `json:"number" binding:"required"`
	Department string `json:"department" binding:"required"`
}
