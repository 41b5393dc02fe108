package dto

import "time"

// APIResponse is the standard JSON envelope for endpoints that return data.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// StudentResponse is the payload of a student read.
type StudentResponse struct {
	Name  string  `json:"name" example:"Ada Lovelace"`
	Email *string `json:"email" example:"ada@example.edu"`
}

// CourseResponse is the payload of a course natural-key lookup.
type CourseResponse struct {
	Name string `json:"name" example:"Algorithms"`
}

// EnrollmentRecord is a single (course, student) pair in the enrollment list.
type EnrollmentRecord struct {
	CourseID  int64 `json:"courseID" example:"7"`
	StudentID int64 `json:"studentID" example:"3"`
}

// EnrollmentListResponse is the payload of the full enrollment listing.
type EnrollmentListResponse struct {
	Enrollments []EnrollmentRecord `json:"enrollments"`
}
