package models

// Enrollment links a student to a course. The pair is the identity; there is
// no surrogate id of its own.
type Enrollment struct {
	StudentID int64 `json:"studentID" db:"student_id" example:"1"`
	CourseID  int64 `json:"courseID" db:"course_id" example:"1"`
}
