package models

// Course represents a course offered by a department. Clients address a
// course by its natural key (course number, department prefix); the id is
// internal.
type Course struct {
	ID           int64  `json:"id" db:"id" example:"1"`
	Name         string `json:"name" db:"name" example:"Algorithms"`
	CourseNumber string `json:"courseNumber" db:"course_number" example:"301"`
	DepartmentID int64  `json:"departmentId" db:"department_id" example:"1"`

	// Relation (populated when needed)
	Department *Department `json:"department,omitempty"`
}
