package models

// Student defines the student model based on the 'student' table
type Student struct {
	ID    int64   `json:"id" db:"id" example:"1"`
	Name  string  `json:"name" db:"name" example:"Ada Lovelace"`
	Email *string `json:"email" db:"email" example:"ada@example.edu"` // Nullable
}
