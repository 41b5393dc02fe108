package models

// PrefixLength is the fixed length of a department prefix (e.g. "CSCI").
const PrefixLength = 4

// Department represents a department owning courses. Rows are created
// implicitly the first time a course references an unseen prefix.
type Department struct {
	ID     int64  `json:"id" db:"id" example:"1"`
	Prefix string `json:"prefix" db:"prefix" example:"CSCI"`
}
