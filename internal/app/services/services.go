package services

import (
	"context"

	"registrar/internal/app/models"
)

// StudentStore is the persistence surface the student operations need.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	UpdateName(ctx context.Context, id int64, name string) (int64, error)
	UpdateEmail(ctx context.Context, id int64, email string) (int64, error)
	UpdateNameAndEmail(ctx context.Context, id int64, name, email string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// DepartmentStore is the persistence surface for department resolution.
type DepartmentStore interface {
	Create(ctx context.Context, department *models.Department) error
	GetByPrefix(ctx context.Context, prefix string) (*models.Department, error)
}

// CourseStore is the persistence surface the course operations need.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByNaturalKey(ctx context.Context, courseNumber string, departmentID int64) (*models.Course, error)
	UpdateName(ctx context.Context, name, courseNumber string, departmentID int64) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// EnrollmentStore is the persistence surface the enrollment operations need.
type EnrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, studentID, courseID int64) (int64, error)
	GetAll(ctx context.Context) ([]models.Enrollment, error)
}

// TxRepositories is the set of stores visible to one logical operation.
// Inside InTx every store is bound to the same transaction.
type TxRepositories struct {
	Students    StudentStore
	Departments DepartmentStore
	Courses     CourseStore
	Enrollments EnrollmentStore
}

// Store gives services pooled access for single-statement operations and a
// transactional scope for lookup-then-write sequences. Wrapping the
// resolve-department, resolve-course, write sequence in one transaction
// closes the interleaving window between a lookup and its dependent write.
type Store interface {
	Repos() TxRepositories
	InTx(ctx context.Context, fn func(ctx context.Context, r TxRepositories) error) error
}
