package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"registrar/internal/app/models"
)

// Student error types
var (
	ErrStudentNotFound = errors.New("student not found")
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db Querier
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db Querier) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *StudentRepository) WithTx(tx pgx.Tx) *StudentRepository {
	return &StudentRepository{db: tx}
}

// Create inserts a new student and returns the generated identifier
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO student (name, email)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, student.Name, student.Email).Scan(&student.ID)
	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by identifier
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, name, email
		FROM student
		WHERE id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// UpdateName updates only the student's name
func (r *StudentRepository) UpdateName(ctx context.Context, id int64, name string) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `UPDATE student SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return 0, fmt.Errorf("error updating student name: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// UpdateEmail updates only the student's email
func (r *StudentRepository) UpdateEmail(ctx context.Context, id int64, email string) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `UPDATE student SET email = $1 WHERE id = $2`, email, id)
	if err != nil {
		return 0, fmt.Errorf("error updating student email: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// UpdateNameAndEmail updates both fields at once
func (r *StudentRepository) UpdateNameAndEmail(ctx context.Context, id int64, name, email string) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `UPDATE student SET name = $1, email = $2 WHERE id = $3`, name, email, id)
	if err != nil {
		return 0, fmt.Errorf("error updating student: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// Delete deletes a student by identifier. Returns the number of rows removed;
// zero is not an error.
func (r *StudentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM student WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("error deleting student: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
