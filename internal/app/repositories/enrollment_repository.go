package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"registrar/internal/app/models"
)

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db Querier
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db Querier) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *EnrollmentRepository) WithTx(tx pgx.Tx) *EnrollmentRepository {
	return &EnrollmentRepository{db: tx}
}

// Create inserts an enrollment pair. Referential integrity is the schema's
// job: a studentID with no matching row fails the foreign key constraint.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollment (student_id, course_id)
		VALUES ($1, $2)
	`

	_, err := r.db.Exec(ctx, query, enrollment.StudentID, enrollment.CourseID)
	if err != nil {
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// Delete removes the exact (student, course) pair. Returns rows removed;
// zero is not an error.
func (r *EnrollmentRepository) Delete(ctx context.Context, studentID, courseID int64) (int64, error) {
	query := `
		DELETE FROM enrollment
		WHERE student_id = $1 AND course_id = $2
	`

	cmdTag, err := r.db.Exec(ctx, query, studentID, courseID)
	if err != nil {
		return 0, fmt.Errorf("error deleting enrollment: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// GetAll retrieves every enrollment pair. The table is expected to stay
// small; no pagination.
func (r *EnrollmentRepository) GetAll(ctx context.Context) ([]models.Enrollment, error) {
	query := `
		SELECT student_id, course_id
		FROM enrollment
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		if err := rows.Scan(
			&enrollment.StudentID,
			&enrollment.CourseID,
		); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}
