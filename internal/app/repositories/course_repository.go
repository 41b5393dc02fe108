package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"registrar/internal/app/models"
)

// Course error types
var (
	ErrCourseNotFound = errors.New("course not found")
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db Querier
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db Querier) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *CourseRepository) WithTx(tx pgx.Tx) *CourseRepository {
	return &CourseRepository{db: tx}
}

// Create inserts a new course row keyed to a resolved department identifier
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO course (name, course_number, department_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, course.Name, course.CourseNumber, course.DepartmentID).Scan(&course.ID)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByNaturalKey retrieves a course by (course number, department id)
func (r *CourseRepository) GetByNaturalKey(ctx context.Context, courseNumber string, departmentID int64) (*models.Course, error) {
	query := `
		SELECT id, name, course_number, department_id
		FROM course
		WHERE course_number = $1 AND department_id = $2
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, courseNumber, departmentID).Scan(
		&course.ID,
		&course.Name,
		&course.CourseNumber,
		&course.DepartmentID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// UpdateName updates the course name where the natural key matches. Zero
// matched rows is reported to the caller, not treated as an error here.
func (r *CourseRepository) UpdateName(ctx context.Context, name, courseNumber string, departmentID int64) (int64, error) {
	query := `
		UPDATE course
		SET name = $1
		WHERE course_number = $2 AND department_id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, name, courseNumber, departmentID)
	if err != nil {
		return 0, fmt.Errorf("error updating course: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// Delete deletes a course by its resolved identifier
func (r *CourseRepository) Delete(ctx context.Context, id int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM course WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("error deleting course: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
