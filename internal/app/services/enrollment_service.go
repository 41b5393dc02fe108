package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"registrar/internal/app/models"
	"registrar/internal/app/models/dto"
	"registrar/internal/app/repositories"
	"registrar/internal/pkg/apperrors"
	"registrar/internal/pkg/dberrors"
)

// EnrollmentService links students to courses
type EnrollmentService struct {
	store   Store
	timeout time.Duration
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(store Store, timeout time.Duration) *EnrollmentService {
	return &EnrollmentService{
		store:   store,
		timeout: timeout,
	}
}

// CreateEnrollment resolves the course natural key and inserts the pair.
// The student identifier is not pre-checked; the enrollment table's foreign
// key rejects an id with no matching student row.
func (s *EnrollmentService) CreateEnrollment(ctx context.Context, req dto.CreateEnrollmentRequest) error {
	return s.store.InTx(ctx, func(ctx context.Context, r TxRepositories) error {
		course, err := s.resolveCourse(ctx, r, req.Number, req.Department)
		if err != nil {
			return err
		}

		enrollment := &models.Enrollment{
			StudentID: req.StudentID,
			CourseID:  course.ID,
		}
		if err := r.Enrollments.Create(ctx, enrollment); err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return &apperrors.CustomError{
					Err:     apperrors.ErrInvalidReference,
					Cause:   err,
					Message: "studentID does not reference an existing student",
				}
			}
			if dberrors.IsUniqueViolation(err) {
				return &apperrors.CustomError{
					Err:     apperrors.ErrDuplicate,
					Cause:   err,
					Message: "student is already enrolled in this course",
				}
			}
			return fmt.Errorf("error creating enrollment: %w", err)
		}

		return nil
	})
}

// DeleteEnrollment removes the exact (student, course) pair. A pair that was
// never enrolled deletes zero rows and still succeeds.
func (s *EnrollmentService) DeleteEnrollment(ctx context.Context, req dto.DeleteEnrollmentRequest) error {
	return s.store.InTx(ctx, func(ctx context.Context, r TxRepositories) error {
		course, err := s.resolveCourse(ctx, r, req.Number, req.Department)
		if err != nil {
			return err
		}

		if _, err := r.Enrollments.Delete(ctx, req.StudentID, course.ID); err != nil {
			return fmt.Errorf("error deleting enrollment: %w", err)
		}

		return nil
	})
}

// ListEnrollments returns every enrollment pair. An empty table yields an
// empty list, not an error.
func (s *EnrollmentService) ListEnrollments(ctx context.Context) ([]models.Enrollment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	enrollments, err := s.store.Repos().Enrollments.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}

	return enrollments, nil
}

// resolveCourse resolves prefix then natural key, with no department
// auto-creation on either path.
func (s *EnrollmentService) resolveCourse(ctx context.Context, r TxRepositories, number, prefix string) (*models.Course, error) {
	department, err := resolveDepartment(ctx, r.Departments, prefix, false)
	if err != nil {
		return nil, err
	}

	course, err := r.Courses.GetByNaturalKey(ctx, number, department.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.NewNotFoundError("Could not find any matching courses")
		}
		return nil, fmt.Errorf("error resolving course: %w", err)
	}

	return course, nil
}
