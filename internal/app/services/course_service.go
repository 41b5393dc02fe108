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

// CourseService handles course operations addressed by natural key
type CourseService struct {
	store   Store
	timeout time.Duration
}

// NewCourseService creates a new course service instance
func NewCourseService(store Store, timeout time.Duration) *CourseService {
	return &CourseService{
		store:   store,
		timeout: timeout,
	}
}

// CreateCourse resolves the department (creating it on first sight of the
// prefix) and inserts the course, both inside one transaction.
func (s *CourseService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) error {
	return s.store.InTx(ctx, func(ctx context.Context, r TxRepositories) error {
		department, err := resolveDepartment(ctx, r.Departments, req.Department, true)
		if err != nil {
			return err
		}

		course := &models.Course{
			Name:         req.Name,
			CourseNumber: req.Number,
			DepartmentID: department.ID,
		}
		if err := r.Courses.Create(ctx, course); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return &apperrors.CustomError{
					Err:     apperrors.ErrDuplicate,
					Cause:   err,
					Message: "course with this number already exists in the department",
				}
			}
			return fmt.Errorf("error creating course: %w", err)
		}

		return nil
	})
}

// FindCourse looks up a single course by (number, department prefix)
func (s *CourseService) FindCourse(ctx context.Context, req dto.FindCourseRequest) (*models.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	r := s.store.Repos()

	department, err := resolveDepartment(ctx, r.Departments, req.Department, false)
	if err != nil {
		return nil, err
	}

	course, err := r.Courses.GetByNaturalKey(ctx, req.Number, department.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.NewNotFoundError("Could not find any matching courses")
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// UpdateCourse renames the course matching the natural key. A key that
// matches nothing is success, same policy as student deletion.
func (s *CourseService) UpdateCourse(ctx context.Context, req dto.UpdateCourseRequest) error {
	return s.store.InTx(ctx, func(ctx context.Context, r TxRepositories) error {
		department, err := resolveDepartment(ctx, r.Departments, req.Department, false)
		if err != nil {
			return err
		}

		if _, err := r.Courses.UpdateName(ctx, req.Name, req.Number, department.ID); err != nil {
			return fmt.Errorf("error updating course: %w", err)
		}

		return nil
	})
}

// DeleteCourse resolves the natural key to a course identifier and deletes
// that row. Either lookup missing is a hard failure.
func (s *CourseService) DeleteCourse(ctx context.Context, req dto.DeleteCourseRequest) error {
	return s.store.InTx(ctx, func(ctx context.Context, r TxRepositories) error {
		department, err := resolveDepartment(ctx, r.Departments, req.Department, false)
		if err != nil {
			return err
		}

		course, err := r.Courses.GetByNaturalKey(ctx, req.Number, department.ID)
		if err != nil {
			if errors.Is(err, repositories.ErrCourseNotFound) {
				return apperrors.NewNotFoundError("Could not find any matching courses")
			}
			return fmt.Errorf("error resolving course: %w", err)
		}

		if _, err := r.Courses.Delete(ctx, course.ID); err != nil {
			return fmt.Errorf("error deleting course: %w", err)
		}

		return nil
	})
}
