package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"registrar/internal/app/models"
	"registrar/internal/app/models/dto"
	"registrar/internal/app/repositories"
	"registrar/internal/pkg/apperrors"
)

// StudentService handles student CRUD operations
type StudentService struct {
	store   Store
	timeout time.Duration
}

// NewStudentService creates a new student service instance
func NewStudentService(store Store, timeout time.Duration) *StudentService {
	return &StudentService{
		store:   store,
		timeout: timeout,
	}
}

// CreateStudent inserts a student and returns the generated identifier. The
// identifier is the only handle the caller will ever have on the row, so it
// comes straight from the insert.
func (s *StudentService) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (int64, error) {
	if strings.TrimSpace(req.Name) == "" {
		return 0, apperrors.NewInvalidInputError("invalid name")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	student := &models.Student{Name: req.Name, Email: req.Email}
	if err := s.store.Repos().Students.Create(ctx, student); err != nil {
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return student.ID, nil
}

// GetStudent retrieves a student by identifier
func (s *StudentService) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	student, err := s.store.Repos().Students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.NewNotFoundError("Could not find student")
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// UpdateStudent applies a partial update. Only the supplied fields change;
// a request with neither field is rejected. Matching zero rows is success,
// which also makes the update idempotent.
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req dto.UpdateStudentRequest) error {
	if req.Name == nil && req.Email == nil {
		return apperrors.NewInvalidInputError("No fields provided")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	students := s.store.Repos().Students

	var err error
	switch {
	case req.Name != nil && req.Email != nil:
		_, err = students.UpdateNameAndEmail(ctx, id, *req.Name, *req.Email)
	case req.Name != nil:
		_, err = students.UpdateName(ctx, id, *req.Name)
	default:
		_, err = students.UpdateEmail(ctx, id, *req.Email)
	}

	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	return nil
}

// DeleteStudent removes a student by identifier. Deleting a row that does
// not exist is indistinguishable from success; that policy is deliberate.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.store.Repos().Students.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	return nil
}
