package services

import (
	"context"
	"errors"
	"fmt"

	"registrar/internal/app/models"
	"registrar/internal/app/repositories"
	"registrar/internal/pkg/apperrors"
)

// resolveDepartment turns a client-supplied prefix into a department row.
// Auto-creation is permitted only for course creation; every other operation
// treats an unknown prefix as a hard failure.
func resolveDepartment(ctx context.Context, departments DepartmentStore, prefix string, autoCreate bool) (*models.Department, error) {
	if len(prefix) != models.PrefixLength {
		return nil, apperrors.NewInvalidInputError("invalid inputs: department prefix must be exactly 4 characters")
	}

	department, err := departments.GetByPrefix(ctx, prefix)
	if err == nil {
		return department, nil
	}

	if !errors.Is(err, repositories.ErrDepartmentNotFound) {
		return nil, fmt.Errorf("error resolving department: %w", err)
	}

	if !autoCreate {
		return nil, apperrors.NewNotFoundError("department not found")
	}

	created := &models.Department{Prefix: prefix}
	if err := departments.Create(ctx, created); err != nil {
		return nil, fmt.Errorf("error creating department: %w", err)
	}

	return created, nil
}
