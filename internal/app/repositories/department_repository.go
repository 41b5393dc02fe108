package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"registrar/internal/app/models"
)

// Department error types
var (
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentAlreadyExists = errors.New("department with this prefix already exists")
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db Querier
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db Querier) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *DepartmentRepository) WithTx(tx pgx.Tx) *DepartmentRepository {
	return &DepartmentRepository{db: tx}
}

// Create creates a department row for the prefix. Concurrent creates for the
// same unseen prefix converge on one row instead of aborting the transaction.
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO department (prefix)
		VALUES ($1)
		ON CONFLICT ON CONSTRAINT department_prefix_key
		DO UPDATE SET prefix = EXCLUDED.prefix
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, department.Prefix).Scan(&department.ID)
	if err != nil {
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}

// GetByPrefix retrieves a department by its 4-character prefix
func (r *DepartmentRepository) GetByPrefix(ctx context.Context, prefix string) (*models.Department, error) {
	query := `
		SELECT id, prefix
		FROM department
		WHERE prefix = $1
	`

	var department models.Department
	err := r.db.QueryRow(ctx, query, prefix).Scan(
		&department.ID,
		&department.Prefix,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}
