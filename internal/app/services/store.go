package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"registrar/internal/app/repositories"
	"registrar/internal/db"
)

// pgxStore implements Store over a pgx connection pool. One connection is
// checked out per statement; InTx holds a single connection for the whole
// function.
type pgxStore struct {
	pool  *pgxpool.Pool
	repos *repositories.Repositories
}

// NewStore creates a Store backed by the given pool
func NewStore(pool *pgxpool.Pool) Store {
	return &pgxStore{
		pool:  pool,
		repos: repositories.NewRepositories(pool),
	}
}

func (s *pgxStore) Repos() TxRepositories {
	return TxRepositories{
		Students:    s.repos.StudentRepository,
		Departments: s.repos.DepartmentRepository,
		Courses:     s.repos.CourseRepository,
		Enrollments: s.repos.EnrollmentRepository,
	}
}

func (s *pgxStore) InTx(ctx context.Context, fn func(ctx context.Context, r TxRepositories) error) error {
	return db.WithTransaction(ctx, s.pool, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, TxRepositories{
			Students:    s.repos.StudentRepository.WithTx(tx),
			Departments: s.repos.DepartmentRepository.WithTx(tx),
			Courses:     s.repos.CourseRepository.WithTx(tx),
			Enrollments: s.repos.EnrollmentRepository.WithTx(tx),
		})
	})
}
