package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registrar/internal/app/models/dto"
	"registrar/internal/app/services"
	"registrar/internal/pkg/apperrors"
	"registrar/internal/testutil"
)

// seedEnrollmentFixture creates one student and one CSCI 301 course and
// returns the student id.
func seedEnrollmentFixture(t *testing.T, store *testutil.MemStore) int64 {
	t.Helper()

	students := services.NewStudentService(store, testTimeout)
	courses := services.NewCourseService(store, testTimeout)

	studentID, err := students.CreateStudent(context.Background(), dto.CreateStudentRequest{
		Name:  "Ada",
		Email: strPtr("a@x.com"),
	})
	require.NoError(t, err)

	require.NoError(t, courses.CreateCourse(context.Background(), dto.CreateCourseRequest{
		Name:       "Algorithms",
		Number:     "301",
		Department: "CSCI",
	}))

	return studentID
}

func TestEnrollmentService_CreateEnrollment(t *testing.T) {
	t.Run("links an existing student and course", func(t *testing.T) {
		store := testutil.NewMemStore()
		studentID := seedEnrollmentFixture(t, store)
		svc := services.NewEnrollmentService(store, testTimeout)

		err := svc.CreateEnrollment(context.Background(), dto.CreateEnrollmentRequest{
			StudentID:  studentID,
			Number:     "301",
			Department: "CSCI",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, store.EnrollmentCount())
	})

	t.Run("unknown department writes nothing", func(t *testing.T) {
		store := testutil.NewMemStore()
		studentID := seedEnrollmentFixture(t, store)
		svc := services.NewEnrollmentService(store, testTimeout)

		err := svc.CreateEnrollment(context.Background(), dto.CreateEnrollmentRequest{
			StudentID:  studentID,
			Number:     "301",
			Department: "MATH",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
		assert.Equal(t, 0, store.EnrollmentCount())
		// Enrollment never auto-creates a department
		assert.Equal(t, 1, store.DepartmentCount())
	})

	t.Run("unknown course writes nothing", func(t *testing.T) {
		store := testutil.NewMemStore()
		studentID := seedEnrollmentFixture(t, store)
		svc := services.NewEnrollmentService(store, testTimeout)

		err := svc.CreateEnrollment(context.Background(), dto.CreateEnrollmentRequest{
			StudentID:  studentID,
			Number:     "999",
			Department: "CSCI",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
		assert.Equal(t, 0, store.EnrollmentCount())
	})

	t.Run("studentID with no row fails the foreign key", func(t *testing.T) {
		store := testutil.NewMemStore()
		seedEnrollmentFixture(t, store)
		svc := services.NewEnrollmentService(store, testTimeout)

		err := svc.CreateEnrollment(context.Background(), dto.CreateEnrollmentRequest{
			StudentID:  9999,
			Number:     "301",
			Department: "CSCI",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidReference))
		assert.Equal(t, 0, store.EnrollmentCount())
	})

	t.Run("enrolling twice is a conflict", func(t *testing.T) {
		store := testutil.NewMemStore()
		studentID := seedEnrollmentFixture(t, store)
		svc := services.NewEnrollmentService(store, testTimeout)

		req := dto.CreateEnrollmentRequest{StudentID: studentID, Number: "301", Department: "CSCI"}
		require.NoError(t, svc.CreateEnrollment(context.Background(), req))

		err := svc.CreateEnrollment(context.Background(), req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrDuplicate))
		assert.Equal(t, 1, store.EnrollmentCount())
	})
}

func TestEnrollmentService_DeleteEnrollment(t *testing.T) {
	store := testutil.NewMemStore()
	studentID := seedEnrollmentFixture(t, store)
	svc := services.NewEnrollmentService(store, testTimeout)

	require.NoError(t, svc.CreateEnrollment(context.Background(), dto.CreateEnrollmentRequest{
		StudentID:  studentID,
		Number:     "301",
		Department: "CSCI",
	}))

	t.Run("removes the exact pair", func(t *testing.T) {
		err := svc.DeleteEnrollment(context.Background(), dto.DeleteEnrollmentRequest{
			StudentID:  studentID,
			Number:     "301",
			Department: "CSCI",
		})
		require.NoError(t, err)
		assert.Equal(t, 0, store.EnrollmentCount())
	})

	t.Run("no-match delete is success", func(t *testing.T) {
		err := svc.DeleteEnrollment(context.Background(), dto.DeleteEnrollmentRequest{
			StudentID:  studentID,
			Number:     "301",
			Department: "CSCI",
		})
		assert.NoError(t, err)
	})

	t.Run("unknown course is still a hard failure", func(t *testing.T) {
		err := svc.DeleteEnrollment(context.Background(), dto.DeleteEnrollmentRequest{
			StudentID:  studentID,
			Number:     "999",
			Department: "CSCI",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})
}

func TestEnrollmentService_ListEnrollments(t *testing.T) {
	t.Run("empty table yields an empty list", func(t *testing.T) {
		svc := services.NewEnrollmentService(testutil.NewMemStore(), testTimeout)

		enrollments, err := svc.ListEnrollments(context.Background())
		require.NoError(t, err)
		assert.Empty(t, enrollments)
	})

	t.Run("returns every pair", func(t *testing.T) {
		store := testutil.NewMemStore()
		studentID := seedEnrollmentFixture(t, store)
		svc := services.NewEnrollmentService(store, testTimeout)

		require.NoError(t, svc.CreateEnrollment(context.Background(), dto.CreateEnrollmentRequest{
			StudentID:  studentID,
			Number:     "301",
			Department: "CSCI",
		}))

		enrollments, err := svc.ListEnrollments(context.Background())
		require.NoError(t, err)
		require.Len(t, enrollments, 1)
		assert.Equal(t, studentID, enrollments[0].StudentID)
	})
}
