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

func TestCourseService_CreateCourse(t *testing.T) {
	t.Run("unseen prefix creates exactly one department", func(t *testing.T) {
		store := testutil.NewMemStore()
		svc := services.NewCourseService(store, testTimeout)

		err := svc.CreateCourse(context.Background(), dto.CreateCourseRequest{
			Name:       "Algorithms",
			Number:     "301",
			Department: "CSCI",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, store.DepartmentCount())
		assert.Equal(t, 1, store.CourseCount())

		// A second course with the same prefix reuses the department row
		err = svc.CreateCourse(context.Background(), dto.CreateCourseRequest{
			Name:       "Operating Systems",
			Number:     "350",
			Department: "CSCI",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, store.DepartmentCount())
		assert.Equal(t, 2, store.CourseCount())
	})

	t.Run("wrong-length prefix fails and persists nothing", func(t *testing.T) {
		store := testutil.NewMemStore()
		svc := services.NewCourseService(store, testTimeout)

		err := svc.CreateCourse(context.Background(), dto.CreateCourseRequest{
			Name:       "Algorithms",
			Number:     "301",
			Department: "CS",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
		assert.Equal(t, 0, store.DepartmentCount())
		assert.Equal(t, 0, store.CourseCount())
	})

	t.Run("duplicate natural key is rejected", func(t *testing.T) {
		store := testutil.NewMemStore()
		svc := services.NewCourseService(store, testTimeout)

		req := dto.CreateCourseRequest{Name: "Algorithms", Number: "301", Department: "CSCI"}
		require.NoError(t, svc.CreateCourse(context.Background(), req))

		err := svc.CreateCourse(context.Background(), req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrDuplicate))
	})
}

func TestCourseService_FindCourse(t *testing.T) {
	store := testutil.NewMemStore()
	courses := services.NewCourseService(store, testTimeout)

	require.NoError(t, courses.CreateCourse(context.Background(), dto.CreateCourseRequest{
		Name:       "Algorithms",
		Number:     "301",
		Department: "CSCI",
	}))

	t.Run("resolves by natural key", func(t *testing.T) {
		course, err := courses.FindCourse(context.Background(), dto.FindCourseRequest{
			Number:     "301",
			Department: "CSCI",
		})
		require.NoError(t, err)
		assert.Equal(t, "Algorithms", course.Name)
	})

	t.Run("unknown department is not auto-created", func(t *testing.T) {
		_, err := courses.FindCourse(context.Background(), dto.FindCourseRequest{
			Number:     "301",
			Department: "MATH",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
		assert.Equal(t, 1, store.DepartmentCount())
	})

	t.Run("unknown number in a known department", func(t *testing.T) {
		_, err := courses.FindCourse(context.Background(), dto.FindCourseRequest{
			Number:     "999",
			Department: "CSCI",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})
}

func TestCourseService_UpdateCourse(t *testing.T) {
	store := testutil.NewMemStore()
	svc := services.NewCourseService(store, testTimeout)

	require.NoError(t, svc.CreateCourse(context.Background(), dto.CreateCourseRequest{
		Name:       "Algorithms",
		Number:     "301",
		Department: "CSCI",
	}))

	t.Run("renames the matching course", func(t *testing.T) {
		err := svc.UpdateCourse(context.Background(), dto.UpdateCourseRequest{
			Name:       "Advanced Algorithms",
			Number:     "301",
			Department: "CSCI",
		})
		require.NoError(t, err)

		course, err := svc.FindCourse(context.Background(), dto.FindCourseRequest{
			Number:     "301",
			Department: "CSCI",
		})
		require.NoError(t, err)
		assert.Equal(t, "Advanced Algorithms", course.Name)
	})

	t.Run("zero matched rows is success", func(t *testing.T) {
		err := svc.UpdateCourse(context.Background(), dto.UpdateCourseRequest{
			Name:       "Ghost Course",
			Number:     "999",
			Department: "CSCI",
		})
		assert.NoError(t, err)
	})

	t.Run("unknown department is a hard failure", func(t *testing.T) {
		err := svc.UpdateCourse(context.Background(), dto.UpdateCourseRequest{
			Name:       "Calculus",
			Number:     "101",
			Department: "MATH",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})
}

func TestCourseService_DeleteCourse(t *testing.T) {
	store := testutil.NewMemStore()
	svc := services.NewCourseService(store, testTimeout)

	require.NoError(t, svc.CreateCourse(context.Background(), dto.CreateCourseRequest{
		Name:       "Algorithms",
		Number:     "301",
		Department: "CSCI",
	}))

	t.Run("unknown course fails not-found", func(t *testing.T) {
		err := svc.DeleteCourse(context.Background(), dto.DeleteCourseRequest{
			Number:     "999",
			Department: "CSCI",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
		assert.Equal(t, 1, store.CourseCount())
	})

	t.Run("deletes by resolved identifier", func(t *testing.T) {
		err := svc.DeleteCourse(context.Background(), dto.DeleteCourseRequest{
			Number:     "301",
			Department: "CSCI",
		})
		require.NoError(t, err)
		assert.Equal(t, 0, store.CourseCount())
	})

	t.Run("short prefix is invalid input", func(t *testing.T) {
		err := svc.DeleteCourse(context.Background(), dto.DeleteCourseRequest{
			Number:     "301",
			Department: "CS",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	})
}
