package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registrar/internal/app/models/dto"
	"registrar/internal/app/services"
	"registrar/internal/pkg/apperrors"
	"registrar/internal/testutil"
)

const testTimeout = 2 * time.Second

func strPtr(s string) *string { return &s }

func TestStudentService_CreateStudent(t *testing.T) {
	store := testutil.NewMemStore()
	svc := services.NewStudentService(store, testTimeout)

	t.Run("returns a fresh identifier that resolves back", func(t *testing.T) {
		id, err := svc.CreateStudent(context.Background(), dto.CreateStudentRequest{
			Name:  "Ada",
			Email: strPtr("a@x.com"),
		})
		require.NoError(t, err)
		require.NotZero(t, id)

		student, err := svc.GetStudent(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Ada", student.Name)
		require.NotNil(t, student.Email)
		assert.Equal(t, "a@x.com", *student.Email)
	})

	t.Run("missing name fails and persists nothing", func(t *testing.T) {
		store := testutil.NewMemStore()
		svc := services.NewStudentService(store, testTimeout)

		_, err := svc.CreateStudent(context.Background(), dto.CreateStudentRequest{Name: "   "})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
		assert.Equal(t, 0, store.StudentCount())
	})

	t.Run("email is optional", func(t *testing.T) {
		id, err := svc.CreateStudent(context.Background(), dto.CreateStudentRequest{Name: "Grace"})
		require.NoError(t, err)

		student, err := svc.GetStudent(context.Background(), id)
		require.NoError(t, err)
		assert.Nil(t, student.Email)
	})
}

func TestStudentService_GetStudent_NotFound(t *testing.T) {
	svc := services.NewStudentService(testutil.NewMemStore(), testTimeout)

	_, err := svc.GetStudent(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestStudentService_UpdateStudent(t *testing.T) {
	store := testutil.NewMemStore()
	svc := services.NewStudentService(store, testTimeout)

	id, err := svc.CreateStudent(context.Background(), dto.CreateStudentRequest{
		Name:  "Ada",
		Email: strPtr("a@x.com"),
	})
	require.NoError(t, err)

	t.Run("no fields provided is rejected", func(t *testing.T) {
		err := svc.UpdateStudent(context.Background(), id, dto.UpdateStudentRequest{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("email-only update leaves name unchanged", func(t *testing.T) {
		err := svc.UpdateStudent(context.Background(), id, dto.UpdateStudentRequest{
			Email: strPtr("ada@newhost.org"),
		})
		require.NoError(t, err)

		student, err := svc.GetStudent(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Ada", student.Name)
		assert.Equal(t, "ada@newhost.org", *student.Email)
	})

	t.Run("name-only update leaves email unchanged", func(t *testing.T) {
		err := svc.UpdateStudent(context.Background(), id, dto.UpdateStudentRequest{
			Name: strPtr("Ada Lovelace"),
		})
		require.NoError(t, err)

		student, err := svc.GetStudent(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", student.Name)
		assert.Equal(t, "ada@newhost.org", *student.Email)
	})

	t.Run("updating both fields is idempotent", func(t *testing.T) {
		req := dto.UpdateStudentRequest{
			Name:  strPtr("A. Lovelace"),
			Email: strPtr("al@x.com"),
		}
		require.NoError(t, svc.UpdateStudent(context.Background(), id, req))
		require.NoError(t, svc.UpdateStudent(context.Background(), id, req))

		student, err := svc.GetStudent(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "A. Lovelace", student.Name)
		assert.Equal(t, "al@x.com", *student.Email)
	})

	t.Run("update of a missing student is a silent no-op", func(t *testing.T) {
		err := svc.UpdateStudent(context.Background(), 9999, dto.UpdateStudentRequest{
			Name: strPtr("Nobody"),
		})
		assert.NoError(t, err)
	})
}

func TestStudentService_DeleteStudent(t *testing.T) {
	store := testutil.NewMemStore()
	svc := services.NewStudentService(store, testTimeout)

	id, err := svc.CreateStudent(context.Background(), dto.CreateStudentRequest{Name: "Ada"})
	require.NoError(t, err)

	t.Run("deletes an existing row", func(t *testing.T) {
		require.NoError(t, svc.DeleteStudent(context.Background(), id))
		assert.Equal(t, 0, store.StudentCount())
	})

	t.Run("deleting a non-existent student is success", func(t *testing.T) {
		assert.NoError(t, svc.DeleteStudent(context.Background(), id))
	})
}

func TestStudentService_StoreFailureSurfacesAsError(t *testing.T) {
	store := testutil.NewMemStore()
	store.Err = errors.New("connection reset")
	svc := services.NewStudentService(store, testTimeout)

	_, err := svc.CreateStudent(context.Background(), dto.CreateStudentRequest{Name: "Ada"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, apperrors.ErrInvalidInput))
	assert.False(t, errors.Is(err, apperrors.ErrNotFound))
}
