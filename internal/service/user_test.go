package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dsemenov/linkmark/internal/apierrors"
	"github.com/dsemenov/linkmark/internal/mocks"
	"github.com/dsemenov/linkmark/internal/model"
	"github.com/dsemenov/linkmark/internal/testutil"
)

func strPtr(s string) *string { return &s }

func TestUser_GetByID(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	lg := testutil.MakeNoopLogger()

	userStore.On("GetByID", mock.Anything, int64(1)).Return(model.User{ID: 1, Email: "a@b.com"}, nil)

	s := NewUser(userStore, lg)

	user, err := s.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)
}

func TestUser_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	lg := testutil.MakeNoopLogger()

	userStore.On("GetByID", mock.Anything, int64(404)).Return(model.User{}, model.ErrNotFound)

	s := NewUser(userStore, lg)

	_, err := s.GetByID(ctx, 404)
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
}

func TestUser_Update_Partial(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	lg := testutil.MakeNoopLogger()

	params := model.UpdateUserParams{ID: 1, LastName: strPtr("X")}
	userStore.On("Update", mock.Anything, params).
		Return(model.User{ID: 1, Email: "a@b.com", FirstName: strPtr("F"), LastName: strPtr("X")}, nil)

	s := NewUser(userStore, lg)

	user, err := s.Update(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, "X", *user.LastName)
	assert.Equal(t, "F", *user.FirstName)
	assert.Equal(t, "a@b.com", user.Email)
}

func TestUser_Update_EmailTaken(t *testing.T) {
	ctx := context.Background()
	userStore := mocks.NewUserStore(t)
	lg := testutil.MakeNoopLogger()

	params := model.UpdateUserParams{ID: 1, Email: strPtr("taken@b.com")}
	userStore.On("Update", mock.Anything, params).Return(model.User{}, model.ErrDuplicate)

	s := NewUser(userStore, lg)

	_, err := s.Update(ctx, params)
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.Status)
}
