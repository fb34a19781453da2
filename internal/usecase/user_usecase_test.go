package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"janaseva/internal/domain/entity"
	"janaseva/pkg/errors"
)

func TestUpdateProfileCreatesOnFirstWrite(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUseCase(repo)
	ctx := context.Background()

	_, err := uc.GetProfile(ctx, "uid-1")
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	user, err := uc.UpdateProfile(ctx, "uid-1", UpdateProfileInput{
		Name:  "Ravi",
		Phone: "9876543210",
		Role:  entity.RoleFarmer,
		Location: entity.UserLocation{
			District: "Nashik",
			State:    "Maharashtra",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "uid-1", user.ID)
	assert.Equal(t, entity.RoleFarmer, user.Role)
	assert.True(t, user.IsActive)

	fetched, err := uc.GetProfile(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "Ravi", fetched.Name)
}

func TestUpdateProfileUpdatesExisting(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{
		ID:       "uid-1",
		Name:     "Ravi",
		Role:     entity.RoleFarmer,
		IsActive: true,
	})
	uc := NewUserUseCase(repo)

	user, err := uc.UpdateProfile(context.Background(), "uid-1", UpdateProfileInput{
		Name: "Ravi Kumar",
		Bio:  "Organic farmer",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ravi Kumar", user.Name)
	assert.Equal(t, "Organic farmer", user.Bio)
	// Role is kept when the update omits it.
	assert.Equal(t, entity.RoleFarmer, user.Role)
}

func TestUpdateProfileValidation(t *testing.T) {
	uc := NewUserUseCase(newFakeUserRepo())
	ctx := context.Background()

	_, err := uc.UpdateProfile(ctx, "uid-1", UpdateProfileInput{})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.UpdateProfile(ctx, "uid-1", UpdateProfileInput{Name: "Ravi", Role: "astronaut"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
