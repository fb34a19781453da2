package usecase

import (
	"context"

	"janaseva/internal/domain/entity"
	"janaseva/internal/domain/repository"
	"janaseva/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

type UpdateProfileInput struct {
	Name      string
	Phone     string
	Role      string
	Location  entity.UserLocation
	AvatarURL string
	Bio       string
}

// UpdateProfile upserts the caller's profile document. First write after
// Firebase sign-up creates it.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	if input.Name == "" {
		return nil, errors.BadRequest("Name is required", nil)
	}
	if input.Role != "" && !validRole(input.Role) {
		return nil, errors.BadRequest("Unknown role", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}

		user = &entity.User{
			ID:       userID,
			IsActive: true,
		}
		applyProfileInput(user, input)

		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}

		return user, nil
	}

	applyProfileInput(user, input)

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func applyProfileInput(user *entity.User, input UpdateProfileInput) {
	user.Name = input.Name
	user.Phone = input.Phone
	if input.Role != "" {
		user.Role = input.Role
	}
	user.Location = input.Location
	if input.AvatarURL != "" {
		user.AvatarURL = input.AvatarURL
	}
	user.Bio = input.Bio
}

func validRole(role string) bool {
	switch role {
	case entity.RoleFarmer, entity.RoleBuyer, entity.RoleWorker, entity.RoleDoctor, entity.RoleAdmin:
		return true
	}
	return false
}
