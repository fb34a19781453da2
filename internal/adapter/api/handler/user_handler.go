package handler

import (
	"github.com/labstack/echo/v4"

	"janaseva/internal/domain/entity"
	"janaseva/internal/usecase"
	"janaseva/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updateProfileRequest struct {
	Name      string              `json:"name" validate:"required"`
	Phone     string              `json:"phone"`
	Role      string              `json:"role" validate:"omitempty,oneof=farmer buyer worker doctor admin"`
	Location  entity.UserLocation `json:"location"`
	AvatarURL string              `json:"avatar_url" validate:"omitempty,url"`
	Bio       string              `json:"bio"`
}

func (h *UserHandler) GetMe(c echo.Context) error {
	userID := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

// UpdateMe upserts the caller's profile.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), userID, usecase.UpdateProfileInput{
		Name:      req.Name,
		Phone:     req.Phone,
		Role:      req.Role,
		Location:  req.Location,
		AvatarURL: req.AvatarURL,
		Bio:       req.Bio,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

// GetUser returns the public summary of another user, for chat headers.
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUseCase.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user.Summary())
}
