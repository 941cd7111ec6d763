package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/tuncayozel/i-inolsun-sub000/internal/usecase"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/errors"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/response"
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
	Name     string   `json:"name" validate:"omitempty,min=2"`
	Phone    string   `json:"phone" validate:"omitempty,e164"`
	Location string   `json:"location"`
	Skills   []string `json:"skills"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := getUserIDFromContext(c)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	uid := getUserIDFromContext(c)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Location: req.Location,
		Skills:   req.Skills,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) GetPublicProfile(c echo.Context) error {
	viewerID := getUserIDFromContext(c)
	targetID := c.Param("id")
	if targetID == "" {
		return response.Error(c, errors.BadRequest("User ID is required", nil))
	}

	user, err := h.userUseCase.GetPublicProfile(c.Request().Context(), viewerID, targetID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
