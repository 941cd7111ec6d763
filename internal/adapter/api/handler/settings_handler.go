package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/tuncayozel/i-inolsun-sub000/internal/usecase"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/errors"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/response"
)

type SettingsHandler struct {
	settingsUseCase *usecase.SettingsUseCase
}

func NewSettingsHandler(settingsUseCase *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{
		settingsUseCase: settingsUseCase,
	}
}

func (h *SettingsHandler) Get(c echo.Context) error {
	uid := getUserIDFromContext(c)

	settings, err := h.settingsUseCase.Get(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, settings)
}

func (h *SettingsHandler) Update(c echo.Context) error {
	uid := getUserIDFromContext(c)

	var req usecase.UpdateSettingsInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	settings, err := h.settingsUseCase.Update(c.Request().Context(), uid, req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, settings)
}
