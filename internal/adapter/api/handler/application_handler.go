package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/tuncayozel/i-inolsun-sub000/internal/usecase"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/errors"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/response"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/utils"
)

type ApplicationHandler struct {
	applicationUseCase *usecase.ApplicationUseCase
}

func NewApplicationHandler(applicationUseCase *usecase.ApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUseCase: applicationUseCase,
	}
}

type applyRequest struct {
	Message       string  `json:"message" validate:"omitempty,max=1000"`
	Price         float64 `json:"price" validate:"omitempty,gt=0"`
	EstimatedTime string  `json:"estimated_time"`
}

func (h *ApplicationHandler) Apply(c echo.Context) error {
	uid := getUserIDFromContext(c)
	jobID := c.Param("id")

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	application, err := h.applicationUseCase.Apply(c.Request().Context(), jobID, uid, usecase.ApplyInput{
		Message:       req.Message,
		Price:         req.Price,
		EstimatedTime: req.EstimatedTime,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, application)
}

func (h *ApplicationHandler) ListByJob(c echo.Context) error {
	uid := getUserIDFromContext(c)
	jobID := c.Param("id")
	p := utils.GetPaginationParams(c)

	applications, total, err := h.applicationUseCase.ListByJob(c.Request().Context(), jobID, uid, p.PageSize, p.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, applications, total, p.Page, p.PageSize)
}

func (h *ApplicationHandler) ListMine(c echo.Context) error {
	uid := getUserIDFromContext(c)
	p := utils.GetPaginationParams(c)

	applications, total, err := h.applicationUseCase.ListMine(c.Request().Context(), uid, p.PageSize, p.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, applications, total, p.Page, p.PageSize)
}

func (h *ApplicationHandler) Withdraw(c echo.Context) error {
	uid := getUserIDFromContext(c)

	application, err := h.applicationUseCase.Withdraw(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, application)
}

func (h *ApplicationHandler) Accept(c echo.Context) error {
	uid := getUserIDFromContext(c)

	application, err := h.applicationUseCase.Accept(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, application)
}

func (h *ApplicationHandler) Reject(c echo.Context) error {
	uid := getUserIDFromContext(c)

	application, err := h.applicationUseCase.Reject(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, application)
}
