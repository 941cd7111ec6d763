package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/tuncayozel/i-inolsun-sub000/internal/usecase"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/errors"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/response"
	"github.com/tuncayozel/i-inolsun-sub000/pkg/utils"
)

type PaymentHandler struct {
	paymentUseCase *usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

type amountRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

func (h *PaymentHandler) GetBalance(c echo.Context) error {
	uid := getUserIDFromContext(c)

	balance, err := h.paymentUseCase.GetBalance(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, balance)
}

func (h *PaymentHandler) Deposit(c echo.Context) error {
	uid := getUserIDFromContext(c)

	var req amountRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	txn, err := h.paymentUseCase.Deposit(c.Request().Context(), uid, req.Amount)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, txn)
}

func (h *PaymentHandler) Withdraw(c echo.Context) error {
	uid := getUserIDFromContext(c)

	var req amountRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	txn, err := h.paymentUseCase.Withdraw(c.Request().Context(), uid, req.Amount)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, txn)
}

func (h *PaymentHandler) ListTransactions(c echo.Context) error {
	uid := getUserIDFromContext(c)
	p := utils.GetPaginationParams(c)
	txnType := c.QueryParam("type")

	txns, total, err := h.paymentUseCase.ListTransactions(c.Request().Context(), uid, txnType, p.PageSize, p.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, txns, total, p.Page, p.PageSize)
}
