package handler

import (
	"log/slog"
	"net/http"

	"warung/internal/delivery/http/middleware"
	"warung/internal/delivery/http/response"
	"warung/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for the payment ledger handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

// UpsertPayment handles recording or updating a participant's payment on an
// open order.
func (h *PaymentHandler) UpsertPayment(c echo.Context) error {
	actingUserID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authentication")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	var input usecase.UpsertPaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	input.OrderID = orderID
	if err := c.Validate(&input); err != nil {
		return err
	}

	payment, err := h.uc.UpsertPayment(c.Request().Context(), actingUserID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payment, "Payment recorded successfully")
}

// DeletePayment handles removing a payment on an open order.
func (h *PaymentHandler) DeletePayment(c echo.Context) error {
	actingUserID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authentication")
	}

	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment ID")
	}

	if err := h.uc.DeletePayment(c.Request().Context(), actingUserID, paymentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Payment deleted successfully")
}

// GetPayment retrieves the unique payment of one participant on one order.
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	payment, err := h.uc.GetPayment(c.Request().Context(), orderID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payment, "")
}

// ListOrderPayments retrieves all payments on an order.
func (h *PaymentHandler) ListOrderPayments(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	payments, err := h.uc.ListPaymentsByOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments, "")
}

// ListUserPayments retrieves all payments a participant has across orders.
func (h *PaymentHandler) ListUserPayments(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	payments, err := h.uc.ListPaymentsByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments, "")
}
