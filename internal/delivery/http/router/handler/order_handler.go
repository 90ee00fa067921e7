package handler

import (
	"log/slog"
	"net/http"

	"warung/internal/delivery/http/middleware"
	"warung/internal/delivery/http/response"
	"warung/internal/domain/entity"
	"warung/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type createOrderRequest struct {
	// DriverID names the driver the order is opened for. Empty means the
	// acting user drives their own order.
	DriverID *uuid.UUID `json:"driver_id,omitempty"`
}

// CreateOrder handles opening a new shared order.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	actingUserID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authentication")
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	driverID := actingUserID
	if req.DriverID != nil {
		driverID = *req.DriverID
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), actingUserID, driverID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

type setStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// SetStatus handles transitioning an order's lifecycle status.
func (h *OrderHandler) SetStatus(c echo.Context) error {
	actingUserID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authentication")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.SetStatus(c.Request().Context(), actingUserID, orderID, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}

// DeleteOrder handles removing an order.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	actingUserID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authentication")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), actingUserID, orderID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted successfully")
}

// GetOrder retrieves a single order.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// GetOrderSummary retrieves the derived per-participant read model.
func (h *OrderHandler) GetOrderSummary(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	summary, err := h.uc.GetOrderSummary(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "")
}

// ListOrders retrieves orders filtered by status or driver.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	if driverParam := c.QueryParam("driver_id"); driverParam != "" {
		driverID, err := uuid.Parse(driverParam)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid driver ID")
		}

		orders, err := h.uc.ListOrdersByDriver(c.Request().Context(), driverID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, orders, "")
	}

	status := entity.OrderStatus(c.QueryParam("status"))
	if status == "" {
		status = entity.OrderStatusOpen
	}
	if !status.IsValid() {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order status")
	}

	orders, err := h.uc.ListOrdersByStatus(c.Request().Context(), status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// GetJoinQR streams the PNG QR code with the shareable join link.
func (h *OrderHandler) GetJoinQR(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	png, err := h.uc.GenerateJoinQR(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
