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

// ParticipationHandler holds dependencies for the participation ledger handlers.
type ParticipationHandler struct {
	uc     usecase.ParticipationUsecase
	logger *slog.Logger
}

// NewParticipationHandler is the constructor for ParticipationHandler, injected by Fx.
func NewParticipationHandler(uc usecase.ParticipationUsecase, logger *slog.Logger) *ParticipationHandler {
	return &ParticipationHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddItem handles adding (or merging) one item on an open order.
func (h *ParticipationHandler) AddItem(c echo.Context) error {
	actingUserID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authentication")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	var input usecase.AddItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	input.OrderID = orderID
	if err := c.Validate(&input); err != nil {
		return err
	}

	item, err := h.uc.AddItem(c.Request().Context(), actingUserID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Item added successfully")
}

// UpdateItem handles patching an item. A non-positive quantity deletes the row.
func (h *ParticipationHandler) UpdateItem(c echo.Context) error {
	actingUserID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authentication")
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid item ID")
	}

	var input usecase.UpdateItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}

	output, err := h.uc.UpdateItem(c.Request().Context(), actingUserID, itemID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Item updated successfully"
	if output.Deleted {
		message = "Item removed"
	}

	return response.Success(c, http.StatusOK, output, message)
}

// RemoveItem handles hard-deleting an item on an open order.
func (h *ParticipationHandler) RemoveItem(c echo.Context) error {
	actingUserID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authentication")
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid item ID")
	}

	if err := h.uc.RemoveItem(c.Request().Context(), actingUserID, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item removed successfully")
}

// JoinOrder handles the composite join action: a batch of items plus, for a
// first-time participant, a covering payment.
func (h *ParticipationHandler) JoinOrder(c echo.Context) error {
	actingUserID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authentication")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	var input usecase.JoinInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid join input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.JoinOrder(c.Request().Context(), actingUserID, orderID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Joined order successfully")
}

// ListOrderItems retrieves all items on an order.
func (h *ParticipationHandler) ListOrderItems(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	items, err := h.uc.ListItemsByOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// ListUserItems retrieves all items a participant has across orders.
func (h *ParticipationHandler) ListUserItems(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	items, err := h.uc.ListItemsByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}
