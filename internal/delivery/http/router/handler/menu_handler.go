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

// MenuHandler holds dependencies for menu catalog handlers.
type MenuHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler, injected by Fx.
func NewMenuHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateMenuItem handles creating a single menu item.
func (h *MenuHandler) CreateMenuItem(c echo.Context) error {
	actingUserID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authentication")
	}

	var input usecase.MenuItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu item input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	item, err := h.uc.CreateMenuItem(c.Request().Context(), actingUserID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Menu item created successfully")
}

// UpdateMenuItem handles patching a menu item.
func (h *MenuHandler) UpdateMenuItem(c echo.Context) error {
	actingUserID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authentication")
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid menu item ID")
	}

	var input usecase.UpdateMenuItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu item input")
	}

	item, err := h.uc.UpdateMenuItem(c.Request().Context(), actingUserID, itemID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Menu item updated successfully")
}

// DeleteMenuItem handles removing a menu item.
func (h *MenuHandler) DeleteMenuItem(c echo.Context) error {
	actingUserID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authentication")
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid menu item ID")
	}

	if err := h.uc.DeleteMenuItem(c.Request().Context(), actingUserID, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Menu item deleted successfully")
}

type bulkImportRequest struct {
	Items []usecase.MenuItemInput `json:"items" validate:"required,min=1"`
	// Replace wipes the existing catalog before importing.
	Replace bool `json:"replace"`
}

// BulkImport handles importing a batch of menu items. With replace set the
// catalog is cleared first; the clear and the import are separate operations.
func (h *MenuHandler) BulkImport(c echo.Context) error {
	actingUserID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authentication")
	}

	var req bulkImportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bulk import input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.Replace {
		if err := h.uc.DeleteAll(c.Request().Context(), actingUserID); err != nil {
			return errors.WithStack(err)
		}
	}

	output, err := h.uc.BulkImport(c.Request().Context(), actingUserID, req.Items)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Menu import finished")
}

// DeleteAll handles wiping the catalog.
func (h *MenuHandler) DeleteAll(c echo.Context) error {
	actingUserID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing authentication")
	}

	if err := h.uc.DeleteAll(c.Request().Context(), actingUserID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Menu catalog cleared")
}

// GetMenuItem retrieves a single menu item.
func (h *MenuHandler) GetMenuItem(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid menu item ID")
	}

	item, err := h.uc.GetMenuItem(c.Request().Context(), itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "")
}

// ListMenuItems retrieves the catalog, name-sorted.
func (h *MenuHandler) ListMenuItems(c echo.Context) error {
	items, err := h.uc.ListMenuItems(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}
