package usecase

import (
	"context"

	"warung/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemInput is the input for creating or importing a menu item.
type MenuItemInput struct {
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price" validate:"required"`
}

// UpdateMenuItemInput is the input for patching a menu item. Nil fields are
// left unchanged.
type UpdateMenuItemInput struct {
	Name  *string          `json:"name,omitempty"`
	Price *decimal.Decimal `json:"price,omitempty"`
}

// BulkImportFailure describes one rejected row of a bulk import.
type BulkImportFailure struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// BulkImportOutput partitions a bulk import into created items and per-row
// failures. A bad row never aborts the batch.
type BulkImportOutput struct {
	Succeeded []*entity.MenuItem  `json:"succeeded"`
	Failed    []BulkImportFailure `json:"failed"`
}

// CatalogUsecase defines the menu catalog operations.
type CatalogUsecase interface {
	// CreateMenuItem creates a menu item owned by the acting user. Any
	// authenticated role may create.
	CreateMenuItem(ctx context.Context, actingUserID uuid.UUID, input *MenuItemInput) (*entity.MenuItem, error)

	// UpdateMenuItem patches a menu item. Admins and drivers may edit any item,
	// regular users only their own.
	UpdateMenuItem(ctx context.Context, actingUserID, itemID uuid.UUID, input *UpdateMenuItemInput) (*entity.MenuItem, error)

	// DeleteMenuItem removes a menu item under the same scoping as update.
	DeleteMenuItem(ctx context.Context, actingUserID, itemID uuid.UUID) error

	// BulkImport validates each row independently and creates the valid ones.
	// Admin only.
	BulkImport(ctx context.Context, actingUserID uuid.UUID, rows []MenuItemInput) (*BulkImportOutput, error)

	// DeleteAll wipes the catalog. Admin only. Callers combine it with
	// BulkImport for replace-import semantics; the pair is not atomic.
	DeleteAll(ctx context.Context, actingUserID uuid.UUID) error

	// GetMenuItem retrieves a single menu item.
	GetMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)

	// ListMenuItems retrieves the catalog sorted by name, case-insensitively
	// and locale-aware.
	ListMenuItems(ctx context.Context) ([]*entity.MenuItem, error)
}
