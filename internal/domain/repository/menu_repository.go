// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"warung/internal/domain/entity"
	"warung/internal/errors"

	"github.com/google/uuid"
)

// ErrMenuItemNotFound is returned when a menu item is not found.
var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuRepository defines the interface for menu catalog persistence.
type MenuRepository interface {
	// FindByID retrieves a single menu item by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)

	// FindByIDs retrieves the menu items matching the given IDs. Missing IDs
	// are silently absent from the result; callers treat them as unknown items.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.MenuItem, error)

	// Create persists a new menu item.
	Create(ctx context.Context, item *entity.MenuItem) error

	// Update modifies an existing menu item.
	Update(ctx context.Context, item *entity.MenuItem) error

	// Delete removes a menu item by its ID. Dependent order items are not
	// cascaded; read paths tolerate the dangling reference.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll wipes the whole catalog.
	DeleteAll(ctx context.Context) error

	// List retrieves all menu items.
	List(ctx context.Context) ([]*entity.MenuItem, error)
}
