// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"warung/internal/domain/entity"
	"warung/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderItemNotFound is returned when an order item is not found.
var ErrOrderItemNotFound = errors.New("order item not found")

// OrderItemRepository defines the interface for participation ledger persistence.
type OrderItemRepository interface {
	// FindByID retrieves a single order item by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.OrderItem, error)

	// FindByOrderMenuUser retrieves the unique row for one participant's
	// selection of one menu item on one order, if it exists.
	FindByOrderMenuUser(ctx context.Context, orderID, menuID, userID uuid.UUID) (*entity.OrderItem, error)

	// FindByOrder retrieves all items on an order.
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)

	// FindByOrderAndUser retrieves one participant's items on an order.
	FindByOrderAndUser(ctx context.Context, orderID, userID uuid.UUID) ([]*entity.OrderItem, error)

	// FindByUser retrieves all items a participant has on any order.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.OrderItem, error)

	// Create persists a new order item.
	Create(ctx context.Context, item *entity.OrderItem) error

	// Update modifies an existing order item.
	Update(ctx context.Context, item *entity.OrderItem) error

	// Delete removes an order item by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
