// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"warung/internal/domain/entity"
	"warung/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order lifecycle persistence.
type OrderRepository interface {
	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// UpdateStatus changes the lifecycle status of an order.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// Delete removes an order by its ID. Dependent items and payments are not
	// cascaded; read paths tolerate the dangling references.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByStatus retrieves all orders with the given status, newest first.
	ListByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error)

	// ListByDriver retrieves all orders run by the given driver, newest first.
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*entity.Order, error)
}
