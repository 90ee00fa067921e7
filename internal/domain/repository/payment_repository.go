// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"warung/internal/domain/entity"
	"warung/internal/errors"

	"github.com/google/uuid"
)

// ErrPaymentNotFound is returned when a payment is not found.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository defines the interface for payment ledger persistence.
type PaymentRepository interface {
	// FindByID retrieves a single payment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// FindByOrderAndUser retrieves the unique payment row for one participant
	// on one order, if it exists.
	FindByOrderAndUser(ctx context.Context, orderID, userID uuid.UUID) (*entity.Payment, error)

	// FindByOrder retrieves all payments on an order.
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error)

	// FindByUser retrieves all payments a participant has on any order.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error)

	// Create persists a new payment.
	Create(ctx context.Context, payment *entity.Payment) error

	// Update modifies an existing payment.
	Update(ctx context.Context, payment *entity.Payment) error

	// Delete removes a payment by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
