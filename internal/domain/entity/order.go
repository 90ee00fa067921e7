package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of a shared order.
type OrderStatus string

const (
	// OrderStatusOpen means participants may add items and record payments.
	OrderStatusOpen OrderStatus = "open"
	// OrderStatusClosed means the order is no longer accepting changes.
	OrderStatusClosed OrderStatus = "closed"
	// OrderStatusCompleted means the order has been fulfilled.
	OrderStatusCompleted OrderStatus = "completed"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusOpen, OrderStatusClosed, OrderStatusCompleted:
		return true
	default:
		return false
	}
}

// Order is a shared food order opened by a driver. Transitions between any pair
// of statuses are allowed; only who may transition is restricted. Reopening a
// completed order is intentionally permitted.
type Order struct {
	ID        uuid.UUID   // The unique identifier for the order.
	DriverID  uuid.UUID   // The driver running this order. Must reference a driver-role user.
	Status    OrderStatus // Current lifecycle state. New orders start open.
	CreatedAt time.Time   // Timestamp of creation.
	UpdatedAt time.Time   // Timestamp of the last modification.
}

// IsOpen reports whether item and payment mutations are currently legal.
func (o *Order) IsOpen() bool {
	return o.Status == OrderStatusOpen
}
