package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem records one participant's selection of one menu item on one order.
// There is at most one row per (order, menu item, participant); a repeated add
// merges into the existing row instead of inserting a duplicate. A quantity of
// zero is never persisted, it signifies deletion.
type OrderItem struct {
	ID        uuid.UUID // The unique identifier for the order item.
	OrderID   uuid.UUID // The order this item belongs to.
	MenuID    uuid.UUID // The menu item being ordered.
	UserID    uuid.UUID // The participant who owns this row. Set once, never reassigned.
	Qty       int       // Quantity, at least 1 when persisted.
	Note      string    // Optional free-form note, e.g. "no chili".
	CreatedAt time.Time // Timestamp of creation.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// Merge folds a repeated add of the same (order, menu, participant) into this
// row: quantities sum, the note is replaced only when a new one was supplied.
func (i *OrderItem) Merge(qty int, note string) {
	i.Qty += qty
	if note != "" {
		i.Note = note
	}
}
