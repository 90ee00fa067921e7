package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItem is a purchasable catalog entry. OwnerID records who created the item
// and scopes edit/delete rights for regular users.
type MenuItem struct {
	ID        uuid.UUID       // The unique identifier for the menu item.
	Name      string          // Non-empty, trimmed display name.
	Price     decimal.Decimal // Unit price, strictly positive.
	OwnerID   uuid.UUID       // The user who created the item.
	CreatedAt time.Time       // Timestamp of creation.
	UpdatedAt time.Time       // Timestamp of the last modification.
}
