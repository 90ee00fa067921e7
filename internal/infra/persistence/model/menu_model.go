package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemModel mirrors the 'menu_items' table. Prices are stored as exact
// decimals, never floats.
type MenuItemModel struct {
	ID        uuid.UUID       `gorm:"type:text;primaryKey"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:numeric;not null"`
	OwnerID   uuid.UUID       `gorm:"type:text;index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MenuItemModel) TableName() string {
	return "menu_items"
}
