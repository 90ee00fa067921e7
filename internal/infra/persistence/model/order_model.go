package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID        uuid.UUID `gorm:"type:text;primaryKey"`
	DriverID  uuid.UUID `gorm:"type:text;index;not null"`
	Status    string    `gorm:"type:varchar(20);index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. The composite unique index
// enforces one row per (order, menu item, participant); repeated adds merge
// into that row instead of creating duplicates.
type OrderItemModel struct {
	ID         uuid.UUID `gorm:"type:text;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:text;not null;uniqueIndex:idx_order_menu_user;index"`
	MenuItemID uuid.UUID `gorm:"type:text;not null;uniqueIndex:idx_order_menu_user"`
	UserID     uuid.UUID `gorm:"type:text;not null;uniqueIndex:idx_order_menu_user;index"`
	Quantity   int       `gorm:"not null"`
	Note       string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
