package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentModel mirrors the 'payments' table. The composite unique index
// enforces at most one payment per participant per order.
type PaymentModel struct {
	ID        uuid.UUID       `gorm:"type:text;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:text;not null;uniqueIndex:idx_order_user;index"`
	UserID    uuid.UUID       `gorm:"type:text;not null;uniqueIndex:idx_order_user;index"`
	Method    string          `gorm:"type:varchar(20);not null"`
	Amount    decimal.Decimal `gorm:"type:numeric;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
