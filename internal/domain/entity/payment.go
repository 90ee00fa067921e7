package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a participant settled their share.
type PaymentMethod string

const (
	// PaymentMethodCash is a cash hand-over to the driver.
	PaymentMethodCash PaymentMethod = "cash"
	// PaymentMethodCardless is a cardless bank transfer.
	PaymentMethodCardless PaymentMethod = "cardless"
	// PaymentMethodDana is the DANA e-wallet.
	PaymentMethodDana PaymentMethod = "dana"
)

// String returns the string representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCardless, PaymentMethodDana:
		return true
	default:
		return false
	}
}

// Payment is a participant's self-reported payment on an order. No real money
// moves through the system; this is a ledger entry. There is at most one row
// per (order, participant); a repeated set updates the row in place.
type Payment struct {
	ID        uuid.UUID       // The unique identifier for the payment.
	OrderID   uuid.UUID       // The order this payment belongs to.
	UserID    uuid.UUID       // The participant who owns this row. Set once, never reassigned.
	Method    PaymentMethod   // How the participant paid.
	Amount    decimal.Decimal // Recorded amount, strictly positive.
	CreatedAt time.Time       // Timestamp of creation.
	UpdatedAt time.Time       // Timestamp of the last modification.
}

// Apply replaces the mutable fields of an existing payment with the newly
// supplied method and amount.
func (p *Payment) Apply(method PaymentMethod, amount decimal.Decimal) {
	p.Method = method
	p.Amount = amount
}
