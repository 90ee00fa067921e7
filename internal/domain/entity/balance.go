package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParticipantTotal computes the current cost of a participant's items on an
// order: sum of qty * current menu price. Items whose menu entry has been
// deleted contribute zero; dangling references read as an unknown item, never
// as an error.
func ParticipantTotal(items []*OrderItem, prices map[uuid.UUID]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		price, ok := prices[item.MenuID]
		if !ok {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Qty))))
	}

	return total
}

// ParticipantBalance is the on-demand projection of one participant's position
// on one order: the derived cost of their items next to their recorded payment.
// It is computed fresh inside every mutation that could violate the coverage
// invariant, and never cached.
type ParticipantBalance struct {
	Total   decimal.Decimal // Current cost of the participant's items.
	Payment *Payment        // The participant's payment row, nil if none recorded yet.
}

// Covers reports whether adding extra cost keeps the participant's total within
// their recorded payment. With no payment recorded yet the add is allowed
// unconditionally; the payment is expected to follow in the same join flow.
func (b ParticipantBalance) Covers(extra decimal.Decimal) bool {
	if b.Payment == nil {
		return true
	}

	return b.Total.Add(extra).LessThanOrEqual(b.Payment.Amount)
}

// Remaining returns the participant's change: payment amount minus item total.
// Zero when no payment is recorded.
func (b ParticipantBalance) Remaining() decimal.Decimal {
	if b.Payment == nil {
		return decimal.Zero
	}

	return b.Payment.Amount.Sub(b.Total)
}
