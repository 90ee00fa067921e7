package usecase

import (
	"context"

	"warung/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UpsertPaymentInput is the input for recording or updating a payment. UserID
// optionally names the participant the payment belongs to; when nil the acting
// user is the participant. Acting for someone else requires blanket payment
// scope.
type UpsertPaymentInput struct {
	OrderID uuid.UUID            `json:"order_id" validate:"required"`
	UserID  *uuid.UUID           `json:"user_id,omitempty"`
	Method  entity.PaymentMethod `json:"method" validate:"required"`
	Amount  decimal.Decimal      `json:"amount" validate:"required"`
}

// PaymentUsecase defines the payment ledger operations.
type PaymentUsecase interface {
	// UpsertPayment records a participant's payment on an open order, updating
	// the existing row in place when one exists. The amount must keep covering
	// the participant's current item total.
	UpsertPayment(ctx context.Context, actingUserID uuid.UUID, input *UpsertPaymentInput) (*entity.Payment, error)

	// DeletePayment removes a payment on an open order, under the same scoping
	// as upsert.
	DeletePayment(ctx context.Context, actingUserID, paymentID uuid.UUID) error

	// GetPayment retrieves the unique payment of one participant on one order.
	GetPayment(ctx context.Context, orderID, userID uuid.UUID) (*entity.Payment, error)

	// ListPaymentsByOrder retrieves all payments on an order.
	ListPaymentsByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error)

	// ListPaymentsByUser retrieves all payments a participant has across orders.
	ListPaymentsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error)
}
