package usecase

import (
	"context"

	"warung/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddItemInput is the input for adding an item to an order. UserID optionally
// names the participant the item is added for; when nil the acting user is the
// participant. Acting for someone else requires the add-for-others permission.
type AddItemInput struct {
	OrderID uuid.UUID  `json:"order_id" validate:"required"`
	MenuID  uuid.UUID  `json:"menu_id" validate:"required"`
	UserID  *uuid.UUID `json:"user_id,omitempty"`
	Qty     int        `json:"qty" validate:"required,min=1"`
	Note    string     `json:"note,omitempty"`
}

// UpdateItemInput is the input for patching an order item. A nil Qty leaves the
// quantity unchanged; a Qty of zero or less deletes the row. A nil Note leaves
// the note unchanged.
type UpdateItemInput struct {
	Qty  *int    `json:"qty,omitempty"`
	Note *string `json:"note,omitempty"`
}

// UpdateItemOutput reports the result of an item update. Deleted is set when a
// non-positive quantity removed the row instead of persisting it.
type UpdateItemOutput struct {
	Item    *entity.OrderItem `json:"item,omitempty"`
	Deleted bool              `json:"deleted"`
}

// JoinItemInput is one item of a composite join request.
type JoinItemInput struct {
	MenuID uuid.UUID `json:"menu_id" validate:"required"`
	Qty    int       `json:"qty" validate:"required,min=1"`
	Note   string    `json:"note,omitempty"`
}

// JoinPaymentInput is the first-time payment bundled with a join. It is applied
// only when the participant has no payment on the order yet.
type JoinPaymentInput struct {
	Method entity.PaymentMethod `json:"method" validate:"required"`
	Amount decimal.Decimal      `json:"amount" validate:"required"`
}

// JoinInput is the composite "join an order" action: a batch of item adds plus,
// for a first-time participant, a payment covering them.
type JoinInput struct {
	Items   []JoinItemInput   `json:"items" validate:"required,min=1,dive"`
	Payment *JoinPaymentInput `json:"payment,omitempty"`
}

// JoinOutput reports the rows touched by a join.
type JoinOutput struct {
	Items   []*entity.OrderItem `json:"items"`
	Payment *entity.Payment     `json:"payment,omitempty"`
}

// ParticipationUsecase defines the participation ledger operations and the
// composite join action.
type ParticipationUsecase interface {
	// AddItem adds (or merges) one item for a participant on an open order,
	// guarded by the payment coverage invariant.
	AddItem(ctx context.Context, actingUserID uuid.UUID, input *AddItemInput) (*entity.OrderItem, error)

	// UpdateItem patches an item on an open order. A non-positive quantity
	// deletes the row and is reported as deleted, not as an error.
	UpdateItem(ctx context.Context, actingUserID, itemID uuid.UUID, input *UpdateItemInput) (*UpdateItemOutput, error)

	// RemoveItem hard-deletes an item on an open order.
	RemoveItem(ctx context.Context, actingUserID, itemID uuid.UUID) error

	// JoinOrder executes the composite join action with the documented check
	// ordering: subtotal first, then payment coverage, then persistence.
	JoinOrder(ctx context.Context, actingUserID, orderID uuid.UUID, input *JoinInput) (*JoinOutput, error)

	// ListItemsByOrder retrieves all items on an order. Reads are allowed
	// regardless of order status.
	ListItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)

	// ListItemsByUser retrieves all items a participant has across orders.
	ListItemsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.OrderItem, error)
}
