package usecase

import (
	"context"

	"warung/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SummaryItem is one order item enriched with the current menu name and price.
// A deleted menu entry reads as an unknown item with zero price.
type SummaryItem struct {
	Item     *entity.OrderItem `json:"item"`
	MenuName string            `json:"menu_name"`
	Price    decimal.Decimal   `json:"price"`
	Cost     decimal.Decimal   `json:"cost"`
}

// ParticipantSummary is the derived position of one participant on an order:
// items, total, payment and remaining change. Always recomputed on read.
type ParticipantSummary struct {
	UserID    uuid.UUID       `json:"user_id"`
	Username  string          `json:"username"`
	Items     []SummaryItem   `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Payment   *entity.Payment `json:"payment,omitempty"`
	Remaining decimal.Decimal `json:"remaining"`
}

// OrderSummary is the full derived read model of an order.
type OrderSummary struct {
	Order        *entity.Order        `json:"order"`
	Participants []ParticipantSummary `json:"participants"`
	GrandTotal   decimal.Decimal      `json:"grand_total"`
}

// OrderUsecase defines the order lifecycle operations.
type OrderUsecase interface {
	// CreateOrder opens a new order for the given driver. The acting user must
	// be an admin or a driver; the driver must resolve to a driver-role user.
	CreateOrder(ctx context.Context, actingUserID, driverID uuid.UUID) (*entity.Order, error)

	// SetStatus transitions an order to any of the lifecycle statuses. Admins
	// may transition any order, a driver only their own. The state machine is
	// intentionally permissive: every pair of statuses is a legal transition.
	SetStatus(ctx context.Context, actingUserID, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// DeleteOrder removes an order. Admin only. Items and payments are not
	// cascaded.
	DeleteOrder(ctx context.Context, actingUserID, orderID uuid.UUID) error

	// GetOrder retrieves a single order.
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// GetOrderSummary builds the derived per-participant read model.
	GetOrderSummary(ctx context.Context, id uuid.UUID) (*OrderSummary, error)

	// ListOrdersByStatus retrieves orders with the given status.
	ListOrdersByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error)

	// ListOrdersByDriver retrieves orders run by the given driver.
	ListOrdersByDriver(ctx context.Context, driverID uuid.UUID) ([]*entity.Order, error)

	// GenerateJoinQR produces a PNG QR code with the shareable join link.
	GenerateJoinQR(ctx context.Context, orderID uuid.UUID) ([]byte, error)
}
