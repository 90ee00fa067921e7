// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"warung/internal/domain/entity"
	domainerrors "warung/internal/domain/errors"
	"warung/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// loadActor resolves the acting user from current storage state. Authorization
// is always derived from the stored role, never from client-supplied claims; a
// missing account reads as unauthorized, not as not-found.
func loadActor(ctx context.Context, users repository.UserRepository, actingUserID uuid.UUID) (*entity.User, error) {
	actor, err := users.FindByID(ctx, actingUserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "acting user does not exist")
		}

		return nil, errors.Wrap(err, "failed to load acting user")
	}

	return actor, nil
}

// requireOpenOrder loads an order and enforces the lifecycle gate: item and
// payment rows may only change while their order is open.
func requireOpenOrder(ctx context.Context, orders repository.OrderRepository, orderID uuid.UUID) (*entity.Order, error) {
	order, err := orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	if !order.IsOpen() {
		return nil, errors.Wrapf(domainerrors.ErrOrderNotOpen, "order status is %s", order.Status)
	}

	return order, nil
}

// menuPrices resolves the current unit prices for the menu items referenced by
// the given rows. Deleted menu entries are simply absent from the map.
func menuPrices(ctx context.Context, menus repository.MenuRepository, items []*entity.OrderItem) (map[uuid.UUID]decimal.Decimal, error) {
	seen := make(map[uuid.UUID]struct{}, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.MenuID]; ok {
			continue
		}
		seen[item.MenuID] = struct{}{}
		ids = append(ids, item.MenuID)
	}

	found, err := menus.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load menu prices")
	}

	prices := make(map[uuid.UUID]decimal.Decimal, len(found))
	for _, menu := range found {
		prices[menu.ID] = menu.Price
	}

	return prices, nil
}

// participantBalance derives one participant's balance projection on one order
// as of the current transaction: item total (optionally excluding one row about
// to be rewritten) next to their payment, if any.
func participantBalance(ctx context.Context, repos repository.RepositoryFactory, orderID, userID, excludeItemID uuid.UUID) (entity.ParticipantBalance, error) {
	items, err := repos.OrderItemRepo().FindByOrderAndUser(ctx, orderID, userID)
	if err != nil {
		return entity.ParticipantBalance{}, errors.Wrap(err, "failed to load participant items")
	}

	if excludeItemID != uuid.Nil {
		kept := items[:0]
		for _, item := range items {
			if item.ID != excludeItemID {
				kept = append(kept, item)
			}
		}
		items = kept
	}

	prices, err := menuPrices(ctx, repos.MenuRepo(), items)
	if err != nil {
		return entity.ParticipantBalance{}, err
	}

	payment, err := repos.PaymentRepo().FindByOrderAndUser(ctx, orderID, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrPaymentNotFound) {
			return entity.ParticipantBalance{}, errors.Wrap(err, "failed to load participant payment")
		}
		payment = nil
	}

	return entity.ParticipantBalance{
		Total:   entity.ParticipantTotal(items, prices),
		Payment: payment,
	}, nil
}
