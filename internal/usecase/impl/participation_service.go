package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "warung/internal/delivery/context"
	"warung/internal/domain/entity"
	domainerrors "warung/internal/domain/errors"
	"warung/internal/domain/repository"
	"warung/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// participationService implements the ParticipationUsecase interface. Every
// mutation runs its read-validate-write sequence inside one transaction, with
// the payment coverage check re-derived from current state before each write.
type participationService struct {
	txManager     repository.TransactionManager
	orderItemRepo repository.OrderItemRepository
	logger        *slog.Logger
}

// NewParticipationService is the constructor for participationService.
func NewParticipationService(
	txManager repository.TransactionManager,
	orderItemRepo repository.OrderItemRepository,
	logger *slog.Logger,
) usecase.ParticipationUsecase {
	return &participationService{
		txManager:     txManager,
		orderItemRepo: orderItemRepo,
		logger:        logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *participationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddItem adds one item for a participant on an open order, merging into the
// existing (order, menu, participant) row when one exists.
func (srv *participationService) AddItem(ctx context.Context, actingUserID uuid.UUID, input *usecase.AddItemInput) (*entity.OrderItem, error) {
	if input.Qty < 1 {
		return nil, errors.Wrap(domainerrors.ErrInvalidArgument, "quantity must be at least 1")
	}

	var result *entity.OrderItem
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repos.UserRepo(), actingUserID)
		if err != nil {
			return err
		}

		participantID, err := resolveParticipant(ctx, repos.UserRepo(), actor, input.UserID, entity.PermissionItemAddForOthers)
		if err != nil {
			return err
		}

		order, err := requireOpenOrder(ctx, repos.OrderRepo(), input.OrderID)
		if err != nil {
			return err
		}

		menu, err := repos.MenuRepo().FindByID(ctx, input.MenuID)
		if err != nil {
			if errors.Is(err, repository.ErrMenuItemNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "menu item not found")
			}

			return errors.Wrap(err, "failed to load menu item")
		}

		existing, err := srv.findExistingRow(ctx, repos.OrderItemRepo(), order.ID, menu.ID, participantID)
		if err != nil {
			return err
		}

		// Projected cost of the row after the add, checked against the
		// participant's total excluding this row. With no payment recorded yet
		// the add is unconditionally allowed.
		excludeID := uuid.Nil
		mergedQty := input.Qty
		if existing != nil {
			excludeID = existing.ID
			mergedQty += existing.Qty
		}

		balance, err := participantBalance(ctx, repos, order.ID, participantID, excludeID)
		if err != nil {
			return err
		}

		newRowCost := menu.Price.Mul(decimal.NewFromInt(int64(mergedQty)))
		if !balance.Covers(newRowCost) {
			return errors.Wrapf(domainerrors.ErrBalanceExceeded,
				"projected total %s exceeds recorded payment %s",
				balance.Total.Add(newRowCost), balance.Payment.Amount)
		}

		if existing != nil {
			existing.Merge(input.Qty, input.Note)
			existing.UpdatedAt = time.Now()
			if err := repos.OrderItemRepo().Update(ctx, existing); err != nil {
				return errors.Wrap(err, "failed to update order item")
			}
			result = existing

			return nil
		}

		item := &entity.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			MenuID:    menu.ID,
			UserID:    participantID,
			Qty:       input.Qty,
			Note:      input.Note,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := repos.OrderItemRepo().Create(ctx, item); err != nil {
			return errors.Wrap(err, "failed to create order item")
		}
		result = item

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Order item added",
		slog.Any("orderID", input.OrderID), slog.Any("itemID", result.ID), slog.Int("qty", result.Qty))

	return result, nil
}

// UpdateItem patches an item's quantity and note. A non-positive quantity
// deletes the row and reports it as deleted rather than failing.
func (srv *participationService) UpdateItem(ctx context.Context, actingUserID, itemID uuid.UUID, input *usecase.UpdateItemInput) (*usecase.UpdateItemOutput, error) {
	var output *usecase.UpdateItemOutput
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repos.UserRepo(), actingUserID)
		if err != nil {
			return err
		}

		item, err := srv.loadItem(ctx, repos.OrderItemRepo(), itemID)
		if err != nil {
			return err
		}

		if !actor.Role.CanOrOwns(entity.PermissionItemWriteAny, actor.ID, item.UserID) {
			return errors.Wrap(domainerrors.ErrUnauthorized, "cannot modify another participant's item")
		}

		if _, err := requireOpenOrder(ctx, repos.OrderRepo(), item.OrderID); err != nil {
			return err
		}

		if input.Qty != nil && *input.Qty <= 0 {
			if err := repos.OrderItemRepo().Delete(ctx, item.ID); err != nil {
				return errors.Wrap(err, "failed to delete order item")
			}
			output = &usecase.UpdateItemOutput{Deleted: true}

			return nil
		}

		newQty := item.Qty
		if input.Qty != nil {
			newQty = *input.Qty
		}

		balance, err := participantBalance(ctx, repos, item.OrderID, item.UserID, item.ID)
		if err != nil {
			return err
		}

		prices, err := menuPrices(ctx, repos.MenuRepo(), []*entity.OrderItem{item})
		if err != nil {
			return err
		}

		// A dangling menu reference prices the row at zero, consistent with
		// how reads treat unknown items.
		newRowCost := decimal.Zero
		if price, ok := prices[item.MenuID]; ok {
			newRowCost = price.Mul(decimal.NewFromInt(int64(newQty)))
		}
		if !balance.Covers(newRowCost) {
			return errors.Wrapf(domainerrors.ErrBalanceExceeded,
				"projected total %s exceeds recorded payment %s",
				balance.Total.Add(newRowCost), balance.Payment.Amount)
		}

		item.Qty = newQty
		if input.Note != nil {
			item.Note = *input.Note
		}
		item.UpdatedAt = time.Now()
		if err := repos.OrderItemRepo().Update(ctx, item); err != nil {
			return errors.Wrap(err, "failed to update order item")
		}
		output = &usecase.UpdateItemOutput{Item: item}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// RemoveItem hard-deletes an item from an open order.
func (srv *participationService) RemoveItem(ctx context.Context, actingUserID, itemID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repos.UserRepo(), actingUserID)
		if err != nil {
			return err
		}

		item, err := srv.loadItem(ctx, repos.OrderItemRepo(), itemID)
		if err != nil {
			return err
		}

		if !actor.Role.CanOrOwns(entity.PermissionItemWriteAny, actor.ID, item.UserID) {
			return errors.Wrap(domainerrors.ErrUnauthorized, "cannot remove another participant's item")
		}

		if _, err := requireOpenOrder(ctx, repos.OrderRepo(), item.OrderID); err != nil {
			return err
		}

		if err := repos.OrderItemRepo().Delete(ctx, item.ID); err != nil {
			return errors.Wrap(err, "failed to delete order item")
		}

		return nil
	})
}

// JoinOrder executes the composite join action. The check order is fixed:
// first the subtotal of everything about to be added, then the payment
// coverage rule, and only then any persistence. An existing payment is never
// touched by a join.
func (srv *participationService) JoinOrder(ctx context.Context, actingUserID, orderID uuid.UUID, input *usecase.JoinInput) (*usecase.JoinOutput, error) {
	if len(input.Items) == 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidArgument, "join requires at least one item")
	}
	for _, entry := range input.Items {
		if entry.Qty < 1 {
			return nil, errors.Wrap(domainerrors.ErrInvalidArgument, "quantity must be at least 1")
		}
	}
	if input.Payment != nil {
		if !input.Payment.Method.IsValid() {
			return nil, errors.Wrap(domainerrors.ErrInvalidArgument, "unknown payment method")
		}
		if !input.Payment.Amount.IsPositive() {
			return nil, errors.Wrap(domainerrors.ErrInvalidArgument, "payment amount must be positive")
		}
	}

	var output *usecase.JoinOutput
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repos.UserRepo(), actingUserID)
		if err != nil {
			return err
		}

		order, err := requireOpenOrder(ctx, repos.OrderRepo(), orderID)
		if err != nil {
			return err
		}

		// (1) Price every item about to be added; all menu entries must exist.
		subtotal := decimal.Zero
		menus := make([]*entity.MenuItem, len(input.Items))
		for i, entry := range input.Items {
			menu, err := repos.MenuRepo().FindByID(ctx, entry.MenuID)
			if err != nil {
				if errors.Is(err, repository.ErrMenuItemNotFound) {
					return errors.Wrap(domainerrors.ErrNotFound, "menu item not found")
				}

				return errors.Wrap(err, "failed to load menu item")
			}
			menus[i] = menu
			subtotal = subtotal.Add(menu.Price.Mul(decimal.NewFromInt(int64(entry.Qty))))
		}

		// (2)/(3) Coverage: a first-time payment must cover the subtotal; an
		// existing payment must already cover the old total plus the subtotal.
		existingPayment, err := repos.PaymentRepo().FindByOrderAndUser(ctx, order.ID, actor.ID)
		if err != nil {
			if !errors.Is(err, repository.ErrPaymentNotFound) {
				return errors.Wrap(err, "failed to load participant payment")
			}
			existingPayment = nil
		}

		if existingPayment == nil {
			if input.Payment != nil && input.Payment.Amount.LessThan(subtotal) {
				return errors.Wrapf(domainerrors.ErrBalanceExceeded,
					"payment %s does not cover join subtotal %s", input.Payment.Amount, subtotal)
			}
		} else {
			balance, err := participantBalance(ctx, repos, order.ID, actor.ID, uuid.Nil)
			if err != nil {
				return err
			}
			if !balance.Covers(subtotal) {
				return errors.Wrapf(domainerrors.ErrBalanceExceeded,
					"existing payment %s does not cover total %s",
					existingPayment.Amount, balance.Total.Add(subtotal))
			}
		}

		items := make([]*entity.OrderItem, 0, len(input.Items))
		for i, entry := range input.Items {
			existing, err := srv.findExistingRow(ctx, repos.OrderItemRepo(), order.ID, menus[i].ID, actor.ID)
			if err != nil {
				return err
			}

			if existing != nil {
				existing.Merge(entry.Qty, entry.Note)
				existing.UpdatedAt = time.Now()
				if err := repos.OrderItemRepo().Update(ctx, existing); err != nil {
					return errors.Wrap(err, "failed to update order item")
				}
				items = append(items, existing)

				continue
			}

			item := &entity.OrderItem{
				ID:        uuid.New(),
				OrderID:   order.ID,
				MenuID:    menus[i].ID,
				UserID:    actor.ID,
				Qty:       entry.Qty,
				Note:      entry.Note,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			if err := repos.OrderItemRepo().Create(ctx, item); err != nil {
				return errors.Wrap(err, "failed to create order item")
			}
			items = append(items, item)
		}

		output = &usecase.JoinOutput{Items: items}

		if existingPayment == nil && input.Payment != nil {
			payment := &entity.Payment{
				ID:        uuid.New(),
				OrderID:   order.ID,
				UserID:    actor.ID,
				Method:    input.Payment.Method,
				Amount:    input.Payment.Amount,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			if err := repos.PaymentRepo().Create(ctx, payment); err != nil {
				return errors.Wrap(err, "failed to create payment")
			}
			output.Payment = payment
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Participant joined order",
		slog.Any("orderID", orderID), slog.Any("userID", actingUserID), slog.Int("items", len(output.Items)))

	return output, nil
}

// ListItemsByOrder retrieves all items on an order.
func (srv *participationService) ListItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	items, err := srv.orderItemRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order items")
	}

	return items, nil
}

// ListItemsByUser retrieves all items a participant has across orders.
func (srv *participationService) ListItemsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.OrderItem, error) {
	items, err := srv.orderItemRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user items")
	}

	return items, nil
}

// findExistingRow fetches the unique (order, menu, participant) row, mapping
// not-found to nil.
func (srv *participationService) findExistingRow(ctx context.Context, items repository.OrderItemRepository, orderID, menuID, userID uuid.UUID) (*entity.OrderItem, error) {
	existing, err := items.FindByOrderMenuUser(ctx, orderID, menuID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderItemNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find existing order item")
	}

	return existing, nil
}

// loadItem fetches an order item, mapping not-found to the domain error.
func (srv *participationService) loadItem(ctx context.Context, items repository.OrderItemRepository, itemID uuid.UUID) (*entity.OrderItem, error) {
	item, err := items.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "order item not found")
		}

		return nil, errors.Wrap(err, "failed to load order item")
	}

	return item, nil
}

// resolveParticipant determines which participant a mutation targets. Acting
// for someone else requires the given blanket permission, and the target must
// exist.
func resolveParticipant(ctx context.Context, users repository.UserRepository, actor *entity.User, targetUserID *uuid.UUID, required entity.Permission) (uuid.UUID, error) {
	if targetUserID == nil || *targetUserID == actor.ID {
		return actor.ID, nil
	}

	if !actor.Role.Can(required) {
		return uuid.Nil, errors.Wrap(domainerrors.ErrUnauthorized, "cannot act on behalf of another participant")
	}

	target, err := users.FindByID(ctx, *targetUserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return uuid.Nil, errors.Wrap(domainerrors.ErrNotFound, "target participant not found")
		}

		return uuid.Nil, errors.Wrap(err, "failed to load target participant")
	}

	return target.ID, nil
}
