package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	deliverycontext "warung/internal/delivery/context"
	"warung/internal/domain/entity"
	domainerrors "warung/internal/domain/errors"
	"warung/internal/domain/repository"
	"warung/internal/domain/service"
	"warung/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// unknownPlaceholder is how read paths render a dangling reference: a deleted
// menu entry or user is reported, never treated as an error.
const unknownPlaceholder = "unknown"

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager     repository.TransactionManager
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	paymentRepo   repository.PaymentRepository
	menuRepo      repository.MenuRepository
	userRepo      repository.UserRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	paymentRepo repository.PaymentRepository,
	menuRepo repository.MenuRepository,
	userRepo repository.UserRepository,
	qrcodeService service.QRCodeService,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager:     txManager,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		paymentRepo:   paymentRepo,
		menuRepo:      menuRepo,
		userRepo:      userRepo,
		qrcodeService: qrcodeService,
		logger:        logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder opens a new order for the given driver.
func (srv *orderService) CreateOrder(ctx context.Context, actingUserID, driverID uuid.UUID) (*entity.Order, error) {
	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repos.UserRepo(), actingUserID)
		if err != nil {
			return err
		}

		if !actor.Role.Can(entity.PermissionOrderCreate) {
			return errors.Wrap(domainerrors.ErrUnauthorized, "only admins and drivers may open orders")
		}

		driver, err := repos.UserRepo().FindByID(ctx, driverID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "driver not found")
			}

			return errors.Wrap(err, "failed to load driver")
		}
		if driver.Role != entity.RoleDriver {
			return errors.Wrap(domainerrors.ErrInvalidArgument, "order driver must have the driver role")
		}

		order = &entity.Order{
			ID:        uuid.New(),
			DriverID:  driver.ID,
			Status:    entity.OrderStatusOpen,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := repos.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order opened", slog.Any("orderID", order.ID), slog.Any("driverID", order.DriverID))

	return order, nil
}

// SetStatus transitions an order to the given status. Any pair of statuses is
// a legal transition, including reopening a completed order; only who may call
// is restricted.
func (srv *orderService) SetStatus(ctx context.Context, actingUserID, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidArgument, "unknown order status %q", status)
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repos.UserRepo(), actingUserID)
		if err != nil {
			return err
		}

		order, err = repos.OrderRepo().FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to load order")
		}

		if !actor.Role.CanOrOwns(entity.PermissionOrderSetStatusAny, actor.ID, order.DriverID) {
			return errors.Wrap(domainerrors.ErrUnauthorized, "only admins or the order's driver may change its status")
		}

		if err := repos.OrderRepo().UpdateStatus(ctx, order.ID, status); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}
		order.Status = status
		order.UpdatedAt = time.Now()

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order status changed", slog.Any("orderID", order.ID), slog.String("status", status.String()))

	return order, nil
}

// DeleteOrder removes an order. Dependent items and payments are left in
// place; reads tolerate the dangling references.
func (srv *orderService) DeleteOrder(ctx context.Context, actingUserID, orderID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repos.UserRepo(), actingUserID)
		if err != nil {
			return err
		}

		if !actor.Role.Can(entity.PermissionOrderDelete) {
			return errors.Wrap(domainerrors.ErrUnauthorized, "only admins may delete orders")
		}

		if _, err := repos.OrderRepo().FindByID(ctx, orderID); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to load order")
		}

		if err := repos.OrderRepo().Delete(ctx, orderID); err != nil {
			return errors.Wrap(err, "failed to delete order")
		}

		return nil
	})
}

// GetOrder retrieves a single order.
func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	return order, nil
}

// GetOrderSummary builds the derived per-participant read model. Totals are
// always recomputed from the current rows, never cached, so a coverage
// violation produced by a racing pair of writes surfaces here.
func (srv *orderService) GetOrderSummary(ctx context.Context, id uuid.UUID) (*usecase.OrderSummary, error) {
	order, err := srv.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := srv.orderItemRepo.FindByOrder(ctx, order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order items")
	}

	payments, err := srv.paymentRepo.FindByOrder(ctx, order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order payments")
	}

	menus, err := srv.loadMenus(ctx, items)
	if err != nil {
		return nil, err
	}

	itemsByUser := make(map[uuid.UUID][]*entity.OrderItem)
	for _, item := range items {
		itemsByUser[item.UserID] = append(itemsByUser[item.UserID], item)
	}
	paymentByUser := make(map[uuid.UUID]*entity.Payment, len(payments))
	for _, payment := range payments {
		paymentByUser[payment.UserID] = payment
	}

	// A participant is anyone with an item or a payment on the order.
	participantIDs := make([]uuid.UUID, 0, len(itemsByUser))
	for userID := range itemsByUser {
		participantIDs = append(participantIDs, userID)
	}
	for userID := range paymentByUser {
		if _, ok := itemsByUser[userID]; !ok {
			participantIDs = append(participantIDs, userID)
		}
	}

	summary := &usecase.OrderSummary{Order: order, GrandTotal: decimal.Zero}
	for _, userID := range participantIDs {
		participant := srv.buildParticipantSummary(ctx, userID, itemsByUser[userID], paymentByUser[userID], menus)
		summary.GrandTotal = summary.GrandTotal.Add(participant.Total)
		summary.Participants = append(summary.Participants, participant)
	}

	sort.Slice(summary.Participants, func(i, j int) bool {
		return summary.Participants[i].Username < summary.Participants[j].Username
	})

	return summary, nil
}

// ListOrdersByStatus retrieves orders with the given status.
func (srv *orderService) ListOrdersByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error) {
	if !status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidArgument, "unknown order status %q", status)
	}

	orders, err := srv.orderRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by status")
	}

	return orders, nil
}

// ListOrdersByDriver retrieves orders run by the given driver.
func (srv *orderService) ListOrdersByDriver(ctx context.Context, driverID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByDriver(ctx, driverID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by driver")
	}

	return orders, nil
}

// GenerateJoinQR produces a PNG QR code with the shareable join link.
func (srv *orderService) GenerateJoinQR(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateJoinQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate join QR")
	}

	return png, nil
}

// loadMenus resolves the menu entries referenced by the given items.
func (srv *orderService) loadMenus(ctx context.Context, items []*entity.OrderItem) (map[uuid.UUID]*entity.MenuItem, error) {
	seen := make(map[uuid.UUID]struct{}, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.MenuID]; ok {
			continue
		}
		seen[item.MenuID] = struct{}{}
		ids = append(ids, item.MenuID)
	}

	found, err := srv.menuRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load menu items")
	}

	menus := make(map[uuid.UUID]*entity.MenuItem, len(found))
	for _, menu := range found {
		menus[menu.ID] = menu
	}

	return menus, nil
}

// buildParticipantSummary derives one participant's position. Dangling menu or
// user references render as unknown placeholders with zero cost.
func (srv *orderService) buildParticipantSummary(ctx context.Context, userID uuid.UUID, items []*entity.OrderItem, payment *entity.Payment, menus map[uuid.UUID]*entity.MenuItem) usecase.ParticipantSummary {
	username := unknownPlaceholder
	if user, err := srv.userRepo.FindByID(ctx, userID); err == nil {
		username = user.Username
	}

	participant := usecase.ParticipantSummary{
		UserID:   userID,
		Username: username,
		Items:    make([]usecase.SummaryItem, 0, len(items)),
		Total:    decimal.Zero,
		Payment:  payment,
	}

	for _, item := range items {
		entry := usecase.SummaryItem{
			Item:     item,
			MenuName: unknownPlaceholder + " item",
			Price:    decimal.Zero,
			Cost:     decimal.Zero,
		}
		if menu, ok := menus[item.MenuID]; ok {
			entry.MenuName = menu.Name
			entry.Price = menu.Price
			entry.Cost = menu.Price.Mul(decimal.NewFromInt(int64(item.Qty)))
		}
		participant.Total = participant.Total.Add(entry.Cost)
		participant.Items = append(participant.Items, entry)
	}

	balance := entity.ParticipantBalance{Total: participant.Total, Payment: payment}
	participant.Remaining = balance.Remaining()

	return participant
}
