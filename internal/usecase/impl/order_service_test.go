package impl

import (
	"context"
	"testing"

	"warung/internal/domain/entity"
	domainerrors "warung/internal/domain/errors"
	"warung/internal/domain/repository"
	mockRepo "warung/internal/mocks/repository"
	mockSvc "warung/internal/mocks/service"
	"warung/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service       usecase.OrderUsecase
	txManager     *mockRepo.MockTransactionManager
	orderRepo     *mockRepo.MockOrderRepository
	orderItemRepo *mockRepo.MockOrderItemRepository
	paymentRepo   *mockRepo.MockPaymentRepository
	menuRepo      *mockRepo.MockMenuRepository
	userRepo      *mockRepo.MockUserRepository
	qrcodeService *mockSvc.MockQRCodeService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	orderItemRepo := mockRepo.NewMockOrderItemRepository(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	menuRepo := mockRepo.NewMockMenuRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)

	service := NewOrderService(
		txManager,
		orderRepo,
		orderItemRepo,
		paymentRepo,
		menuRepo,
		userRepo,
		qrcodeService,
		newDiscardLogger(),
	)

	return orderServiceFixtures{
		service:       service,
		txManager:     txManager,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		paymentRepo:   paymentRepo,
		menuRepo:      menuRepo,
		userRepo:      userRepo,
		qrcodeService: qrcodeService,
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	driver := newTestUser(entity.RoleDriver)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockUserRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)
			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, driver.ID, driver.ID)

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, driver.ID, order.DriverID)
	assert.Equal(t, entity.OrderStatusOpen, order.Status, "new orders start open")
}

func TestOrderService_CreateOrder_DriverMustHaveDriverRole(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	admin := newTestUser(entity.RoleAdmin)
	regular := newTestUser(entity.RoleUser)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
			mockUserRepo.EXPECT().FindByID(ctx, regular.ID).Return(regular, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrInvalidArgument, "order driver must have the driver role"))

	order, err := fx.service.CreateOrder(ctx, admin.ID, regular.ID)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestOrderService_CreateOrder_RegularUserUnauthorized(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	regular := newTestUser(entity.RoleUser)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, regular.ID).Return(regular, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrUnauthorized, "only admins and drivers may open orders"))

	order, err := fx.service.CreateOrder(ctx, regular.ID, regular.ID)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestOrderService_SetStatus_ReopenCompletedOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	driver := newTestUser(entity.RoleDriver)
	order := newOpenOrder(driver.ID)
	order.Status = entity.OrderStatusCompleted

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockUserRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)
			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			mockOrderRepo.EXPECT().
				UpdateStatus(ctx, order.ID, entity.OrderStatusOpen).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.SetStatus(ctx, driver.ID, order.ID, entity.OrderStatusOpen)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, entity.OrderStatusOpen, updated.Status, "completed orders may be reopened")
}

func TestOrderService_SetStatus_DriverCannotTouchOthersOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	driver := newTestUser(entity.RoleDriver)
	order := newOpenOrder(uuid.New()) // run by a different driver

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockUserRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)
			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrUnauthorized, "only admins or the order's driver may change its status"))

	updated, err := fx.service.SetStatus(ctx, driver.ID, order.ID, entity.OrderStatusClosed)

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestOrderService_SetStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	updated, err := fx.service.SetStatus(ctx, uuid.New(), uuid.New(), entity.OrderStatus("paused"))

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestOrderService_DeleteOrder_RequiresAdmin(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	driver := newTestUser(entity.RoleDriver)
	orderID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrUnauthorized, "only admins may delete orders"))

	err := fx.service.DeleteOrder(ctx, driver.ID, orderID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestOrderService_GetOrderSummary(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := newOpenOrder(uuid.New())

	alice := &entity.User{ID: uuid.New(), Username: "alice", Role: entity.RoleUser}
	bob := &entity.User{ID: uuid.New(), Username: "bob", Role: entity.RoleUser}

	nasi := newMenuItem("Nasi Goreng", 25)
	deletedMenuID := uuid.New()

	items := []*entity.OrderItem{
		{ID: uuid.New(), OrderID: order.ID, MenuID: nasi.ID, UserID: alice.ID, Qty: 2},
		{ID: uuid.New(), OrderID: order.ID, MenuID: deletedMenuID, UserID: bob.ID, Qty: 1},
	}
	payments := []*entity.Payment{
		{ID: uuid.New(), OrderID: order.ID, UserID: alice.ID, Method: entity.PaymentMethodCash, Amount: decimal.NewFromInt(60)},
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderItemRepo.EXPECT().FindByOrder(ctx, order.ID).Return(items, nil)
	fx.paymentRepo.EXPECT().FindByOrder(ctx, order.ID).Return(payments, nil)
	// The deleted menu entry is simply absent from the lookup result.
	fx.menuRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.MenuItem{nasi}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, alice.ID).Return(alice, nil)
	fx.userRepo.EXPECT().FindByID(ctx, bob.ID).Return(bob, nil)

	summary, err := fx.service.GetOrderSummary(ctx, order.ID)

	require.NoError(t, err)
	require.NotNil(t, summary)
	require.Len(t, summary.Participants, 2)

	// Participants come back sorted by username.
	first := summary.Participants[0]
	assert.Equal(t, "alice", first.Username)
	assert.True(t, decimal.NewFromInt(50).Equal(first.Total))
	require.NotNil(t, first.Payment)
	assert.True(t, decimal.NewFromInt(10).Equal(first.Remaining))

	second := summary.Participants[1]
	assert.Equal(t, "bob", second.Username)
	require.Len(t, second.Items, 1)
	assert.Equal(t, "unknown item", second.Items[0].MenuName)
	assert.True(t, second.Items[0].Cost.IsZero(), "a dangling menu reference prices at zero")
	assert.Nil(t, second.Payment)

	assert.True(t, decimal.NewFromInt(50).Equal(summary.GrandTotal))
}

func TestOrderService_GetOrderSummary_DeletedUserRendersUnknown(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := newOpenOrder(uuid.New())
	menu := newMenuItem("Bakso", 15)
	ghostID := uuid.New()

	items := []*entity.OrderItem{
		{ID: uuid.New(), OrderID: order.ID, MenuID: menu.ID, UserID: ghostID, Qty: 1},
	}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.orderItemRepo.EXPECT().FindByOrder(ctx, order.ID).Return(items, nil)
	fx.paymentRepo.EXPECT().FindByOrder(ctx, order.ID).Return([]*entity.Payment{}, nil)
	fx.menuRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.MenuItem{menu}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, ghostID).Return(nil, repository.ErrUserNotFound)

	summary, err := fx.service.GetOrderSummary(ctx, order.ID)

	require.NoError(t, err)
	require.Len(t, summary.Participants, 1)
	assert.Equal(t, "unknown", summary.Participants[0].Username)
	assert.True(t, decimal.NewFromInt(15).Equal(summary.Participants[0].Total),
		"a deleted account still owes its items")
}

func TestOrderService_ListOrdersByStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orders, err := fx.service.ListOrdersByStatus(ctx, entity.OrderStatus("archived"))

	assert.Error(t, err)
	assert.Nil(t, orders)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestOrderService_GenerateJoinQR(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := newOpenOrder(uuid.New())
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.qrcodeService.EXPECT().GenerateJoinQR(order.ID).Return(png, nil)

	got, err := fx.service.GenerateJoinQR(ctx, order.ID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.GetOrder(ctx, orderID)

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
