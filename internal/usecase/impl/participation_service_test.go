package impl

import (
	"context"
	"testing"

	"warung/internal/domain/entity"
	domainerrors "warung/internal/domain/errors"
	"warung/internal/domain/repository"
	mockRepo "warung/internal/mocks/repository"
	"warung/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// participationServiceFixtures holds all test dependencies for participation service tests.
type participationServiceFixtures struct {
	service       usecase.ParticipationUsecase
	txManager     *mockRepo.MockTransactionManager
	orderItemRepo *mockRepo.MockOrderItemRepository
}

func createTestParticipationService(t *testing.T) participationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderItemRepo := mockRepo.NewMockOrderItemRepository(t)

	service := NewParticipationService(txManager, orderItemRepo, newDiscardLogger())

	return participationServiceFixtures{
		service:       service,
		txManager:     txManager,
		orderItemRepo: orderItemRepo,
	}
}

func newTestUser(role entity.Role) *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Username: "test_user",
		Name:     "Test User",
		Role:     role,
	}
}

func newOpenOrder(driverID uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:       uuid.New(),
		DriverID: driverID,
		Status:   entity.OrderStatusOpen,
	}
}

func newMenuItem(name string, price int64) *entity.MenuItem {
	return &entity.MenuItem{
		ID:    uuid.New(),
		Name:  name,
		Price: decimal.NewFromInt(price),
	}
}

func TestParticipationService_AddItem_CreatesRow(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleUser)
	order := newOpenOrder(uuid.New())
	menu := newMenuItem("Nasi Goreng", 25)

	input := &usecase.AddItemInput{
		OrderID: order.ID,
		MenuID:  menu.ID,
		Qty:     2,
		Note:    "extra spicy",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockMenuRepo := mockRepo.NewMockMenuRepository(t)
			mockItemRepo := mockRepo.NewMockOrderItemRepository(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().MenuRepo().Return(mockMenuRepo)
			mockFactory.EXPECT().OrderItemRepo().Return(mockItemRepo)
			mockFactory.EXPECT().PaymentRepo().Return(mockPaymentRepo)

			mockUserRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			mockMenuRepo.EXPECT().FindByID(ctx, menu.ID).Return(menu, nil)
			mockItemRepo.EXPECT().
				FindByOrderMenuUser(ctx, order.ID, menu.ID, actor.ID).
				Return(nil, repository.ErrOrderItemNotFound)
			mockItemRepo.EXPECT().
				FindByOrderAndUser(ctx, order.ID, actor.ID).
				Return([]*entity.OrderItem{}, nil)
			mockMenuRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.MenuItem{}, nil)
			mockPaymentRepo.EXPECT().
				FindByOrderAndUser(ctx, order.ID, actor.ID).
				Return(nil, repository.ErrPaymentNotFound)
			mockItemRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.OrderItem")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	item, err := fx.service.AddItem(ctx, actor.ID, input)

	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, order.ID, item.OrderID)
	assert.Equal(t, menu.ID, item.MenuID)
	assert.Equal(t, actor.ID, item.UserID)
	assert.Equal(t, 2, item.Qty)
	assert.Equal(t, "extra spicy", item.Note)
}

func TestParticipationService_AddItem_MergesExistingRow(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleUser)
	order := newOpenOrder(uuid.New())
	menu := newMenuItem("Es Teh", 5)

	existing := &entity.OrderItem{
		ID:      uuid.New(),
		OrderID: order.ID,
		MenuID:  menu.ID,
		UserID:  actor.ID,
		Qty:     1,
		Note:    "less ice",
	}

	input := &usecase.AddItemInput{
		OrderID: order.ID,
		MenuID:  menu.ID,
		Qty:     2,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockMenuRepo := mockRepo.NewMockMenuRepository(t)
			mockItemRepo := mockRepo.NewMockOrderItemRepository(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().MenuRepo().Return(mockMenuRepo)
			mockFactory.EXPECT().OrderItemRepo().Return(mockItemRepo)
			mockFactory.EXPECT().PaymentRepo().Return(mockPaymentRepo)

			mockUserRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			mockMenuRepo.EXPECT().FindByID(ctx, menu.ID).Return(menu, nil)
			mockItemRepo.EXPECT().
				FindByOrderMenuUser(ctx, order.ID, menu.ID, actor.ID).
				Return(existing, nil)
			mockItemRepo.EXPECT().
				FindByOrderAndUser(ctx, order.ID, actor.ID).
				Return([]*entity.OrderItem{existing}, nil)
			mockMenuRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.MenuItem{menu}, nil)
			mockPaymentRepo.EXPECT().
				FindByOrderAndUser(ctx, order.ID, actor.ID).
				Return(nil, repository.ErrPaymentNotFound)
			mockItemRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.OrderItem")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	item, err := fx.service.AddItem(ctx, actor.ID, input)

	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, existing.ID, item.ID, "a repeated add merges instead of inserting a second row")
	assert.Equal(t, 3, item.Qty)
	assert.Equal(t, "less ice", item.Note, "an empty note leaves the old note in place")
}

func TestParticipationService_AddItem_PaymentExceeded(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleUser)
	order := newOpenOrder(uuid.New())
	menu := newMenuItem("Sate Ayam", 30)

	payment := &entity.Payment{
		ID:      uuid.New(),
		OrderID: order.ID,
		UserID:  actor.ID,
		Method:  entity.PaymentMethodCash,
		Amount:  decimal.NewFromInt(50),
	}

	input := &usecase.AddItemInput{
		OrderID: order.ID,
		MenuID:  menu.ID,
		Qty:     2, // 60 against a recorded 50
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockMenuRepo := mockRepo.NewMockMenuRepository(t)
			mockItemRepo := mockRepo.NewMockOrderItemRepository(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().MenuRepo().Return(mockMenuRepo)
			mockFactory.EXPECT().OrderItemRepo().Return(mockItemRepo)
			mockFactory.EXPECT().PaymentRepo().Return(mockPaymentRepo)

			mockUserRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			mockMenuRepo.EXPECT().FindByID(ctx, menu.ID).Return(menu, nil)
			mockItemRepo.EXPECT().
				FindByOrderMenuUser(ctx, order.ID, menu.ID, actor.ID).
				Return(nil, repository.ErrOrderItemNotFound)
			mockItemRepo.EXPECT().
				FindByOrderAndUser(ctx, order.ID, actor.ID).
				Return([]*entity.OrderItem{}, nil)
			mockMenuRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.MenuItem{}, nil)
			mockPaymentRepo.EXPECT().
				FindByOrderAndUser(ctx, order.ID, actor.ID).
				Return(payment, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrBalanceExceeded, "projected total 60 exceeds recorded payment 50"))

	item, err := fx.service.AddItem(ctx, actor.ID, input)

	assert.Error(t, err)
	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrBalanceExceeded))
}

func TestParticipationService_AddItem_ForOtherWithoutPermission(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleUser)
	other := uuid.New()

	input := &usecase.AddItemInput{
		OrderID: uuid.New(),
		MenuID:  uuid.New(),
		UserID:  &other,
		Qty:     1,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrUnauthorized, "cannot act on behalf of another participant"))

	item, err := fx.service.AddItem(ctx, actor.ID, input)

	assert.Error(t, err)
	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestParticipationService_AddItem_DriverAddsForParticipant(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	driver := newTestUser(entity.RoleDriver)
	participant := newTestUser(entity.RoleUser)
	order := newOpenOrder(driver.ID)
	menu := newMenuItem("Bakso", 15)

	input := &usecase.AddItemInput{
		OrderID: order.ID,
		MenuID:  menu.ID,
		UserID:  &participant.ID,
		Qty:     1,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockMenuRepo := mockRepo.NewMockMenuRepository(t)
			mockItemRepo := mockRepo.NewMockOrderItemRepository(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().MenuRepo().Return(mockMenuRepo)
			mockFactory.EXPECT().OrderItemRepo().Return(mockItemRepo)
			mockFactory.EXPECT().PaymentRepo().Return(mockPaymentRepo)

			mockUserRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)
			mockUserRepo.EXPECT().FindByID(ctx, participant.ID).Return(participant, nil)
			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			mockMenuRepo.EXPECT().FindByID(ctx, menu.ID).Return(menu, nil)
			mockItemRepo.EXPECT().
				FindByOrderMenuUser(ctx, order.ID, menu.ID, participant.ID).
				Return(nil, repository.ErrOrderItemNotFound)
			mockItemRepo.EXPECT().
				FindByOrderAndUser(ctx, order.ID, participant.ID).
				Return([]*entity.OrderItem{}, nil)
			mockMenuRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.MenuItem{}, nil)
			mockPaymentRepo.EXPECT().
				FindByOrderAndUser(ctx, order.ID, participant.ID).
				Return(nil, repository.ErrPaymentNotFound)
			mockItemRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.OrderItem")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	item, err := fx.service.AddItem(ctx, driver.ID, input)

	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, participant.ID, item.UserID, "the row belongs to the participant, not the driver")
}

func TestParticipationService_AddItem_OrderNotOpen(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleUser)
	order := newOpenOrder(uuid.New())
	order.Status = entity.OrderStatusClosed

	input := &usecase.AddItemInput{
		OrderID: order.ID,
		MenuID:  uuid.New(),
		Qty:     1,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockUserRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrOrderNotOpen, "order status is closed"))

	item, err := fx.service.AddItem(ctx, actor.ID, input)

	assert.Error(t, err)
	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotOpen))
}

func TestParticipationService_AddItem_InvalidQty(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	input := &usecase.AddItemInput{
		OrderID: uuid.New(),
		MenuID:  uuid.New(),
		Qty:     0,
	}

	item, err := fx.service.AddItem(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestParticipationService_UpdateItem_ZeroQtyDeletes(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleUser)
	order := newOpenOrder(uuid.New())

	item := &entity.OrderItem{
		ID:      uuid.New(),
		OrderID: order.ID,
		MenuID:  uuid.New(),
		UserID:  actor.ID,
		Qty:     2,
	}

	zero := 0
	input := &usecase.UpdateItemInput{Qty: &zero}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockItemRepo := mockRepo.NewMockOrderItemRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().OrderItemRepo().Return(mockItemRepo)

			mockUserRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			mockItemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			mockItemRepo.EXPECT().Delete(ctx, item.ID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.UpdateItem(ctx, actor.ID, item.ID, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.True(t, output.Deleted)
	assert.Nil(t, output.Item)
}

func TestParticipationService_UpdateItem_DriverCannotEditOthers(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	driver := newTestUser(entity.RoleDriver)

	item := &entity.OrderItem{
		ID:      uuid.New(),
		OrderID: uuid.New(),
		MenuID:  uuid.New(),
		UserID:  uuid.New(), // someone else's row
		Qty:     1,
	}

	three := 3
	input := &usecase.UpdateItemInput{Qty: &three}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockItemRepo := mockRepo.NewMockOrderItemRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OrderItemRepo().Return(mockItemRepo)

			mockUserRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)
			mockItemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrUnauthorized, "cannot modify another participant's item"))

	output, err := fx.service.UpdateItem(ctx, driver.ID, item.ID, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized),
		"drivers may add for others but never rewrite their rows")
}

func TestParticipationService_UpdateItem_OrderNotOpen(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleUser)
	order := newOpenOrder(uuid.New())
	order.Status = entity.OrderStatusClosed

	item := &entity.OrderItem{
		ID:      uuid.New(),
		OrderID: order.ID,
		MenuID:  uuid.New(),
		UserID:  actor.ID,
		Qty:     1,
	}

	three := 3
	input := &usecase.UpdateItemInput{Qty: &three}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockItemRepo := mockRepo.NewMockOrderItemRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().OrderItemRepo().Return(mockItemRepo)

			mockUserRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			mockItemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

			// No Update expectation: a closed order stops the flow before any write.
			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrOrderNotOpen, "order status is closed"))

	output, err := fx.service.UpdateItem(ctx, actor.ID, item.ID, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotOpen))
}

func TestParticipationService_RemoveItem_OrderNotOpen(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleUser)
	order := newOpenOrder(uuid.New())
	order.Status = entity.OrderStatusClosed

	item := &entity.OrderItem{
		ID:      uuid.New(),
		OrderID: order.ID,
		MenuID:  uuid.New(),
		UserID:  actor.ID,
		Qty:     1,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockItemRepo := mockRepo.NewMockOrderItemRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().OrderItemRepo().Return(mockItemRepo)

			mockUserRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			mockItemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

			// No Delete expectation: even the row's owner cannot remove it once closed.
			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrOrderNotOpen, "order status is closed"))

	err := fx.service.RemoveItem(ctx, actor.ID, item.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotOpen))
}

func TestParticipationService_RemoveItem_AdminRemovesAnyRow(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	admin := newTestUser(entity.RoleAdmin)
	order := newOpenOrder(uuid.New())

	item := &entity.OrderItem{
		ID:      uuid.New(),
		OrderID: order.ID,
		MenuID:  uuid.New(),
		UserID:  uuid.New(),
		Qty:     1,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockItemRepo := mockRepo.NewMockOrderItemRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().OrderItemRepo().Return(mockItemRepo)

			mockUserRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
			mockItemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			mockItemRepo.EXPECT().Delete(ctx, item.ID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.RemoveItem(ctx, admin.ID, item.ID)

	require.NoError(t, err)
}

func TestParticipationService_JoinOrder_FirstTime(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleUser)
	order := newOpenOrder(uuid.New())
	nasi := newMenuItem("Nasi Goreng", 25)
	teh := newMenuItem("Es Teh", 5)

	input := &usecase.JoinInput{
		Items: []usecase.JoinItemInput{
			{MenuID: nasi.ID, Qty: 1},
			{MenuID: teh.ID, Qty: 2},
		},
		Payment: &usecase.JoinPaymentInput{
			Method: entity.PaymentMethodDana,
			Amount: decimal.NewFromInt(40), // subtotal is 35
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockMenuRepo := mockRepo.NewMockMenuRepository(t)
			mockItemRepo := mockRepo.NewMockOrderItemRepository(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().MenuRepo().Return(mockMenuRepo)
			mockFactory.EXPECT().OrderItemRepo().Return(mockItemRepo)
			mockFactory.EXPECT().PaymentRepo().Return(mockPaymentRepo)

			mockUserRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			mockMenuRepo.EXPECT().FindByID(ctx, nasi.ID).Return(nasi, nil)
			mockMenuRepo.EXPECT().FindByID(ctx, teh.ID).Return(teh, nil)
			mockPaymentRepo.EXPECT().
				FindByOrderAndUser(ctx, order.ID, actor.ID).
				Return(nil, repository.ErrPaymentNotFound)
			mockItemRepo.EXPECT().
				FindByOrderMenuUser(ctx, order.ID, nasi.ID, actor.ID).
				Return(nil, repository.ErrOrderItemNotFound)
			mockItemRepo.EXPECT().
				FindByOrderMenuUser(ctx, order.ID, teh.ID, actor.ID).
				Return(nil, repository.ErrOrderItemNotFound)
			mockItemRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.OrderItem")).
				Return(nil)
			mockPaymentRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Payment")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.JoinOrder(ctx, actor.ID, order.ID, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Len(t, output.Items, 2)
	require.NotNil(t, output.Payment)
	assert.Equal(t, entity.PaymentMethodDana, output.Payment.Method)
	assert.True(t, decimal.NewFromInt(40).Equal(output.Payment.Amount))
}

func TestParticipationService_JoinOrder_PaymentTooSmall(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleUser)
	order := newOpenOrder(uuid.New())
	menu := newMenuItem("Nasi Goreng", 25)

	input := &usecase.JoinInput{
		Items: []usecase.JoinItemInput{
			{MenuID: menu.ID, Qty: 2},
		},
		Payment: &usecase.JoinPaymentInput{
			Method: entity.PaymentMethodCash,
			Amount: decimal.NewFromInt(30), // subtotal is 50
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockMenuRepo := mockRepo.NewMockMenuRepository(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().MenuRepo().Return(mockMenuRepo)
			mockFactory.EXPECT().PaymentRepo().Return(mockPaymentRepo)

			mockUserRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			mockMenuRepo.EXPECT().FindByID(ctx, menu.ID).Return(menu, nil)
			mockPaymentRepo.EXPECT().
				FindByOrderAndUser(ctx, order.ID, actor.ID).
				Return(nil, repository.ErrPaymentNotFound)

			// The coverage check fires before any row is written.
			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrBalanceExceeded, "payment 30 does not cover join subtotal 50"))

	output, err := fx.service.JoinOrder(ctx, actor.ID, order.ID, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrBalanceExceeded))
}

func TestParticipationService_JoinOrder_ExistingPaymentUntouched(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleUser)
	order := newOpenOrder(uuid.New())
	menu := newMenuItem("Es Teh", 5)

	payment := &entity.Payment{
		ID:      uuid.New(),
		OrderID: order.ID,
		UserID:  actor.ID,
		Method:  entity.PaymentMethodCash,
		Amount:  decimal.NewFromInt(100),
	}

	input := &usecase.JoinInput{
		Items: []usecase.JoinItemInput{
			{MenuID: menu.ID, Qty: 1},
		},
		// Supplied payment is ignored when one is already recorded.
		Payment: &usecase.JoinPaymentInput{
			Method: entity.PaymentMethodDana,
			Amount: decimal.NewFromInt(999),
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockMenuRepo := mockRepo.NewMockMenuRepository(t)
			mockItemRepo := mockRepo.NewMockOrderItemRepository(t)
			mockPaymentRepo := mockRepo.NewMockPaymentRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().MenuRepo().Return(mockMenuRepo)
			mockFactory.EXPECT().OrderItemRepo().Return(mockItemRepo)
			mockFactory.EXPECT().PaymentRepo().Return(mockPaymentRepo)

			mockUserRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			mockMenuRepo.EXPECT().FindByID(ctx, menu.ID).Return(menu, nil)
			mockPaymentRepo.EXPECT().
				FindByOrderAndUser(ctx, order.ID, actor.ID).
				Return(payment, nil)
			mockItemRepo.EXPECT().
				FindByOrderAndUser(ctx, order.ID, actor.ID).
				Return([]*entity.OrderItem{}, nil)
			mockMenuRepo.EXPECT().FindByIDs(ctx, mock.Anything).Return([]*entity.MenuItem{}, nil)
			mockItemRepo.EXPECT().
				FindByOrderMenuUser(ctx, order.ID, menu.ID, actor.ID).
				Return(nil, repository.ErrOrderItemNotFound)
			mockItemRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.OrderItem")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.JoinOrder(ctx, actor.ID, order.ID, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Len(t, output.Items, 1)
	assert.Nil(t, output.Payment, "a rejoin never rewrites the recorded payment")
}

func TestParticipationService_JoinOrder_NoItems(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	output, err := fx.service.JoinOrder(ctx, uuid.New(), uuid.New(), &usecase.JoinInput{})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestParticipationService_ListItemsByOrder(t *testing.T) {
	fx := createTestParticipationService(t)

	ctx := context.Background()
	orderID := uuid.New()
	items := []*entity.OrderItem{
		{ID: uuid.New(), OrderID: orderID, Qty: 1},
		{ID: uuid.New(), OrderID: orderID, Qty: 2},
	}

	fx.orderItemRepo.EXPECT().FindByOrder(ctx, orderID).Return(items, nil)

	got, err := fx.service.ListItemsByOrder(ctx, orderID)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
