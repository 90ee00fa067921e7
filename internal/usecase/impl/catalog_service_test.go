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

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service   usecase.CatalogUsecase
	txManager *mockRepo.MockTransactionManager
	menuRepo  *mockRepo.MockMenuRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	menuRepo := mockRepo.NewMockMenuRepository(t)

	service := NewCatalogService(txManager, menuRepo, newDiscardLogger())

	return catalogServiceFixtures{
		service:   service,
		txManager: txManager,
		menuRepo:  menuRepo,
	}
}

func TestCatalogService_CreateMenuItem_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleUser)

	input := &usecase.MenuItemInput{
		Name:  "  Nasi Goreng  ",
		Price: decimal.NewFromInt(25),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockMenuRepo := mockRepo.NewMockMenuRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().MenuRepo().Return(mockMenuRepo)

			mockUserRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			mockMenuRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.MenuItem")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	item, err := fx.service.CreateMenuItem(ctx, actor.ID, input)

	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Nasi Goreng", item.Name, "names are stored trimmed")
	assert.Equal(t, actor.ID, item.OwnerID)
}

func TestCatalogService_CreateMenuItem_NonPositivePrice(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.MenuItemInput{
		Name:  "Gratis",
		Price: decimal.Zero,
	}

	item, err := fx.service.CreateMenuItem(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestCatalogService_UpdateMenuItem_NotOwner(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	actor := newTestUser(entity.RoleUser)

	item := &entity.MenuItem{
		ID:      uuid.New(),
		Name:    "Bakso",
		Price:   decimal.NewFromInt(15),
		OwnerID: uuid.New(),
	}

	name := "Bakso Urat"
	input := &usecase.UpdateMenuItemInput{Name: &name}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockMenuRepo := mockRepo.NewMockMenuRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().MenuRepo().Return(mockMenuRepo)

			mockUserRepo.EXPECT().FindByID(ctx, actor.ID).Return(actor, nil)
			mockMenuRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrUnauthorized, "cannot modify a menu item you do not own"))

	updated, err := fx.service.UpdateMenuItem(ctx, actor.ID, item.ID, input)

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestCatalogService_UpdateMenuItem_AdminOverridesOwnership(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	admin := newTestUser(entity.RoleAdmin)

	item := &entity.MenuItem{
		ID:      uuid.New(),
		Name:    "Bakso",
		Price:   decimal.NewFromInt(15),
		OwnerID: uuid.New(),
	}

	price := decimal.NewFromInt(18)
	input := &usecase.UpdateMenuItemInput{Price: &price}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockMenuRepo := mockRepo.NewMockMenuRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().MenuRepo().Return(mockMenuRepo)

			mockUserRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
			mockMenuRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
			mockMenuRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.MenuItem")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateMenuItem(ctx, admin.ID, item.ID, input)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, decimal.NewFromInt(18).Equal(updated.Price))
}

func TestCatalogService_BulkImport_PartitionsRows(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	admin := newTestUser(entity.RoleAdmin)

	rows := []usecase.MenuItemInput{
		{Name: "Nasi Goreng", Price: decimal.NewFromInt(25)},
		{Name: "   ", Price: decimal.NewFromInt(10)},
		{Name: "Es Teh", Price: decimal.NewFromInt(5)},
		{Name: "Sate Ayam", Price: decimal.Zero},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockMenuRepo := mockRepo.NewMockMenuRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().MenuRepo().Return(mockMenuRepo)

			mockUserRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
			mockMenuRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.MenuItem")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.BulkImport(ctx, admin.ID, rows)

	require.NoError(t, err)
	require.NotNil(t, output)
	require.Len(t, output.Succeeded, 2)
	assert.Equal(t, "Nasi Goreng", output.Succeeded[0].Name)
	assert.Equal(t, "Es Teh", output.Succeeded[1].Name)

	require.Len(t, output.Failed, 2)
	assert.Equal(t, 1, output.Failed[0].Index)
	assert.Equal(t, "empty name", output.Failed[0].Reason)
	assert.Equal(t, 3, output.Failed[1].Index)
	assert.Equal(t, "price must be positive", output.Failed[1].Reason)
}

func TestCatalogService_BulkImport_RequiresAdmin(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	driver := newTestUser(entity.RoleDriver)

	rows := []usecase.MenuItemInput{
		{Name: "Nasi Goreng", Price: decimal.NewFromInt(25)},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, driver.ID).Return(driver, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrUnauthorized, "only admins may bulk-import menu items"))

	output, err := fx.service.BulkImport(ctx, driver.ID, rows)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestCatalogService_DeleteAll_RequiresAdmin(t *testing.T) {
	fx := createTestCatalogService(t)

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
		Return(errors.Wrap(domainerrors.ErrUnauthorized, "only admins may clear the catalog"))

	err := fx.service.DeleteAll(ctx, regular.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestCatalogService_ListMenuItems_SortsCaseInsensitively(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	items := []*entity.MenuItem{
		{ID: uuid.New(), Name: "sate ayam", Price: decimal.NewFromInt(30)},
		{ID: uuid.New(), Name: "Bakso", Price: decimal.NewFromInt(15)},
		{ID: uuid.New(), Name: "es teh", Price: decimal.NewFromInt(5)},
	}

	fx.menuRepo.EXPECT().List(ctx).Return(items, nil)

	got, err := fx.service.ListMenuItems(ctx)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Bakso", got[0].Name)
	assert.Equal(t, "es teh", got[1].Name)
	assert.Equal(t, "sate ayam", got[2].Name)
}

func TestCatalogService_GetMenuItem_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.menuRepo.EXPECT().FindByID(ctx, itemID).Return(nil, repository.ErrMenuItemNotFound)

	item, err := fx.service.GetMenuItem(ctx, itemID)

	assert.Error(t, err)
	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
