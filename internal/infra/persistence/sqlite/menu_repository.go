package sqlite

import (
	"context"

	"warung/internal/domain/entity"
	"warung/internal/domain/repository"
	"warung/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// menuRepository implements the domain's MenuRepository interface using GORM.
type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository is the constructor for menuRepository.
func NewMenuRepository(db *gorm.DB) repository.MenuRepository {
	return &menuRepository{db: db}
}

// FindByID retrieves a single menu item by its unique ID.
func (repo *menuRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var itemM model.MenuItemModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item by id")
	}

	return toMenuItemDomain(&itemM), nil
}

// FindByIDs retrieves the menu items matching the given IDs. Missing IDs are
// silently absent from the result.
func (repo *menuRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []model.MenuItemModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find menu items by ids")
	}

	items := make([]*entity.MenuItem, 0, len(models))
	for i := range models {
		items = append(items, toMenuItemDomain(&models[i]))
	}

	return items, nil
}

// Create persists a new menu item.
func (repo *menuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromMenuItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		return errors.Wrap(err, "failed to create menu item")
	}

	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Update modifies an existing menu item.
func (repo *menuRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromMenuItemDomain(item)

	if err := repo.db.WithContext(ctx).Save(itemM).Error; err != nil {
		return errors.Wrap(err, "failed to update menu item")
	}

	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Delete removes a menu item by its ID.
func (repo *menuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MenuItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete menu item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

// DeleteAll wipes the whole catalog.
func (repo *menuRepository) DeleteAll(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).Where("1 = 1").Delete(&model.MenuItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete all menu items")
	}

	return nil
}

// List retrieves all menu items.
func (repo *menuRepository) List(ctx context.Context) ([]*entity.MenuItem, error) {
	var models []model.MenuItemModel
	if err := repo.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	items := make([]*entity.MenuItem, 0, len(models))
	for i := range models {
		items = append(items, toMenuItemDomain(&models[i]))
	}

	return items, nil
}

// --- Mapper Functions ---

// toMenuItemDomain converts a GORM MenuItemModel to a domain MenuItem entity.
func toMenuItemDomain(data *model.MenuItemModel) *entity.MenuItem {
	if data == nil {
		return nil
	}

	return &entity.MenuItem{
		ID:        data.ID,
		Name:      data.Name,
		Price:     data.Price,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromMenuItemDomain converts a domain MenuItem entity to a GORM MenuItemModel.
func fromMenuItemDomain(data *entity.MenuItem) *model.MenuItemModel {
	if data == nil {
		return nil
	}

	return &model.MenuItemModel{
		ID:        data.ID,
		Name:      data.Name,
		Price:     data.Price,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
