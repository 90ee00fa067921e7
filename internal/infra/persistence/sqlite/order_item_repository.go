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

// orderItemRepository implements the domain's OrderItemRepository interface using GORM.
type orderItemRepository struct {
	db *gorm.DB
}

// NewOrderItemRepository is the constructor for orderItemRepository.
func NewOrderItemRepository(db *gorm.DB) repository.OrderItemRepository {
	return &orderItemRepository{db: db}
}

// FindByID retrieves a single order item by its unique ID.
func (repo *orderItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.OrderItem, error) {
	var itemM model.OrderItemModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find order item by id")
	}

	return toOrderItemDomain(&itemM), nil
}

// FindByOrderMenuUser retrieves the unique row for one participant's selection
// of one menu item on one order.
func (repo *orderItemRepository) FindByOrderMenuUser(ctx context.Context, orderID, menuID, userID uuid.UUID) (*entity.OrderItem, error) {
	var itemM model.OrderItemModel
	if err := repo.db.WithContext(ctx).
		Where("order_id = ? AND menu_item_id = ? AND user_id = ?", orderID, menuID, userID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find order item")
	}

	return toOrderItemDomain(&itemM), nil
}

// FindByOrder retrieves all items on an order.
func (repo *orderItemRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	var models []model.OrderItemModel
	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list order items")
	}

	return toOrderItemDomainSlice(models), nil
}

// FindByOrderAndUser retrieves one participant's items on an order.
func (repo *orderItemRepository) FindByOrderAndUser(ctx context.Context, orderID, userID uuid.UUID) ([]*entity.OrderItem, error) {
	var models []model.OrderItemModel
	if err := repo.db.WithContext(ctx).
		Where("order_id = ? AND user_id = ?", orderID, userID).
		Order("created_at").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list participant order items")
	}

	return toOrderItemDomainSlice(models), nil
}

// FindByUser retrieves all items a participant has on any order.
func (repo *orderItemRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.OrderItem, error) {
	var models []model.OrderItemModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user order items")
	}

	return toOrderItemDomainSlice(models), nil
}

// Create persists a new order item.
func (repo *orderItemRepository) Create(ctx context.Context, item *entity.OrderItem) error {
	itemM := fromOrderItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		return errors.Wrap(err, "failed to create order item")
	}

	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Update modifies an existing order item.
func (repo *orderItemRepository) Update(ctx context.Context, item *entity.OrderItem) error {
	itemM := fromOrderItemDomain(item)

	if err := repo.db.WithContext(ctx).Save(itemM).Error; err != nil {
		return errors.Wrap(err, "failed to update order item")
	}

	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Delete removes an order item by its ID.
func (repo *orderItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.OrderItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete order item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderItemNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderItemDomain converts a GORM OrderItemModel to a domain OrderItem entity.
func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:        data.ID,
		OrderID:   data.OrderID,
		MenuID:    data.MenuItemID,
		UserID:    data.UserID,
		Qty:       data.Quantity,
		Note:      data.Note,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toOrderItemDomainSlice(models []model.OrderItemModel) []*entity.OrderItem {
	items := make([]*entity.OrderItem, 0, len(models))
	for i := range models {
		items = append(items, toOrderItemDomain(&models[i]))
	}

	return items
}

// fromOrderItemDomain converts a domain OrderItem entity to a GORM OrderItemModel.
func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	if data == nil {
		return nil
	}

	return &model.OrderItemModel{
		ID:         data.ID,
		OrderID:    data.OrderID,
		MenuItemID: data.MenuID,
		UserID:     data.UserID,
		Quantity:   data.Qty,
		Note:       data.Note,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
