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

// paymentRepository implements the domain's PaymentRepository interface using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// FindByID retrieves a single payment by its unique ID.
func (repo *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by id")
	}

	return toPaymentDomain(&paymentM), nil
}

// FindByOrderAndUser retrieves the unique payment row for one participant on one order.
func (repo *paymentRepository) FindByOrderAndUser(ctx context.Context, orderID, userID uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel
	if err := repo.db.WithContext(ctx).
		Where("order_id = ? AND user_id = ?", orderID, userID).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment")
	}

	return toPaymentDomain(&paymentM), nil
}

// FindByOrder retrieves all payments on an order.
func (repo *paymentRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error) {
	var models []model.PaymentModel
	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list order payments")
	}

	return toPaymentDomainSlice(models), nil
}

// FindByUser retrieves all payments a participant has on any order.
func (repo *paymentRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error) {
	var models []model.PaymentModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user payments")
	}

	return toPaymentDomainSlice(models), nil
}

// Create persists a new payment.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		return errors.Wrap(err, "failed to create payment")
	}

	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

// Update modifies an existing payment.
func (repo *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Save(paymentM).Error; err != nil {
		return errors.Wrap(err, "failed to update payment")
	}

	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

// Delete removes a payment by its ID.
func (repo *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PaymentModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete payment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM PaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:        data.ID,
		OrderID:   data.OrderID,
		UserID:    data.UserID,
		Method:    entity.PaymentMethod(data.Method),
		Amount:    data.Amount,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toPaymentDomainSlice(models []model.PaymentModel) []*entity.Payment {
	payments := make([]*entity.Payment, 0, len(models))
	for i := range models {
		payments = append(payments, toPaymentDomain(&models[i]))
	}

	return payments
}

// fromPaymentDomain converts a domain Payment entity to a GORM PaymentModel.
func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:        data.ID,
		OrderID:   data.OrderID,
		UserID:    data.UserID,
		Method:    data.Method.String(),
		Amount:    data.Amount,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
