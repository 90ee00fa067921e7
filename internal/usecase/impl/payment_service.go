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
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager   repository.TransactionManager
	paymentRepo repository.PaymentRepository
	logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(
	txManager repository.TransactionManager,
	paymentRepo repository.PaymentRepository,
	logger *slog.Logger,
) usecase.PaymentUsecase {
	return &paymentService{
		txManager:   txManager,
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpsertPayment records or updates a participant's payment on an open order.
// The new amount must keep covering the participant's current item total; the
// pre-check runs here because the ledger row alone cannot see the items.
func (srv *paymentService) UpsertPayment(ctx context.Context, actingUserID uuid.UUID, input *usecase.UpsertPaymentInput) (*entity.Payment, error) {
	if !input.Method.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidArgument, "unknown payment method")
	}
	if !input.Amount.IsPositive() {
		return nil, errors.Wrap(domainerrors.ErrInvalidArgument, "payment amount must be positive")
	}

	var result *entity.Payment
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repos.UserRepo(), actingUserID)
		if err != nil {
			return err
		}

		participantID, err := resolveParticipant(ctx, repos.UserRepo(), actor, input.UserID, entity.PermissionPaymentWriteAny)
		if err != nil {
			return err
		}

		order, err := requireOpenOrder(ctx, repos.OrderRepo(), input.OrderID)
		if err != nil {
			return err
		}

		balance, err := participantBalance(ctx, repos, order.ID, participantID, uuid.Nil)
		if err != nil {
			return err
		}
		if input.Amount.LessThan(balance.Total) {
			return errors.Wrapf(domainerrors.ErrBalanceExceeded,
				"payment %s does not cover current item total %s", input.Amount, balance.Total)
		}

		if balance.Payment != nil {
			payment := balance.Payment
			payment.Apply(input.Method, input.Amount)
			payment.UpdatedAt = time.Now()
			if err := repos.PaymentRepo().Update(ctx, payment); err != nil {
				return errors.Wrap(err, "failed to update payment")
			}
			result = payment

			return nil
		}

		payment := &entity.Payment{
			ID:        uuid.New(),
			OrderID:   order.ID,
			UserID:    participantID,
			Method:    input.Method,
			Amount:    input.Amount,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := repos.PaymentRepo().Create(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to create payment")
		}
		result = payment

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Payment recorded",
		slog.Any("orderID", input.OrderID), slog.Any("paymentID", result.ID), slog.String("method", result.Method.String()))

	return result, nil
}

// DeletePayment removes a payment on an open order.
func (srv *paymentService) DeletePayment(ctx context.Context, actingUserID, paymentID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repos.UserRepo(), actingUserID)
		if err != nil {
			return err
		}

		payment, err := repos.PaymentRepo().FindByID(ctx, paymentID)
		if err != nil {
			if errors.Is(err, repository.ErrPaymentNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "payment not found")
			}

			return errors.Wrap(err, "failed to load payment")
		}

		if !actor.Role.CanOrOwns(entity.PermissionPaymentWriteAny, actor.ID, payment.UserID) {
			return errors.Wrap(domainerrors.ErrUnauthorized, "cannot delete another participant's payment")
		}

		if _, err := requireOpenOrder(ctx, repos.OrderRepo(), payment.OrderID); err != nil {
			return err
		}

		if err := repos.PaymentRepo().Delete(ctx, payment.ID); err != nil {
			return errors.Wrap(err, "failed to delete payment")
		}

		return nil
	})
}

// GetPayment retrieves the unique payment of one participant on one order.
func (srv *paymentService) GetPayment(ctx context.Context, orderID, userID uuid.UUID) (*entity.Payment, error) {
	payment, err := srv.paymentRepo.FindByOrderAndUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "payment not found")
		}

		return nil, errors.Wrap(err, "failed to load payment")
	}

	return payment, nil
}

// ListPaymentsByOrder retrieves all payments on an order.
func (srv *paymentService) ListPaymentsByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error) {
	payments, err := srv.paymentRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order payments")
	}

	return payments, nil
}

// ListPaymentsByUser retrieves all payments a participant has across orders.
func (srv *paymentService) ListPaymentsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error) {
	payments, err := srv.paymentRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user payments")
	}

	return payments, nil
}
