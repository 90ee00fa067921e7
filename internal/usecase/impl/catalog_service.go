package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	deliverycontext "warung/internal/delivery/context"
	"warung/internal/domain/entity"
	domainerrors "warung/internal/domain/errors"
	"warung/internal/domain/repository"
	"warung/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager repository.TransactionManager
	menuRepo  repository.MenuRepository
	collator  *collate.Collator
	logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	txManager repository.TransactionManager,
	menuRepo repository.MenuRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		txManager: txManager,
		menuRepo:  menuRepo,
		collator:  collate.New(language.Und, collate.Loose),
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateMenuItem creates a menu item owned by the acting user.
func (srv *catalogService) CreateMenuItem(ctx context.Context, actingUserID uuid.UUID, input *usecase.MenuItemInput) (*entity.MenuItem, error) {
	name, err := validateMenuRow(input.Name, input.Price)
	if err != nil {
		return nil, err
	}

	var item *entity.MenuItem
	txErr := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repos.UserRepo(), actingUserID)
		if err != nil {
			return err
		}

		item = &entity.MenuItem{
			ID:        uuid.New(),
			Name:      name,
			Price:     input.Price,
			OwnerID:   actor.ID,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := repos.MenuRepo().Create(ctx, item); err != nil {
			return errors.Wrap(err, "failed to create menu item")
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return item, nil
}

// UpdateMenuItem patches a menu item under the ownership rules.
func (srv *catalogService) UpdateMenuItem(ctx context.Context, actingUserID, itemID uuid.UUID, input *usecase.UpdateMenuItemInput) (*entity.MenuItem, error) {
	var item *entity.MenuItem
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repos.UserRepo(), actingUserID)
		if err != nil {
			return err
		}

		item, err = srv.loadMenuItem(ctx, repos.MenuRepo(), itemID)
		if err != nil {
			return err
		}

		if !actor.Role.CanOrOwns(entity.PermissionMenuWriteAny, actor.ID, item.OwnerID) {
			return errors.Wrap(domainerrors.ErrUnauthorized, "cannot modify a menu item you do not own")
		}

		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			if name == "" {
				return errors.Wrap(domainerrors.ErrInvalidArgument, "empty name")
			}
			item.Name = name
		}
		if input.Price != nil {
			if !input.Price.IsPositive() {
				return errors.Wrap(domainerrors.ErrInvalidArgument, "price must be positive")
			}
			item.Price = *input.Price
		}
		item.UpdatedAt = time.Now()

		if err := repos.MenuRepo().Update(ctx, item); err != nil {
			return errors.Wrap(err, "failed to update menu item")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteMenuItem removes a menu item under the ownership rules. Order items
// referencing it are not cascaded; reads render them as unknown items.
func (srv *catalogService) DeleteMenuItem(ctx context.Context, actingUserID, itemID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repos.UserRepo(), actingUserID)
		if err != nil {
			return err
		}

		item, err := srv.loadMenuItem(ctx, repos.MenuRepo(), itemID)
		if err != nil {
			return err
		}

		if !actor.Role.CanOrOwns(entity.PermissionMenuWriteAny, actor.ID, item.OwnerID) {
			return errors.Wrap(domainerrors.ErrUnauthorized, "cannot delete a menu item you do not own")
		}

		if err := repos.MenuRepo().Delete(ctx, item.ID); err != nil {
			return errors.Wrap(err, "failed to delete menu item")
		}

		return nil
	})
}

// BulkImport validates each row independently and creates the valid ones. A
// bad row lands in the failure partition and never aborts the batch.
func (srv *catalogService) BulkImport(ctx context.Context, actingUserID uuid.UUID, rows []usecase.MenuItemInput) (*usecase.BulkImportOutput, error) {
	output := &usecase.BulkImportOutput{
		Succeeded: make([]*entity.MenuItem, 0, len(rows)),
		Failed:    make([]usecase.BulkImportFailure, 0),
	}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repos.UserRepo(), actingUserID)
		if err != nil {
			return err
		}

		if !actor.Role.Can(entity.PermissionMenuBulkImport) {
			return errors.Wrap(domainerrors.ErrUnauthorized, "only admins may bulk-import menu items")
		}

		for i, row := range rows {
			name, reason := checkMenuRow(row.Name, row.Price)
			if reason != "" {
				output.Failed = append(output.Failed, usecase.BulkImportFailure{
					Index:  i,
					Reason: reason,
				})

				continue
			}

			item := &entity.MenuItem{
				ID:        uuid.New(),
				Name:      name,
				Price:     row.Price,
				OwnerID:   actor.ID,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			if err := repos.MenuRepo().Create(ctx, item); err != nil {
				return errors.Wrap(err, "failed to create menu item")
			}
			output.Succeeded = append(output.Succeeded, item)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Menu bulk import finished",
		slog.Int("succeeded", len(output.Succeeded)), slog.Int("failed", len(output.Failed)))

	return output, nil
}

// DeleteAll wipes the catalog. Callers pair it with BulkImport for
// replace-import semantics; the pair is deliberately not atomic.
func (srv *catalogService) DeleteAll(ctx context.Context, actingUserID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repos.UserRepo(), actingUserID)
		if err != nil {
			return err
		}

		if !actor.Role.Can(entity.PermissionMenuDeleteAll) {
			return errors.Wrap(domainerrors.ErrUnauthorized, "only admins may clear the catalog")
		}

		if err := repos.MenuRepo().DeleteAll(ctx); err != nil {
			return errors.Wrap(err, "failed to clear catalog")
		}

		return nil
	})
}

// GetMenuItem retrieves a single menu item.
func (srv *catalogService) GetMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	return srv.loadMenuItem(ctx, srv.menuRepo, id)
}

// ListMenuItems retrieves the catalog sorted by name, case-insensitively and
// locale-aware.
func (srv *catalogService) ListMenuItems(ctx context.Context) ([]*entity.MenuItem, error) {
	items, err := srv.menuRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	sort.SliceStable(items, func(i, j int) bool {
		return srv.collator.CompareString(items[i].Name, items[j].Name) < 0
	})

	return items, nil
}

// loadMenuItem fetches a menu item, mapping not-found to the domain error.
func (srv *catalogService) loadMenuItem(ctx context.Context, menus repository.MenuRepository, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := menus.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "menu item not found")
		}

		return nil, errors.Wrap(err, "failed to load menu item")
	}

	return item, nil
}

// checkMenuRow normalizes one catalog row and returns the trimmed name plus a
// rejection reason, empty when the row is valid.
func checkMenuRow(name string, price decimal.Decimal) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "empty name"
	}
	if !price.IsPositive() {
		return "", "price must be positive"
	}

	return name, ""
}

// validateMenuRow normalizes and validates one catalog row, returning the
// trimmed name.
func validateMenuRow(name string, price decimal.Decimal) (string, error) {
	trimmed, reason := checkMenuRow(name, price)
	if reason != "" {
		return "", errors.Wrap(domainerrors.ErrInvalidArgument, reason)
	}

	return trimmed, nil
}
