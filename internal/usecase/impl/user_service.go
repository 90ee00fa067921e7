package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	deliverycontext "warung/internal/delivery/context"
	"warung/internal/domain/entity"
	domainerrors "warung/internal/domain/errors"
	"warung/internal/domain/repository"
	"warung/internal/domain/service"
	"warung/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// usernamePattern bounds usernames to a lowercase, URL-safe shape.
var usernamePattern = regexp.MustCompile(`^[a-z0-9_]{3,32}$`)

// userService implements the UserUsecase interface. It is the thin identity
// adapter around the one interface the core really consumes, GetUser.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new user-role account.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	return srv.createAccount(ctx, input.Username, input.Name, input.Password, entity.RoleUser)
}

// Login verifies credentials and issues a token pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	username := normalizeUsername(input.Username)

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown username")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	access, refresh, err := srv.tokenService.GenerateTokens(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{User: user, AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh validates a refresh token and issues a fresh token pair.
func (srv *userService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "refresh token rejected")
	}

	// The account may have been deleted or re-roled since the token was
	// issued; the stored record wins.
	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidToken, "account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	access, refresh, err := srv.tokenService.GenerateTokens(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{User: user, AccessToken: access, RefreshToken: refresh}, nil
}

// GetUser retrieves a single user by ID.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

// ListUsers retrieves all users. Requires user management permission.
func (srv *userService) ListUsers(ctx context.Context, actingUserID uuid.UUID) ([]*entity.User, error) {
	actor, err := loadActor(ctx, srv.userRepo, actingUserID)
	if err != nil {
		return nil, err
	}
	if !actor.Role.Can(entity.PermissionUserManage) {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "only admins may list users")
	}

	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// CreateUser provisions an account with an explicit role. Admin only.
func (srv *userService) CreateUser(ctx context.Context, actingUserID uuid.UUID, input *usecase.CreateUserInput) (*entity.User, error) {
	actor, err := loadActor(ctx, srv.userRepo, actingUserID)
	if err != nil {
		return nil, err
	}
	if !actor.Role.Can(entity.PermissionUserManage) {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "only admins may provision accounts")
	}
	if !input.Role.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidArgument, "unknown role %q", input.Role)
	}

	return srv.createAccount(ctx, input.Username, input.Name, input.Password, input.Role)
}

// UpdateUserRole changes a user's role. Admin only.
func (srv *userService) UpdateUserRole(ctx context.Context, actingUserID, targetUserID uuid.UUID, role entity.Role) (*entity.User, error) {
	if !role.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidArgument, "unknown role %q", role)
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repos.UserRepo(), actingUserID)
		if err != nil {
			return err
		}
		if !actor.Role.Can(entity.PermissionUserManage) {
			return errors.Wrap(domainerrors.ErrUnauthorized, "only admins may change roles")
		}

		user, err = repos.UserRepo().FindByID(ctx, targetUserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to load user")
		}

		user.Role = role
		user.UpdatedAt = time.Now()
		if err := repos.UserRepo().Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User role updated", slog.Any("userID", user.ID), slog.String("role", role.String()))

	return user, nil
}

// DeleteUser removes an account. Admin only; self-deletion is rejected.
func (srv *userService) DeleteUser(ctx context.Context, actingUserID, targetUserID uuid.UUID) error {
	if actingUserID == targetUserID {
		return errors.Wrap(domainerrors.ErrUnauthorized, "accounts cannot delete themselves")
	}

	return srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		actor, err := loadActor(ctx, repos.UserRepo(), actingUserID)
		if err != nil {
			return err
		}
		if !actor.Role.Can(entity.PermissionUserManage) {
			return errors.Wrap(domainerrors.ErrUnauthorized, "only admins may delete accounts")
		}

		if _, err := repos.UserRepo().FindByID(ctx, targetUserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to load user")
		}

		if err := repos.UserRepo().Delete(ctx, targetUserID); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
}

// createAccount is the shared registration path.
func (srv *userService) createAccount(ctx context.Context, username, name, password string, role entity.Role) (*entity.User, error) {
	username = normalizeUsername(username)
	if !usernamePattern.MatchString(username) {
		return nil, errors.Wrap(domainerrors.ErrInvalidArgument, "malformed username")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidArgument, "empty name")
	}
	if len(password) < 8 {
		return nil, errors.Wrap(domainerrors.ErrInvalidArgument, "password must be at least 8 characters")
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	var user *entity.User
	txErr := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		_, err := repos.UserRepo().FindByUsername(ctx, username)
		if err == nil {
			return errors.Wrap(domainerrors.ErrUsernameTaken, username)
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username")
		}

		user = &entity.User{
			ID:           uuid.New(),
			Username:     username,
			Name:         name,
			PasswordHash: hash,
			Role:         role,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		if err := repos.UserRepo().Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateUsername) {
				return errors.Wrap(domainerrors.ErrUsernameTaken, username)
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	srv.log(ctx).Info("Account created", slog.Any("userID", user.ID), slog.String("role", role.String()))

	return user, nil
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
