// Package usecase defines the application-facing interfaces of the business
// logic, together with their input and output DTOs.
package usecase

import (
	"context"

	"warung/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput is the input for self-service registration. New accounts always
// start with the regular user role.
type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput is the input for password login.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the issued token pair and the authenticated user.
type LoginOutput struct {
	User         *entity.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// RefreshInput is the input for refreshing an access token.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// CreateUserInput is the admin-only input for provisioning an account with an
// explicit role.
type CreateUserInput struct {
	Username string      `json:"username" validate:"required"`
	Name     string      `json:"name" validate:"required"`
	Password string      `json:"password" validate:"required,min=8"`
	Role     entity.Role `json:"role" validate:"required"`
}

// UserUsecase defines the identity operations. The reconciliation core consumes
// only GetUser; the rest is the thin provisioning adapter around it.
type UserUsecase interface {
	// Register creates a new user-role account.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Refresh validates a refresh token and issues a fresh token pair.
	Refresh(ctx context.Context, input *RefreshInput) (*LoginOutput, error)

	// GetUser retrieves a single user by ID.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ListUsers retrieves all users. Requires user management permission.
	ListUsers(ctx context.Context, actingUserID uuid.UUID) ([]*entity.User, error)

	// CreateUser provisions an account with an explicit role. Requires user
	// management permission.
	CreateUser(ctx context.Context, actingUserID uuid.UUID, input *CreateUserInput) (*entity.User, error)

	// UpdateUserRole changes a user's role. Requires user management permission.
	UpdateUserRole(ctx context.Context, actingUserID, targetUserID uuid.UUID, role entity.Role) (*entity.User, error)

	// DeleteUser removes an account. Requires user management permission;
	// self-deletion is rejected.
	DeleteUser(ctx context.Context, actingUserID, targetUserID uuid.UUID) error
}
