package ports

import (
	"context"

	"github.com/pizzastore/ordering-system/internal/core/domain"
)

// UpdateProfileInput carries a user's own profile changes. Nil fields are
// left untouched; Password is the plaintext to hash.
type UpdateProfileInput struct {
	Login        string
	FavoriteItem *string
	Phone        *string
	Password     *string
}

// UserService defines own-profile use cases plus manager-only user
// administration.
type UserService interface {
	GetProfile(ctx context.Context, login string) (*domain.User, error)
	UpdateProfile(ctx context.Context, in UpdateProfileInput) error

	ListUsers(ctx context.Context, requester string) ([]domain.User, error)
	SetRole(ctx context.Context, requester, login string, role domain.Role) error
}

// AuthService defines registration and login.
type AuthService interface {
	// Register creates a customer account. The role is always customer;
	// promotion is a manager operation.
	Register(ctx context.Context, login, password, phone string) (*domain.User, error)
	// Login verifies credentials and returns a signed session token.
	Login(ctx context.Context, login, password string) (string, *domain.User, error)
}
