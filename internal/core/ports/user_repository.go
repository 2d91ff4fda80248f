package ports

import (
	"context"

	"github.com/pizzastore/ordering-system/internal/core/domain"
)

// ProfileUpdate carries the fields of a user record that may change after
// registration. Nil means unchanged.
type ProfileUpdate struct {
	FavoriteItem *string
	Phone        *string
	PasswordHash *string
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	UpdateProfile(ctx context.Context, login string, upd ProfileUpdate) error
	UpdateRole(ctx context.Context, login string, role domain.Role) error
	List(ctx context.Context) ([]domain.User, error)
}
