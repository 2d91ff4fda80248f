package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pizzastore/ordering-system/internal/core/domain"
	"github.com/pizzastore/ordering-system/internal/core/ports"
)

// ProfileService implements own-profile use cases and manager-only user
// administration.
type ProfileService struct {
	users   ports.UserRepository
	catalog ports.CatalogRepository
	gate    ports.Authorizer
	log     zerolog.Logger
}

func NewProfileService(users ports.UserRepository, catalog ports.CatalogRepository, gate ports.Authorizer, log zerolog.Logger) *ProfileService {
	return &ProfileService{users: users, catalog: catalog, gate: gate, log: log}
}

func (s *ProfileService) GetProfile(ctx context.Context, login string) (*domain.User, error) {
	if err := s.gate.Authorize(ctx, login, domain.OpViewOwnProfile); err != nil {
		return nil, err
	}

	user, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return user, nil
}

// UpdateProfile changes a user's own favorite item, phone, or password.
// The favorite item must name an existing menu item.
func (s *ProfileService) UpdateProfile(ctx context.Context, in ports.UpdateProfileInput) error {
	if err := s.gate.Authorize(ctx, in.Login, domain.OpEditOwnProfile); err != nil {
		return err
	}

	upd := ports.ProfileUpdate{Phone: in.Phone}

	if in.FavoriteItem != nil {
		if _, err := s.catalog.FindItem(ctx, *in.FavoriteItem); err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		upd.FavoriteItem = in.FavoriteItem
	}

	if in.Password != nil {
		if *in.Password == "" {
			return domain.ErrInvalidCredentials
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		hashed := string(hash)
		upd.PasswordHash = &hashed
	}

	if err := s.users.UpdateProfile(ctx, in.Login, upd); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	s.log.Info().Str("login", in.Login).Msg("profile updated")
	return nil
}

func (s *ProfileService) ListUsers(ctx context.Context, requester string) ([]domain.User, error) {
	if err := s.gate.Authorize(ctx, requester, domain.OpManageUsers); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// SetRole promotes or demotes an account. Manager only.
func (s *ProfileService) SetRole(ctx context.Context, requester, login string, role domain.Role) error {
	if err := s.gate.Authorize(ctx, requester, domain.OpManageUsers); err != nil {
		return err
	}
	if !domain.ValidRole(string(role)) {
		return fmt.Errorf("set role: invalid role %q", role)
	}

	if err := s.users.UpdateRole(ctx, login, role); err != nil {
		return fmt.Errorf("set role: %w", err)
	}

	s.log.Info().Str("login", login).Str("role", string(role)).Str("by", requester).Msg("user role changed")
	return nil
}
