package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pizzastore/ordering-system/internal/core/domain"
	"github.com/pizzastore/ordering-system/internal/core/ports"
)

// policy is the single role × operation permission table. Customers get
// own-scoped operations plus ordering and the menu; drivers additionally
// see and mutate every order; menu and user administration are reserved to
// managers.
var policy = map[domain.Role]map[domain.Operation]bool{
	domain.RoleCustomer: {
		domain.OpViewOwnProfile: true,
		domain.OpEditOwnProfile: true,
		domain.OpViewMenu:       true,
		domain.OpPlaceOrder:     true,
		domain.OpViewOwnOrders:  true,
		domain.OpViewOrder:      true, // own orders only, see AuthorizeOrder
	},
	domain.RoleDriver: {
		domain.OpViewOwnProfile:    true,
		domain.OpEditOwnProfile:    true,
		domain.OpViewMenu:          true,
		domain.OpPlaceOrder:        true,
		domain.OpViewOwnOrders:     true,
		domain.OpViewAllOrders:     true,
		domain.OpViewOrder:         true,
		domain.OpUpdateOrderStatus: true,
	},
	domain.RoleManager: {
		domain.OpViewOwnProfile:    true,
		domain.OpEditOwnProfile:    true,
		domain.OpViewMenu:          true,
		domain.OpPlaceOrder:        true,
		domain.OpViewOwnOrders:     true,
		domain.OpViewAllOrders:     true,
		domain.OpViewOrder:         true,
		domain.OpUpdateOrderStatus: true,
		domain.OpManageMenu:        true,
		domain.OpManageUsers:       true,
	},
}

// Gate implements ports.Authorizer against the user store. The role is
// resolved from the store on every decision rather than trusted from the
// session token, so a deleted account is denied immediately.
type Gate struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewGate(users ports.UserRepository, log zerolog.Logger) *Gate {
	return &Gate{users: users, log: log}
}

func (g *Gate) Authorize(ctx context.Context, login string, op domain.Operation) error {
	role, err := g.resolveRole(ctx, login)
	if err != nil {
		return err
	}

	if !policy[role][op] {
		g.log.Debug().Str("login", login).Str("role", string(role)).Str("operation", string(op)).Msg("operation denied")
		return domain.ErrForbidden
	}
	return nil
}

func (g *Gate) AuthorizeOrder(ctx context.Context, login string, order *domain.Order) error {
	role, err := g.resolveRole(ctx, login)
	if err != nil {
		return err
	}

	if !policy[role][domain.OpViewOrder] {
		return domain.ErrForbidden
	}
	if role == domain.RoleCustomer && order.Login != login {
		g.log.Debug().Str("login", login).Int64("order_id", order.ID).Msg("foreign order denied")
		return domain.ErrForbidden
	}
	return nil
}

func (g *Gate) resolveRole(ctx context.Context, login string) (domain.Role, error) {
	user, err := g.users.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrUnknownUser
		}
		return "", fmt.Errorf("resolve role: %w", err)
	}
	return user.Role, nil
}
