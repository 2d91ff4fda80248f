package ports

import (
	"context"

	"github.com/pizzastore/ordering-system/internal/core/domain"
)

// Authorizer is the single decision point for role-based permissions.
// Every mutating or scoped-read operation consults it before acting.
type Authorizer interface {
	// Authorize resolves login's role and checks it against the policy
	// table for op. Returns nil when permitted, domain.ErrForbidden when
	// denied, and domain.ErrUnknownUser when login cannot be resolved.
	Authorize(ctx context.Context, login string, op domain.Operation) error

	// AuthorizeOrder decides the view-order / mutate-order case: a
	// customer is permitted only on their own orders, driver and manager
	// always.
	AuthorizeOrder(ctx context.Context, login string, order *domain.Order) error
}
