package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/pizzastore/ordering-system/internal/core/domain"
)

// OrderListFilter carries query parameters for listing orders.
// The service layer decides Login from the requester's scope.
type OrderListFilter struct {
	Login string // empty = all users (driver/manager only)
	Limit int    // 0 = no limit; the service caps it
}

// OrderRepository defines persistence operations for orders and their lines.
type OrderRepository interface {
	// Create atomically allocates the next order identifier (strictly
	// increasing, never reused) and inserts the header with status
	// incomplete and total 0.
	Create(ctx context.Context, login string, storeID int64) (*domain.Order, error)
	Find(ctx context.Context, orderID int64) (*domain.Order, error)
	// Lines returns the order's lines in insertion order.
	Lines(ctx context.Context, orderID int64) ([]domain.OrderLine, error)
	// AddLine inserts a line and bumps the header's running total by the
	// line total, in one transaction. Fails with domain.ErrOrderCommitted
	// when the draft is no longer open.
	AddLine(ctx context.Context, line *domain.OrderLine) error
	// Delete removes the draft header and all its lines in one transaction.
	Delete(ctx context.Context, orderID int64) error
	// Commit writes the final total and freezes the line set in one
	// transaction.
	Commit(ctx context.Context, orderID int64, total decimal.Decimal) error
	// List returns orders matching filter, newest first.
	List(ctx context.Context, filter OrderListFilter) ([]domain.Order, error)
	// ToggleStatus flips complete ↔ incomplete and returns the new status.
	ToggleStatus(ctx context.Context, orderID int64) (domain.OrderStatus, error)
}
