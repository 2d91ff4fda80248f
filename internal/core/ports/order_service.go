package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pizzastore/ordering-system/internal/core/domain"
)

// BeginOrderInput opens a new draft order for a customer at a store.
type BeginOrderInput struct {
	Login   string
	StoreID int64
}

// AddLineInput adds one confirmed item to an open draft.
type AddLineInput struct {
	Requester string
	OrderID   int64
	ItemName  string
	Quantity  int
}

// OrderRef identifies an order together with the requester acting on it.
type OrderRef struct {
	Requester string
	OrderID   int64
}

// List scopes for ListOrdersInput.
const (
	ScopeOwn = "own"
	ScopeAll = "all"
)

// ListOrdersInput carries all parameters for the order list operation.
type ListOrdersInput struct {
	Requester string
	Scope     string // "own" or "all"
	ByUser    string // optional, all-scope only
	Limit     int    // optional most-recent-N, capped by the service
}

// OrderLineView is a line joined with its item name, as returned in detail
// responses.
type OrderLineView struct {
	ItemName  string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// OrderDetail is the full order view: header plus lines in insertion order.
type OrderDetail struct {
	ID        int64
	Login     string
	StoreID   int64
	Total     decimal.Decimal
	Status    domain.OrderStatus
	Committed bool
	CreatedAt time.Time
	Lines     []OrderLineView
}

// OrderSummary is the lightweight view used in list responses.
type OrderSummary struct {
	ID        int64
	Login     string
	StoreID   int64
	Total     decimal.Decimal
	Status    domain.OrderStatus
	CreatedAt time.Time
}

// OrderService defines the order builder and status machine use cases.
type OrderService interface {
	BeginOrder(ctx context.Context, in BeginOrderInput) (int64, error)
	AddLine(ctx context.Context, in AddLineInput) (decimal.Decimal, error)
	CancelOrder(ctx context.Context, ref OrderRef) error
	CommitOrder(ctx context.Context, ref OrderRef) (decimal.Decimal, error)

	GetOrder(ctx context.Context, ref OrderRef) (*OrderDetail, error)
	ListOrders(ctx context.Context, in ListOrdersInput) ([]OrderSummary, error)
	ToggleStatus(ctx context.Context, ref OrderRef) (domain.OrderStatus, error)
}
