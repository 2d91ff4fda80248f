package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the post-placement state of an order.
type OrderStatus string

const (
	StatusIncomplete OrderStatus = "incomplete"
	StatusComplete   OrderStatus = "complete"
)

// Toggle flips complete ↔ incomplete.
func (s OrderStatus) Toggle() OrderStatus {
	if s == StatusComplete {
		return StatusIncomplete
	}
	return StatusComplete
}

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrEmptyOrder      = errors.New("order has no lines")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	// ErrOrderCommitted rejects mutations against a draft whose line set
	// has already been frozen by commit.
	ErrOrderCommitted = errors.New("order already committed")
	ErrForbidden      = errors.New("access forbidden")
	// ErrStoreUnavailable wraps persistence-layer failures. The core never
	// retries; retry policy belongs to the persistence collaborator.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Order is the order header. Identifiers are strictly increasing and never
// reused. Total is authoritative only once Committed is true.
type Order struct {
	ID        int64           `json:"order_id"`
	Login     string          `json:"login"`
	StoreID   int64           `json:"store_id"`
	Total     decimal.Decimal `json:"total_price"`
	Status    OrderStatus     `json:"status"`
	Committed bool            `json:"committed"`
	CreatedAt time.Time       `json:"created_at"`
}

// OrderLine is a single confirmed item on an order. Immutable once created.
type OrderLine struct {
	OrderID   int64           `json:"order_id"`
	ItemName  string          `json:"item"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}
