package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownStore = errors.New("unknown store")
	ErrUnknownItem  = errors.New("unknown item")
	ErrInvalidPrice = errors.New("price must be non-negative")
)

// Store is a physical location. Read-only: stores are bulk-loaded, never
// mutated through the API.
type Store struct {
	ID      int64  `json:"store_id"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// Item is a menu entry, identified by its unique name (case-sensitive).
type Item struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Ingredients string          `json:"ingredients"`
	Description string          `json:"description"`
}
