package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/pizzastore/ordering-system/internal/core/domain"
)

// MenuSort selects the ordering of a menu listing. Representing the sort as
// a parameter keeps the query construction structured instead of splicing
// an ORDER BY clause into SQL text.
type MenuSort int

const (
	MenuSortNone MenuSort = iota
	MenuSortPriceAsc
	MenuSortPriceDesc
)

// MenuFilter carries the criteria for a menu listing.
type MenuFilter struct {
	Category string           // optional: exact category match
	MaxPrice *decimal.Decimal // optional: price <= MaxPrice
	Sort     MenuSort
}

// CatalogRepository defines persistence operations for stores and menu items.
type CatalogRepository interface {
	FindStore(ctx context.Context, storeID int64) (*domain.Store, error)
	ListStores(ctx context.Context) ([]domain.Store, error)

	// FindItem looks an item up by its exact, case-sensitive name.
	FindItem(ctx context.Context, name string) (*domain.Item, error)
	ListItems(ctx context.Context, filter MenuFilter) ([]domain.Item, error)
	CreateItem(ctx context.Context, item *domain.Item) error
	UpdateItem(ctx context.Context, item *domain.Item) error
	DeleteItem(ctx context.Context, name string) error
}
