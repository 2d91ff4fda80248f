package ports

import (
	"context"

	"github.com/pizzastore/ordering-system/internal/core/domain"
)

// CatalogService defines store and menu use cases. Menu mutations are
// reserved to managers through the authorization gate.
type CatalogService interface {
	ListStores(ctx context.Context) ([]domain.Store, error)
	ListMenu(ctx context.Context, requester string, filter MenuFilter) ([]domain.Item, error)

	AddItem(ctx context.Context, requester string, item *domain.Item) error
	UpdateItem(ctx context.Context, requester string, item *domain.Item) error
	RemoveItem(ctx context.Context, requester, name string) error
}
