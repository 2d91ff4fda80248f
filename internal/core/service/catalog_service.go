package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pizzastore/ordering-system/internal/core/domain"
	"github.com/pizzastore/ordering-system/internal/core/ports"
)

// CacheInvalidator drops a cached item entry after a menu mutation.
type CacheInvalidator interface {
	Drop(ctx context.Context, name string)
}

// CatalogService implements store and menu use cases.
type CatalogService struct {
	catalog ports.CatalogRepository
	gate    ports.Authorizer
	cache   CacheInvalidator
	log     zerolog.Logger
}

func NewCatalogService(catalog ports.CatalogRepository, gate ports.Authorizer, cache CacheInvalidator, log zerolog.Logger) *CatalogService {
	return &CatalogService{catalog: catalog, gate: gate, cache: cache, log: log}
}

func (s *CatalogService) ListStores(ctx context.Context) ([]domain.Store, error) {
	stores, err := s.catalog.ListStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return stores, nil
}

func (s *CatalogService) ListMenu(ctx context.Context, requester string, filter ports.MenuFilter) ([]domain.Item, error) {
	if err := s.gate.Authorize(ctx, requester, domain.OpViewMenu); err != nil {
		return nil, err
	}

	items, err := s.catalog.ListItems(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	return items, nil
}

func (s *CatalogService) AddItem(ctx context.Context, requester string, item *domain.Item) error {
	if err := s.gate.Authorize(ctx, requester, domain.OpManageMenu); err != nil {
		return err
	}
	if item.Price.IsNegative() {
		return domain.ErrInvalidPrice
	}

	if err := s.catalog.CreateItem(ctx, item); err != nil {
		return fmt.Errorf("add item: %w", err)
	}

	s.log.Info().Str("item", item.Name).Str("price", item.Price.String()).Str("by", requester).Msg("menu item added")
	return nil
}

func (s *CatalogService) UpdateItem(ctx context.Context, requester string, item *domain.Item) error {
	if err := s.gate.Authorize(ctx, requester, domain.OpManageMenu); err != nil {
		return err
	}
	if item.Price.IsNegative() {
		return domain.ErrInvalidPrice
	}

	if err := s.catalog.UpdateItem(ctx, item); err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	// Stale prices must not leak into order lines.
	s.cache.Drop(ctx, item.Name)

	s.log.Info().Str("item", item.Name).Str("by", requester).Msg("menu item updated")
	return nil
}

func (s *CatalogService) RemoveItem(ctx context.Context, requester, name string) error {
	if err := s.gate.Authorize(ctx, requester, domain.OpManageMenu); err != nil {
		return err
	}

	if err := s.catalog.DeleteItem(ctx, name); err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	s.cache.Drop(ctx, name)

	s.log.Info().Str("item", name).Str("by", requester).Msg("menu item removed")
	return nil
}
