package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/pizzastore/ordering-system/internal/core/domain"
	"github.com/pizzastore/ordering-system/internal/core/ports"
)

type catalogEnv struct {
	svc     *CatalogService
	catalog *stubCatalogRepo
	cache   *stubCache
}

func newCatalogEnv() *catalogEnv {
	users := newStubUserRepo()
	users.seed("cust", domain.RoleCustomer)
	users.seed("mgr", domain.RoleManager)

	catalog := newStubCatalogRepo()
	catalog.seedStore(1)
	catalog.seedStore(2)
	catalog.seedItem("Margherita", "pizza", "9.99")
	catalog.seedItem("Diavola", "pizza", "12.50")
	catalog.seedItem("Garlic Bread", "side", "3.50")

	cache := newStubCache()
	gate := NewGate(users, discardLogger)

	return &catalogEnv{
		svc:     NewCatalogService(catalog, gate, cache, discardLogger),
		catalog: catalog,
		cache:   cache,
	}
}

func TestCatalogService_ListStores(t *testing.T) {
	env := newCatalogEnv()

	stores, err := env.svc.ListStores(context.Background())
	if err != nil {
		t.Fatalf("list stores: %v", err)
	}
	if len(stores) != 2 {
		t.Errorf("expected 2 stores, got %d", len(stores))
	}
}

func TestCatalogService_ListMenu_Filters(t *testing.T) {
	env := newCatalogEnv()

	pizzas, err := env.svc.ListMenu(context.Background(), "cust", ports.MenuFilter{Category: "pizza"})
	if err != nil {
		t.Fatalf("list menu: %v", err)
	}
	if len(pizzas) != 2 {
		t.Errorf("category filter: expected 2 pizzas, got %d", len(pizzas))
	}

	max := decimal.NewFromFloat(10)
	cheap, err := env.svc.ListMenu(context.Background(), "cust", ports.MenuFilter{MaxPrice: &max})
	if err != nil {
		t.Fatalf("list menu: %v", err)
	}
	if len(cheap) != 2 {
		t.Errorf("max-price filter: expected 2 items at or under 10, got %d", len(cheap))
	}
}

func TestCatalogService_ListMenu_SortByPrice(t *testing.T) {
	env := newCatalogEnv()

	items, err := env.svc.ListMenu(context.Background(), "cust", ports.MenuFilter{Sort: ports.MenuSortPriceAsc})
	if err != nil {
		t.Fatalf("list menu: %v", err)
	}
	for i := 1; i < len(items); i++ {
		if items[i].Price.LessThan(items[i-1].Price) {
			t.Errorf("ascending sort violated: %s before %s", items[i-1].Price, items[i].Price)
		}
	}

	items, err = env.svc.ListMenu(context.Background(), "cust", ports.MenuFilter{Sort: ports.MenuSortPriceDesc})
	if err != nil {
		t.Fatalf("list menu: %v", err)
	}
	for i := 1; i < len(items); i++ {
		if items[i].Price.GreaterThan(items[i-1].Price) {
			t.Errorf("descending sort violated: %s before %s", items[i-1].Price, items[i].Price)
		}
	}
}

func TestCatalogService_ListMenu_UnknownUser(t *testing.T) {
	env := newCatalogEnv()

	_, err := env.svc.ListMenu(context.Background(), "ghost", ports.MenuFilter{})
	if !errors.Is(err, domain.ErrUnknownUser) {
		t.Fatalf("expected ErrUnknownUser, got %v", err)
	}
}

func TestCatalogService_AddItem_ManagerOnly(t *testing.T) {
	env := newCatalogEnv()
	item := &domain.Item{Name: "Calzone", Category: "pizza", Price: decimal.NewFromFloat(8.75)}

	if err := env.svc.AddItem(context.Background(), "cust", item); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("customer add: expected ErrForbidden, got %v", err)
	}
	if err := env.svc.AddItem(context.Background(), "mgr", item); err != nil {
		t.Errorf("manager add: %v", err)
	}
	if _, err := env.catalog.FindItem(context.Background(), "Calzone"); err != nil {
		t.Errorf("added item not persisted: %v", err)
	}
}

func TestCatalogService_AddItem_NegativePrice(t *testing.T) {
	env := newCatalogEnv()
	item := &domain.Item{Name: "Broken", Price: decimal.NewFromFloat(-1)}

	if err := env.svc.AddItem(context.Background(), "mgr", item); !errors.Is(err, domain.ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
}

func TestCatalogService_UpdateItem_DropsCachedPrice(t *testing.T) {
	env := newCatalogEnv()
	env.cache.Store(context.Background(), "Margherita", decimal.NewFromFloat(9.99))

	item := &domain.Item{Name: "Margherita", Category: "pizza", Price: decimal.NewFromFloat(10.99)}
	if err := env.svc.UpdateItem(context.Background(), "mgr", item); err != nil {
		t.Fatalf("update: %v", err)
	}

	if len(env.cache.dropped) != 1 || env.cache.dropped[0] != "Margherita" {
		t.Errorf("price update must invalidate the cache entry, dropped=%v", env.cache.dropped)
	}
}

func TestCatalogService_RemoveItem(t *testing.T) {
	env := newCatalogEnv()

	if err := env.svc.RemoveItem(context.Background(), "mgr", "Garlic Bread"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := env.catalog.FindItem(context.Background(), "Garlic Bread"); !errors.Is(err, domain.ErrUnknownItem) {
		t.Errorf("removed item still findable: %v", err)
	}

	if err := env.svc.RemoveItem(context.Background(), "mgr", "Garlic Bread"); !errors.Is(err, domain.ErrUnknownItem) {
		t.Errorf("removing a missing item: expected ErrUnknownItem, got %v", err)
	}
}
