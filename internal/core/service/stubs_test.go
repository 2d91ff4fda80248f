package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/pizzastore/ordering-system/internal/core/domain"
	"github.com/pizzastore/ordering-system/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory user repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) seed(login string, role domain.Role) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := &domain.User{Login: login, Role: role, CreatedAt: time.Now().UTC()}
	r.users[login] = u
	return u
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Login]; exists {
		return nil, domain.ErrUserExists
	}
	r.users[user.Login] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindByLogin(_ context.Context, login string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[login]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, login string, upd ports.ProfileUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[login]
	if !ok {
		return domain.ErrUserNotFound
	}
	if upd.FavoriteItem != nil {
		u.FavoriteItem = *upd.FavoriteItem
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.PasswordHash != nil {
		u.PasswordHash = *upd.PasswordHash
	}
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, login string, role domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[login]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Login < out[j].Login })
	return out, nil
}

// ---------------------------------------------------------------------------
// In-memory order repository
// ---------------------------------------------------------------------------

// stubOrderRepo mirrors the real repository's contract: identifiers come
// from a high-water counter under a lock, and mutations against a
// committed draft fail the same way the guarded SQL statements do.
type stubOrderRepo struct {
	mu     sync.Mutex
	orders map[int64]*domain.Order
	lines  map[int64][]domain.OrderLine
	lastID int64
	order  []int64 // creation sequence, drives newest-first listing
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{
		orders: make(map[int64]*domain.Order),
		lines:  make(map[int64][]domain.OrderLine),
	}
}

func cloneOrder(o *domain.Order) *domain.Order {
	if o == nil {
		return nil
	}
	clone := *o
	return &clone
}

func (r *stubOrderRepo) Create(_ context.Context, login string, storeID int64) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	next := r.lastID

	o := &domain.Order{
		ID:        next,
		Login:     login,
		StoreID:   storeID,
		Total:     decimal.Zero,
		Status:    domain.StatusIncomplete,
		CreatedAt: time.Now().UTC(),
	}
	r.orders[next] = o
	r.order = append(r.order, next)
	return cloneOrder(o), nil
}

func (r *stubOrderRepo) Find(_ context.Context, orderID int64) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

func (r *stubOrderRepo) Lines(_ context.Context, orderID int64) ([]domain.OrderLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.OrderLine(nil), r.lines[orderID]...), nil
}

func (r *stubOrderRepo) AddLine(_ context.Context, line *domain.OrderLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[line.OrderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if o.Committed {
		return domain.ErrOrderCommitted
	}
	o.Total = o.Total.Add(line.LineTotal)
	r.lines[line.OrderID] = append(r.lines[line.OrderID], *line)
	return nil
}

func (r *stubOrderRepo) Delete(_ context.Context, orderID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if o.Committed {
		return domain.ErrOrderCommitted
	}
	delete(r.orders, orderID)
	delete(r.lines, orderID)
	return nil
}

func (r *stubOrderRepo) Commit(_ context.Context, orderID int64, total decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if o.Committed {
		return domain.ErrOrderCommitted
	}
	o.Total = total
	o.Committed = true
	return nil
}

func (r *stubOrderRepo) List(_ context.Context, filter ports.OrderListFilter) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Order
	// Walk newest first.
	for i := len(r.order) - 1; i >= 0; i-- {
		o, ok := r.orders[r.order[i]]
		if !ok {
			continue
		}
		if filter.Login != "" && o.Login != filter.Login {
			continue
		}
		out = append(out, *o)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (r *stubOrderRepo) ToggleStatus(_ context.Context, orderID int64) (domain.OrderStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return "", domain.ErrOrderNotFound
	}
	o.Status = o.Status.Toggle()
	return o.Status, nil
}

// ---------------------------------------------------------------------------
// In-memory catalog repository
// ---------------------------------------------------------------------------

type stubCatalogRepo struct {
	stores map[int64]*domain.Store
	items  map[string]*domain.Item

	createErr error // if set, CreateItem returns this error
}

func newStubCatalogRepo() *stubCatalogRepo {
	return &stubCatalogRepo{
		stores: make(map[int64]*domain.Store),
		items:  make(map[string]*domain.Item),
	}
}

func (r *stubCatalogRepo) seedStore(id int64) {
	r.stores[id] = &domain.Store{ID: id, Address: "742 Evergreen Terrace", City: "Springfield", State: "IL"}
}

func (r *stubCatalogRepo) seedItem(name, category, price string) {
	p, _ := decimal.NewFromString(price)
	r.items[name] = &domain.Item{Name: name, Category: category, Price: p}
}

func (r *stubCatalogRepo) FindStore(_ context.Context, storeID int64) (*domain.Store, error) {
	s, ok := r.stores[storeID]
	if !ok {
		return nil, domain.ErrUnknownStore
	}
	clone := *s
	return &clone, nil
}

func (r *stubCatalogRepo) ListStores(_ context.Context) ([]domain.Store, error) {
	out := make([]domain.Store, 0, len(r.stores))
	for _, s := range r.stores {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubCatalogRepo) FindItem(_ context.Context, name string) (*domain.Item, error) {
	it, ok := r.items[name]
	if !ok {
		return nil, domain.ErrUnknownItem
	}
	clone := *it
	return &clone, nil
}

func (r *stubCatalogRepo) ListItems(_ context.Context, filter ports.MenuFilter) ([]domain.Item, error) {
	var out []domain.Item
	for _, it := range r.items {
		if filter.Category != "" && it.Category != filter.Category {
			continue
		}
		if filter.MaxPrice != nil && it.Price.GreaterThan(*filter.MaxPrice) {
			continue
		}
		out = append(out, *it)
	}
	switch filter.Sort {
	case ports.MenuSortPriceAsc:
		sort.Slice(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case ports.MenuSortPriceDesc:
		sort.Slice(out, func(i, j int) bool { return out[i].Price.GreaterThan(out[j].Price) })
	default:
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}
	return out, nil
}

func (r *stubCatalogRepo) CreateItem(_ context.Context, item *domain.Item) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *item
	r.items[item.Name] = &clone
	return nil
}

func (r *stubCatalogRepo) UpdateItem(_ context.Context, item *domain.Item) error {
	if _, ok := r.items[item.Name]; !ok {
		return domain.ErrUnknownItem
	}
	clone := *item
	r.items[item.Name] = &clone
	return nil
}

func (r *stubCatalogRepo) DeleteItem(_ context.Context, name string) error {
	if _, ok := r.items[name]; !ok {
		return domain.ErrUnknownItem
	}
	delete(r.items, name)
	return nil
}

// ---------------------------------------------------------------------------
// In-memory item price cache
// ---------------------------------------------------------------------------

type stubCache struct {
	mu      sync.Mutex
	prices  map[string]decimal.Decimal
	lookups int
	hits    int
	dropped []string
}

func newStubCache() *stubCache {
	return &stubCache{prices: make(map[string]decimal.Decimal)}
}

func (c *stubCache) Lookup(_ context.Context, name string) (decimal.Decimal, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lookups++
	p, ok := c.prices[name]
	if ok {
		c.hits++
	}
	return p, ok
}

func (c *stubCache) Store(_ context.Context, name string, price decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prices[name] = price
}

func (c *stubCache) Drop(_ context.Context, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.prices, name)
	c.dropped = append(c.dropped, name)
}
