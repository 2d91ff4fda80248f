package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/pizzastore/ordering-system/internal/core/domain"
	"github.com/pizzastore/ordering-system/internal/core/ports"
)

// maxListLimit caps the most-recent-N parameter on order listings.
const maxListLimit = 100

// ItemCache abstracts the item price cache (Redis). A lookup miss falls
// back to the catalog; mutation invalidation is the catalog service's job.
type ItemCache interface {
	Lookup(ctx context.Context, name string) (decimal.Decimal, bool)
	Store(ctx context.Context, name string, price decimal.Decimal)
}

// OrderService implements the order builder and the status machine.
type OrderService struct {
	orders  ports.OrderRepository
	catalog ports.CatalogRepository
	gate    ports.Authorizer
	cache   ItemCache
	log     zerolog.Logger
}

func NewOrderService(
	orders ports.OrderRepository,
	catalog ports.CatalogRepository,
	gate ports.Authorizer,
	cache ItemCache,
	log zerolog.Logger,
) *OrderService {
	return &OrderService{orders: orders, catalog: catalog, gate: gate, cache: cache, log: log}
}

// BeginOrder opens a new draft order. The store must exist; the identifier
// is allocated atomically by the repository, strictly increasing and never
// reused.
func (s *OrderService) BeginOrder(ctx context.Context, in ports.BeginOrderInput) (int64, error) {
	if err := s.gate.Authorize(ctx, in.Login, domain.OpPlaceOrder); err != nil {
		return 0, err
	}

	if _, err := s.catalog.FindStore(ctx, in.StoreID); err != nil {
		return 0, fmt.Errorf("begin order: %w", err)
	}

	order, err := s.orders.Create(ctx, in.Login, in.StoreID)
	if err != nil {
		return 0, fmt.Errorf("begin order: %w", err)
	}

	s.log.Info().Int64("order_id", order.ID).Str("login", in.Login).Int64("store_id", in.StoreID).Msg("draft order opened")
	return order.ID, nil
}

// AddLine confirms one item against an open draft and returns the line
// total (price × quantity, decimal exact). Repeatable until commit.
func (s *OrderService) AddLine(ctx context.Context, in ports.AddLineInput) (decimal.Decimal, error) {
	if in.Quantity < 1 {
		return decimal.Zero, domain.ErrInvalidQuantity
	}

	order, err := s.openDraft(ctx, in.Requester, in.OrderID)
	if err != nil {
		return decimal.Zero, err
	}

	price, err := s.itemPrice(ctx, in.ItemName)
	if err != nil {
		return decimal.Zero, err
	}

	line := &domain.OrderLine{
		OrderID:   order.ID,
		ItemName:  in.ItemName,
		Quantity:  in.Quantity,
		UnitPrice: price,
		LineTotal: price.Mul(decimal.NewFromInt(int64(in.Quantity))),
	}
	if err := s.orders.AddLine(ctx, line); err != nil {
		return decimal.Zero, fmt.Errorf("add line: %w", err)
	}

	s.log.Info().
		Int64("order_id", order.ID).
		Str("item", in.ItemName).
		Int("quantity", in.Quantity).
		Str("line_total", line.LineTotal.String()).
		Msg("line added")
	return line.LineTotal, nil
}

// CancelOrder abandons an open draft, removing the header and any lines.
func (s *OrderService) CancelOrder(ctx context.Context, ref ports.OrderRef) error {
	order, err := s.openDraft(ctx, ref.Requester, ref.OrderID)
	if err != nil {
		return err
	}

	if err := s.orders.Delete(ctx, order.ID); err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}

	s.log.Info().Int64("order_id", order.ID).Msg("draft order cancelled")
	return nil
}

// CommitOrder fixes the total price and freezes the line set. The total is
// the decimal sum of price × quantity over each line, computed line by
// line, never reconstructed through a store-side aggregate.
func (s *OrderService) CommitOrder(ctx context.Context, ref ports.OrderRef) (decimal.Decimal, error) {
	order, err := s.openDraft(ctx, ref.Requester, ref.OrderID)
	if err != nil {
		return decimal.Zero, err
	}

	lines, err := s.orders.Lines(ctx, order.ID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("commit order: %w", err)
	}
	if len(lines) == 0 {
		return decimal.Zero, domain.ErrEmptyOrder
	}

	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	if err := s.orders.Commit(ctx, order.ID, total); err != nil {
		return decimal.Zero, fmt.Errorf("commit order: %w", err)
	}

	s.log.Info().Int64("order_id", order.ID).Str("total", total.String()).Int("lines", len(lines)).Msg("order committed")
	return total, nil
}

// GetOrder returns the header plus all lines in insertion order.
// Customers only see their own orders.
func (s *OrderService) GetOrder(ctx context.Context, ref ports.OrderRef) (*ports.OrderDetail, error) {
	order, err := s.orders.Find(ctx, ref.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := s.gate.AuthorizeOrder(ctx, ref.Requester, order); err != nil {
		return nil, err
	}

	lines, err := s.orders.Lines(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	detail := &ports.OrderDetail{
		ID:        order.ID,
		Login:     order.Login,
		StoreID:   order.StoreID,
		Total:     order.Total,
		Status:    order.Status,
		Committed: order.Committed,
		CreatedAt: order.CreatedAt,
		Lines:     make([]ports.OrderLineView, 0, len(lines)),
	}
	for _, l := range lines {
		detail.Lines = append(detail.Lines, ports.OrderLineView{
			ItemName:  l.ItemName,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: l.LineTotal,
		})
	}
	return detail, nil
}

// ListOrders returns order summaries newest first. Scope "all" and the
// by-user filter are driver/manager operations.
func (s *OrderService) ListOrders(ctx context.Context, in ports.ListOrdersInput) ([]ports.OrderSummary, error) {
	filter := ports.OrderListFilter{Limit: in.Limit}
	if filter.Limit < 0 {
		filter.Limit = 0
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	switch in.Scope {
	case ports.ScopeAll:
		if err := s.gate.Authorize(ctx, in.Requester, domain.OpViewAllOrders); err != nil {
			return nil, err
		}
		filter.Login = in.ByUser
	default:
		if err := s.gate.Authorize(ctx, in.Requester, domain.OpViewOwnOrders); err != nil {
			return nil, err
		}
		filter.Login = in.Requester
	}

	orders, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	summaries := make([]ports.OrderSummary, 0, len(orders))
	for _, o := range orders {
		summaries = append(summaries, ports.OrderSummary{
			ID:        o.ID,
			Login:     o.Login,
			StoreID:   o.StoreID,
			Total:     o.Total,
			Status:    o.Status,
			CreatedAt: o.CreatedAt,
		})
	}
	return summaries, nil
}

// ToggleStatus flips complete ↔ incomplete. Driver/manager only.
func (s *OrderService) ToggleStatus(ctx context.Context, ref ports.OrderRef) (domain.OrderStatus, error) {
	if err := s.gate.Authorize(ctx, ref.Requester, domain.OpUpdateOrderStatus); err != nil {
		return "", err
	}

	status, err := s.orders.ToggleStatus(ctx, ref.OrderID)
	if err != nil {
		return "", fmt.Errorf("toggle status: %w", err)
	}

	s.log.Info().Int64("order_id", ref.OrderID).Str("status", string(status)).Str("by", ref.Requester).Msg("order status toggled")
	return status, nil
}

// openDraft loads an order and verifies the requester may mutate it and
// that its line set is still open.
func (s *OrderService) openDraft(ctx context.Context, requester string, orderID int64) (*domain.Order, error) {
	order, err := s.orders.Find(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.gate.AuthorizeOrder(ctx, requester, order); err != nil {
		return nil, err
	}
	if order.Committed {
		return nil, domain.ErrOrderCommitted
	}
	return order, nil
}

// itemPrice resolves an item's price, preferring the cache. Only items
// that exist in the catalog ever enter the cache.
func (s *OrderService) itemPrice(ctx context.Context, name string) (decimal.Decimal, error) {
	if price, ok := s.cache.Lookup(ctx, name); ok {
		return price, nil
	}

	item, err := s.catalog.FindItem(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownItem) {
			return decimal.Zero, domain.ErrUnknownItem
		}
		return decimal.Zero, fmt.Errorf("item lookup: %w", err)
	}

	s.cache.Store(ctx, item.Name, item.Price)
	return item.Price, nil
}
