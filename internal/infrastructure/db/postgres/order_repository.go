package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/pizzastore/ordering-system/internal/core/domain"
	"github.com/pizzastore/ordering-system/internal/core/ports"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create allocates the next order identifier from the counter row and
// inserts the draft header, both in one transaction. Concurrent begins
// serialize on the counter's row lock, so identifiers come out distinct
// and strictly increasing with no gaps.
func (r *OrderRepository) Create(ctx context.Context, login string, storeID int64) (*domain.Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, storeErr("begin tx", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	order := domain.Order{Login: login, StoreID: storeID}
	if err := tx.QueryRow(ctx, nextOrderIDSQL).Scan(&order.ID); err != nil {
		return nil, storeErr("allocate order id", err)
	}

	var total, status string
	err = tx.QueryRow(ctx, insertOrderSQL, order.ID, login, storeID).
		Scan(&total, &status, &order.Committed, &order.CreatedAt)
	if err != nil {
		return nil, storeErr("insert order", err)
	}
	order.Status = domain.OrderStatus(status)
	if order.Total, err = parseMoney(total); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, storeErr("commit tx", err)
	}
	return &order, nil
}

func (r *OrderRepository) Find(ctx context.Context, orderID int64) (*domain.Order, error) {
	return scanOrder(r.pool.QueryRow(ctx, getOrderSQL, orderID))
}

func (r *OrderRepository) Lines(ctx context.Context, orderID int64) ([]domain.OrderLine, error) {
	rows, err := r.pool.Query(ctx, getOrderLinesSQL, orderID)
	if err != nil {
		return nil, storeErr("query order lines", err)
	}
	defer rows.Close()

	var lines []domain.OrderLine
	for rows.Next() {
		var (
			l                    domain.OrderLine
			unitPrice, lineTotal string
		)
		if err := rows.Scan(&l.OrderID, &l.ItemName, &l.Quantity, &unitPrice, &lineTotal); err != nil {
			return nil, storeErr("scan order line", err)
		}
		if l.UnitPrice, err = parseMoney(unitPrice); err != nil {
			return nil, err
		}
		if l.LineTotal, err = parseMoney(lineTotal); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate order lines", err)
	}
	return lines, nil
}

// AddLine inserts the line and bumps the header's running total in one
// transaction. The bump carries a committed = FALSE guard so a draft that
// was committed concurrently cannot gain lines.
func (r *OrderRepository) AddLine(ctx context.Context, line *domain.OrderLine) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return storeErr("begin tx", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, bumpOrderTotalSQL, line.OrderID, line.LineTotal.StringFixed(2))
	if err != nil {
		return storeErr("bump order total", err)
	}
	if tag.RowsAffected() == 0 {
		return r.draftState(ctx, line.OrderID)
	}

	_, err = tx.Exec(ctx, insertOrderLineSQL,
		line.OrderID, line.ItemName, line.Quantity,
		line.UnitPrice.StringFixed(2), line.LineTotal.StringFixed(2))
	if err != nil {
		return storeErr("insert order line", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return storeErr("commit tx", err)
	}
	return nil
}

// Delete removes a draft header and its lines in one transaction.
func (r *OrderRepository) Delete(ctx context.Context, orderID int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return storeErr("begin tx", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, deleteOrderLinesSQL, orderID); err != nil {
		return storeErr("delete order lines", err)
	}

	tag, err := tx.Exec(ctx, deleteOrderSQL, orderID)
	if err != nil {
		return storeErr("delete order", err)
	}
	if tag.RowsAffected() == 0 {
		return r.draftState(ctx, orderID)
	}

	if err := tx.Commit(ctx); err != nil {
		return storeErr("commit tx", err)
	}
	return nil
}

// Commit writes the final total and freezes the line set. The write and
// the freeze are one UPDATE, so a failed commit never leaves lines that
// disagree with the recorded total.
func (r *OrderRepository) Commit(ctx context.Context, orderID int64, total decimal.Decimal) error {
	tag, err := r.pool.Exec(ctx, commitOrderSQL, orderID, total.StringFixed(2))
	if err != nil {
		return storeErr("commit order", err)
	}
	if tag.RowsAffected() == 0 {
		return r.draftState(ctx, orderID)
	}
	return nil
}

func (r *OrderRepository) List(ctx context.Context, filter ports.OrderListFilter) ([]domain.Order, error) {
	sql := listOrdersSQL
	args := []any{}
	if filter.Login != "" {
		sql += ` WHERE login = $1`
		args = append(args, filter.Login)
	}
	sql += ` ORDER BY created_at DESC, order_id DESC`
	if filter.Limit > 0 {
		sql += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
		args = append(args, filter.Limit)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, storeErr("query orders", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var (
			o             domain.Order
			total, status string
		)
		if err := rows.Scan(&o.ID, &o.Login, &o.StoreID, &total, &status, &o.Committed, &o.CreatedAt); err != nil {
			return nil, storeErr("scan order", err)
		}
		o.Status = domain.OrderStatus(status)
		if o.Total, err = parseMoney(total); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate orders", err)
	}
	return orders, nil
}

func (r *OrderRepository) ToggleStatus(ctx context.Context, orderID int64) (domain.OrderStatus, error) {
	var status string
	err := r.pool.QueryRow(ctx, toggleOrderStatusSQL, orderID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrOrderNotFound
		}
		return "", storeErr("toggle order status", err)
	}
	return domain.OrderStatus(status), nil
}

// draftState reports why a guarded draft mutation matched no rows: the
// order is either gone or already committed.
func (r *OrderRepository) draftState(ctx context.Context, orderID int64) error {
	var committed bool
	err := r.pool.QueryRow(ctx, `SELECT committed FROM orders WHERE order_id = $1`, orderID).Scan(&committed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrOrderNotFound
		}
		return storeErr("check order state", err)
	}
	if committed {
		return domain.ErrOrderCommitted
	}
	return domain.ErrOrderNotFound
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o             domain.Order
		total, status string
		err           error
	)
	if err = row.Scan(&o.ID, &o.Login, &o.StoreID, &total, &status, &o.Committed, &o.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, storeErr("scan order", err)
	}
	o.Status = domain.OrderStatus(status)
	if o.Total, err = parseMoney(total); err != nil {
		return nil, err
	}
	return &o, nil
}

func parseMoney(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, storeErr("parse numeric", err)
	}
	return d, nil
}
