package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pizzastore/ordering-system/internal/core/domain"
	"github.com/pizzastore/ordering-system/internal/core/ports"
)

type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) FindStore(ctx context.Context, storeID int64) (*domain.Store, error) {
	var s domain.Store
	err := r.pool.QueryRow(ctx, getStoreSQL, storeID).Scan(&s.ID, &s.Address, &s.City, &s.State)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUnknownStore
		}
		return nil, storeErr("find store", err)
	}
	return &s, nil
}

func (r *CatalogRepository) ListStores(ctx context.Context) ([]domain.Store, error) {
	rows, err := r.pool.Query(ctx, listStoresSQL)
	if err != nil {
		return nil, storeErr("query stores", err)
	}
	defer rows.Close()

	var stores []domain.Store
	for rows.Next() {
		var s domain.Store
		if err := rows.Scan(&s.ID, &s.Address, &s.City, &s.State); err != nil {
			return nil, storeErr("scan store", err)
		}
		stores = append(stores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate stores", err)
	}
	return stores, nil
}

func (r *CatalogRepository) FindItem(ctx context.Context, name string) (*domain.Item, error) {
	var (
		item  domain.Item
		price string
	)
	err := r.pool.QueryRow(ctx, getItemSQL, name).
		Scan(&item.Name, &item.Category, &price, &item.Ingredients, &item.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUnknownItem
		}
		return nil, storeErr("find item", err)
	}
	if item.Price, err = parseMoney(price); err != nil {
		return nil, err
	}
	return &item, nil
}

// ListItems builds the listing from structured filter and sort parameters.
func (r *CatalogRepository) ListItems(ctx context.Context, filter ports.MenuFilter) ([]domain.Item, error) {
	sql := listItemsSQL
	args := []any{}

	where := ""
	if filter.Category != "" {
		args = append(args, filter.Category)
		where = fmt.Sprintf(` WHERE category = $%d`, len(args))
	}
	if filter.MaxPrice != nil {
		args = append(args, filter.MaxPrice.StringFixed(2))
		if where == "" {
			where = fmt.Sprintf(` WHERE price <= $%d`, len(args))
		} else {
			where += fmt.Sprintf(` AND price <= $%d`, len(args))
		}
	}
	sql += where

	switch filter.Sort {
	case ports.MenuSortPriceAsc:
		sql += ` ORDER BY price ASC, name ASC`
	case ports.MenuSortPriceDesc:
		sql += ` ORDER BY price DESC, name ASC`
	default:
		sql += ` ORDER BY name ASC`
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, storeErr("query items", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var (
			item  domain.Item
			price string
		)
		if err := rows.Scan(&item.Name, &item.Category, &price, &item.Ingredients, &item.Description); err != nil {
			return nil, storeErr("scan item", err)
		}
		if item.Price, err = parseMoney(price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate items", err)
	}
	return items, nil
}

func (r *CatalogRepository) CreateItem(ctx context.Context, item *domain.Item) error {
	_, err := r.pool.Exec(ctx, insertItemSQL,
		item.Name, item.Category, item.Price.StringFixed(2), item.Ingredients, item.Description)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("item %q: already exists", item.Name)
		}
		return storeErr("insert item", err)
	}
	return nil
}

func (r *CatalogRepository) UpdateItem(ctx context.Context, item *domain.Item) error {
	tag, err := r.pool.Exec(ctx, updateItemSQL,
		item.Name, item.Category, item.Price.StringFixed(2), item.Ingredients, item.Description)
	if err != nil {
		return storeErr("update item", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUnknownItem
	}
	return nil
}

func (r *CatalogRepository) DeleteItem(ctx context.Context, name string) error {
	tag, err := r.pool.Exec(ctx, deleteItemSQL, name)
	if err != nil {
		return storeErr("delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUnknownItem
	}
	return nil
}
