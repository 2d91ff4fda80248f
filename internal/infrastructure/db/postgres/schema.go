package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is the bootstrap DDL. Money columns are NUMERIC(10,2) so totals
// carry the same precision as item prices with no binary-float drift.
// order_lines.line_id preserves insertion order for detail views.
// order_counter is the single-row high-water mark for order identifiers:
// it only ever grows, so an identifier freed by a cancelled draft is never
// handed out again.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	login         TEXT PRIMARY KEY,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'customer',
	favorite_item TEXT,
	phone         TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS stores (
	store_id BIGINT PRIMARY KEY,
	address  TEXT NOT NULL,
	city     TEXT NOT NULL,
	state    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS items (
	name        TEXT PRIMARY KEY,
	category    TEXT NOT NULL,
	price       NUMERIC(10,2) NOT NULL CHECK (price >= 0),
	ingredients TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS orders (
	order_id    BIGINT PRIMARY KEY,
	login       TEXT NOT NULL REFERENCES users(login),
	store_id    BIGINT NOT NULL REFERENCES stores(store_id),
	total_price NUMERIC(10,2) NOT NULL DEFAULT 0,
	status      TEXT NOT NULL DEFAULT 'incomplete',
	committed   BOOLEAN NOT NULL DEFAULT FALSE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS order_lines (
	line_id    BIGSERIAL PRIMARY KEY,
	order_id   BIGINT NOT NULL REFERENCES orders(order_id) ON DELETE CASCADE,
	item_name  TEXT NOT NULL REFERENCES items(name),
	quantity   INT NOT NULL CHECK (quantity > 0),
	unit_price NUMERIC(10,2) NOT NULL,
	line_total NUMERIC(10,2) NOT NULL
);

CREATE TABLE IF NOT EXISTS order_counter (
	id      BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (id),
	last_id BIGINT NOT NULL DEFAULT 0
);
INSERT INTO order_counter (last_id)
	SELECT COALESCE(MAX(order_id), 0) FROM orders
	ON CONFLICT (id) DO NOTHING;

CREATE INDEX IF NOT EXISTS idx_orders_login_created ON orders (login, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_order_lines_order ON order_lines (order_id, line_id);
`

// Bootstrap creates the schema when it does not exist yet.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, schema); err != nil {
		return storeErr("bootstrap schema", err)
	}
	return nil
}
