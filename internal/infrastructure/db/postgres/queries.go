package postgres

// Order queries. Prices travel as text so they parse losslessly into
// decimals on the Go side.
const (
	// nextOrderIDSQL bumps the single-row high-water mark and returns the
	// new value. The row lock serializes concurrent begins; running it in
	// the same transaction as the insert keeps the sequence gap-free on
	// rollback, and because the counter never decreases an identifier
	// freed by a cancelled draft is never handed out again.
	nextOrderIDSQL = `
		UPDATE order_counter SET last_id = last_id + 1 RETURNING last_id`

	insertOrderSQL = `
		INSERT INTO orders (order_id, login, store_id, total_price, status, committed)
		VALUES ($1, $2, $3, 0, 'incomplete', FALSE)
		RETURNING total_price::text, status, committed, created_at`

	getOrderSQL = `
		SELECT order_id, login, store_id, total_price::text, status, committed, created_at
		FROM orders WHERE order_id = $1`

	getOrderLinesSQL = `
		SELECT order_id, item_name, quantity, unit_price::text, line_total::text
		FROM order_lines WHERE order_id = $1
		ORDER BY line_id ASC`

	insertOrderLineSQL = `
		INSERT INTO order_lines (order_id, item_name, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5)`

	bumpOrderTotalSQL = `
		UPDATE orders SET total_price = total_price + $2
		WHERE order_id = $1 AND committed = FALSE`

	deleteOrderLinesSQL = `DELETE FROM order_lines WHERE order_id = $1`

	deleteOrderSQL = `DELETE FROM orders WHERE order_id = $1 AND committed = FALSE`

	commitOrderSQL = `
		UPDATE orders SET total_price = $2, committed = TRUE
		WHERE order_id = $1 AND committed = FALSE`

	listOrdersSQL = `
		SELECT order_id, login, store_id, total_price::text, status, committed, created_at
		FROM orders`

	toggleOrderStatusSQL = `
		UPDATE orders
		SET status = CASE WHEN status = 'complete' THEN 'incomplete' ELSE 'complete' END
		WHERE order_id = $1
		RETURNING status`
)

// Catalog queries.
const (
	getStoreSQL   = `SELECT store_id, address, city, state FROM stores WHERE store_id = $1`
	listStoresSQL = `SELECT store_id, address, city, state FROM stores ORDER BY store_id ASC`

	getItemSQL = `
		SELECT name, category, price::text, ingredients, description
		FROM items WHERE name = $1`

	listItemsSQL = `
		SELECT name, category, price::text, ingredients, description
		FROM items`

	insertItemSQL = `
		INSERT INTO items (name, category, price, ingredients, description)
		VALUES ($1, $2, $3, $4, $5)`

	updateItemSQL = `
		UPDATE items SET category = $2, price = $3, ingredients = $4, description = $5
		WHERE name = $1`

	deleteItemSQL = `DELETE FROM items WHERE name = $1`
)

// User queries.
const (
	insertUserSQL = `
		INSERT INTO users (login, password_hash, role, favorite_item, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)`

	getUserSQL = `
		SELECT login, password_hash, role, COALESCE(favorite_item, ''), phone, created_at, updated_at
		FROM users WHERE login = $1`

	listUsersSQL = `
		SELECT login, password_hash, role, COALESCE(favorite_item, ''), phone, created_at, updated_at
		FROM users ORDER BY login ASC`

	updateUserProfileSQL = `
		UPDATE users SET
			favorite_item = COALESCE($2, favorite_item),
			phone         = COALESCE($3, phone),
			password_hash = COALESCE($4, password_hash),
			updated_at    = NOW()
		WHERE login = $1`

	updateUserRoleSQL = `
		UPDATE users SET role = $2, updated_at = NOW() WHERE login = $1`
)
