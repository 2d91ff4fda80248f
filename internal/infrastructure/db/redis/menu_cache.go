package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const menuCacheTTL = 5 * time.Minute

// MenuCache caches item prices, keyed menu:item:<name>. Order building
// resolves a price on every line add, so the hot path reads here first and
// menu mutations drop the entry. Cache failures are logged and treated as
// misses; the catalog stays authoritative.
type MenuCache struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewMenuCache(client *redis.Client, log zerolog.Logger) *MenuCache {
	return &MenuCache{client: client, log: log}
}

// Lookup returns the cached price for an item name, if present.
func (c *MenuCache) Lookup(ctx context.Context, name string) (decimal.Decimal, bool) {
	val, err := c.client.Get(ctx, c.key(name)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("item", name).Msg("menu cache read failed")
		}
		return decimal.Zero, false
	}

	price, err := decimal.NewFromString(val)
	if err != nil {
		c.log.Warn().Err(err).Str("item", name).Msg("menu cache entry malformed, dropping")
		c.Drop(ctx, name)
		return decimal.Zero, false
	}
	return price, true
}

// Store records an item's price (expires after menuCacheTTL).
func (c *MenuCache) Store(ctx context.Context, name string, price decimal.Decimal) {
	if err := c.client.Set(ctx, c.key(name), price.StringFixed(2), menuCacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("item", name).Msg("menu cache write failed")
	}
}

// Drop removes an item's cache entry after a menu mutation.
func (c *MenuCache) Drop(ctx context.Context, name string) {
	if err := c.client.Del(ctx, c.key(name)).Err(); err != nil {
		c.log.Warn().Err(err).Str("item", name).Msg("menu cache invalidation failed")
	}
}

func (c *MenuCache) key(name string) string {
	return "menu:item:" + name
}
