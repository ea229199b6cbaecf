package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront/internal/models"
)

const productTTL = 5 * time.Minute

// ProductCache keeps product payloads in Redis keyed by ID.
// A nil *ProductCache is a no-op, so callers don't need to guard.
type ProductCache struct {
	rdb *redis.Client
}

func NewProductCache(rdb *redis.Client) *ProductCache {
	if rdb == nil {
		return nil
	}
	return &ProductCache{rdb: rdb}
}

func productKey(id int) string {
	return fmt.Sprintf("product:%d", id)
}

func (c *ProductCache) Get(ctx context.Context, id int) (*models.Product, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[cache][get] product_id=%d err=%v", id, err)
		}
		return nil, false
	}
	var p models.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		log.Printf("[cache][get] unmarshal product_id=%d err=%v", id, err)
		return nil, false
	}
	return &p, true
}

func (c *ProductCache) Set(ctx context.Context, p *models.Product) {
	if c == nil || p == nil {
		return
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, productKey(p.ID), raw, productTTL).Err(); err != nil {
		log.Printf("[cache][set] product_id=%d err=%v", p.ID, err)
	}
}

func (c *ProductCache) Invalidate(ctx context.Context, id int) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, productKey(id)).Err(); err != nil {
		log.Printf("[cache][del] product_id=%d err=%v", id, err)
	}
}
