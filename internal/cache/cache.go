// Package cache keeps recently read products in memory so hot product pages
// skip the store.
package cache

import (
	"github.com/dgraph-io/ristretto"

	"ecommerce/internal/domain"
)

type ProductCache struct {
	cache *ristretto.Cache
}

func New(maxSizePow2 int) (*ProductCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per product estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &ProductCache{cache: cache}, nil
}

func (c *ProductCache) Get(id int) (domain.Product, bool) {
	val, found := c.cache.Get(id)
	if !found {
		return domain.Product{}, false
	}
	return val.(domain.Product), true
}

func (c *ProductCache) Set(p domain.Product) {
	c.cache.Set(p.ID, p, cost(p))
}

func (c *ProductCache) Del(id int) {
	c.cache.Del(id)
}

// Wait blocks until buffered writes are applied.
func (c *ProductCache) Wait() {
	c.cache.Wait()
}

func (c *ProductCache) Close() {
	c.cache.Close()
}

func (c *ProductCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}

func cost(p domain.Product) int64 {
	// id, price and stock are fixed width
	return int64(24 + len(p.Name) + len(p.Category))
}
