package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-booking-api/internal/catalog"
)

const (
	servicesKey  = "catalog:services"
	locationsKey = "catalog:locations"
)

// CatalogCache is the shared snapshot of the normalized catalog and the
// location list. The catalog is fetched from Square once per
// screen-activation; the cache absorbs the rest. Best-effort: a redis
// failure reads as a miss and writes are dropped silently.
type CatalogCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{rdb: rdb, ttl: ttl}
}

func (c *CatalogCache) GetServices(ctx context.Context) ([]catalog.Service, bool) {
	var services []catalog.Service
	if !c.get(ctx, servicesKey, &services) {
		return nil, false
	}
	return services, true
}

func (c *CatalogCache) SetServices(ctx context.Context, services []catalog.Service) {
	c.set(ctx, servicesKey, services)
}

func (c *CatalogCache) GetLocations(ctx context.Context) ([]catalog.Location, bool) {
	var locations []catalog.Location
	if !c.get(ctx, locationsKey, &locations) {
		return nil, false
	}
	return locations, true
}

func (c *CatalogCache) SetLocations(ctx context.Context, locations []catalog.Location) {
	c.set(ctx, locationsKey, locations)
}

// Invalidate drops both snapshots, forcing the next read to hit Square.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, servicesKey, locationsKey)
}

func (c *CatalogCache) get(ctx context.Context, key string, out any) bool {
	if c.rdb == nil {
		return false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (c *CatalogCache) set(ctx context.Context, key string, v any) {
	if c.rdb == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key, data, c.ttl)
}
