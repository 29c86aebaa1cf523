package dcclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/dc"
	"fulfillment/internal/core/ports"
)

// CacheTTL bounds how long a region's center list is served from cache.
const CacheTTL = 5 * time.Minute

// CachedClient decorates a DistributionCenterClient with a cache-aside policy
// keyed by region. Cache failures degrade to a miss: the lookup still runs
// against the inner client and the result is returned to the caller. Empty
// results are never cached so a region gaining coverage is observed quickly.
type CachedClient struct {
	inner  ports.DistributionCenterClient
	cache  ports.Cache
	logger *slog.Logger
}

// NewCachedClient wraps inner with a cache backed by the given store.
func NewCachedClient(inner ports.DistributionCenterClient, cache ports.Cache, logger *slog.Logger) *CachedClient {
	return &CachedClient{
		inner:  inner,
		cache:  cache,
		logger: logger.With("component", "dc_client_cache"),
	}
}

// GetByRegion returns the cached center list for region when present, loading
// from the inner client and populating the cache otherwise.
func (c *CachedClient) GetByRegion(ctx context.Context, region string) ([]dc.DistributionCenter, error) {
	key := cacheKey(region)

	cached, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.WarnContext(ctx, "cache read failed, falling back to lookup",
			"region", region, "error", err)
	} else if cached != "" {
		centers, decodeErr := decodeCenters(cached)
		if decodeErr == nil {
			return centers, nil
		}
		c.logger.WarnContext(ctx, "discarding undecodable cache entry",
			"region", region, "error", decodeErr)
		_ = c.cache.Del(ctx, key)
	}

	centers, err := c.inner.GetByRegion(ctx, region)
	if err != nil {
		return nil, err
	}

	if len(centers) > 0 {
		encoded, encodeErr := encodeCenters(centers)
		if encodeErr != nil {
			c.logger.WarnContext(ctx, "failed to encode centers for cache",
				"region", region, "error", encodeErr)
			return centers, nil
		}
		if setErr := c.cache.Set(ctx, key, encoded, CacheTTL); setErr != nil {
			c.logger.WarnContext(ctx, "cache write failed",
				"region", region, "error", setErr)
		}
	}

	return centers, nil
}

func cacheKey(region string) string {
	return fmt.Sprintf("dc:region:%s", region)
}

func encodeCenters(centers []dc.DistributionCenter) (string, error) {
	payload := make([]centerResponse, 0, len(centers))
	for _, center := range centers {
		var item centerResponse
		item.Code = center.Code()
		item.Name = center.Name()

		address := center.Address()
		item.Address.Street = address.Street()
		item.Address.Number = address.Number()
		item.Address.City = address.City()
		item.Address.State = address.State()
		item.Address.Country = address.Country()
		item.Address.ZipCode = address.ZipCode()
		item.Address.Latitude = address.Coordinates().Latitude()
		item.Address.Longitude = address.Coordinates().Longitude()

		payload = append(payload, item)
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

func decodeCenters(encoded string) ([]dc.DistributionCenter, error) {
	var payload []centerResponse
	if err := json.Unmarshal([]byte(encoded), &payload); err != nil {
		return nil, err
	}

	return toDomain(payload)
}
