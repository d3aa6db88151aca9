// Package redis provides the Redis implementation of the route plan read
// model cache. Selected plans are immutable, so entries carry a TTL purely
// to bound memory, not for invalidation.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"logistics/internal/core/application/usecases/queries"

	goredis "github.com/redis/go-redis/v9"
)

const planKeyPrefix = "routeplan:"

// DefaultPlanTTL bounds how long a cached plan lives.
const DefaultPlanTTL = 1 * time.Hour

// PlanCache caches GetRoutePlan responses in Redis, JSON-encoded under
// "routeplan:<shipment id>".
//
// Example:
//
//	client := goredis.NewClient(&goredis.Options{Addr: "localhost:6379"})
//	cache := redis.NewPlanCache(client, redis.DefaultPlanTTL)
type PlanCache struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewPlanCache creates a plan cache around an existing client.
// A non-positive ttl falls back to DefaultPlanTTL.
func NewPlanCache(client *goredis.Client, ttl time.Duration) *PlanCache {
	if ttl <= 0 {
		ttl = DefaultPlanTTL
	}
	return &PlanCache{client: client, ttl: ttl}
}

// Get returns the cached response, or nil on a miss.
func (c *PlanCache) Get(ctx context.Context, shipmentID string) (*queries.GetRoutePlanQueryResponse, error) {
	raw, err := c.client.Get(ctx, planKeyPrefix+shipmentID).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var response queries.GetRoutePlanQueryResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Set stores the response under the shipment's key.
func (c *PlanCache) Set(ctx context.Context, shipmentID string, response *queries.GetRoutePlanQueryResponse) error {
	raw, err := json.Marshal(response)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, planKeyPrefix+shipmentID, raw, c.ttl).Err()
}
