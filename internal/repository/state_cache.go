package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/svj-dojo/bellwall-api/internal/engine"
)

// StateCache mirrors the engine snapshot into Redis so wall displays and
// dashboards can read the live timer without hitting the API. Entries carry a
// short TTL so a stalled engine goes dark instead of serving stale state.
type StateCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	logger *zap.Logger
}

// NewStateCache builds a snapshot sink writing to the given Redis key.
func NewStateCache(client *redis.Client, key string, logger *zap.Logger) *StateCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StateCache{
		client: client,
		key:    key,
		ttl:    5 * time.Second,
		logger: logger,
	}
}

// PutState stores the snapshot as JSON. Failures are logged and dropped; the
// next tick overwrites the key anyway.
func (c *StateCache) PutState(ctx context.Context, snap engine.Snapshot) {
	payload, err := json.Marshal(snap)
	if err != nil {
		c.logger.Warn("state snapshot marshal failed", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := c.client.Set(ctx, c.key, payload, c.ttl).Err(); err != nil {
		c.logger.Debug("state snapshot write failed", zap.Error(err))
	}
}
