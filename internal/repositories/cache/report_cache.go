package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	portsrepo "github.com/SscSPs/finacc/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "finacc:report"

// DefaultTTL bounds how long a report survives when no ledger write invalidates it.
const DefaultTTL = 10 * time.Minute

// RedisReportCache stores computed reports in Redis.
//
// Every organization has a version counter. Entries are written under the current
// version, so Invalidate only has to bump the counter and old entries age out by TTL.
type RedisReportCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ portsrepo.ReportCache = (*RedisReportCache)(nil)

// NewRedisReportCache creates a report cache. A non-positive ttl falls back to DefaultTTL.
func NewRedisReportCache(client redis.Cmdable, ttl time.Duration) *RedisReportCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisReportCache{client: client, ttl: ttl}
}

// NewRedisClient connects to Redis and verifies the connection with a ping.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

func versionKey(organizationID int64) string {
	return fmt.Sprintf("%s:%d:version", keyPrefix, organizationID)
}

func entryKey(organizationID, version int64, key string) string {
	return fmt.Sprintf("%s:%d:v%d:%s", keyPrefix, organizationID, version, key)
}

func (c *RedisReportCache) version(ctx context.Context, organizationID int64) (int64, error) {
	v, err := c.client.Get(ctx, versionKey(organizationID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read report version for organization %d: %w", organizationID, err)
	}
	return v, nil
}

func (c *RedisReportCache) Get(ctx context.Context, organizationID int64, key string, dest any) (bool, error) {
	v, err := c.version(ctx, organizationID)
	if err != nil {
		return false, err
	}
	raw, err := c.client.Get(ctx, entryKey(organizationID, v, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read cached report %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to decode cached report %q: %w", key, err)
	}
	return true, nil
}

func (c *RedisReportCache) Set(ctx context.Context, organizationID int64, key string, value any) error {
	v, err := c.version(ctx, organizationID)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode report %q: %w", key, err)
	}
	if err := c.client.Set(ctx, entryKey(organizationID, v, key), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache report %q: %w", key, err)
	}
	return nil
}

func (c *RedisReportCache) Invalidate(ctx context.Context, organizationID int64) error {
	if err := c.client.Incr(ctx, versionKey(organizationID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate reports for organization %d: %w", organizationID, err)
	}
	return nil
}
