package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/pg-backoffice/internal/domain/activity"
)

const keyPrefix = "pgbo:dir:"

// DirectoryCache fronts a Directory with Redis. Empty answers are cached too
// so admins without a default branch do not hit the database on every
// request. Redis failures fall through to the wrapped directory.
type DirectoryCache struct {
	rdb   redis.Cmdable
	inner activity.Directory
	ttl   time.Duration
}

func NewDirectoryCache(rdb redis.Cmdable, inner activity.Directory, ttl time.Duration) *DirectoryCache {
	return &DirectoryCache{rdb: rdb, inner: inner, ttl: ttl}
}

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func (c *DirectoryCache) DefaultBranchForAdmin(ctx context.Context, adminID string, pgID string) (string, error) {
	return c.cached(ctx, "default-branch:"+adminID+":"+pgID, func() (string, error) {
		return c.inner.DefaultBranchForAdmin(ctx, adminID, pgID)
	})
}

func (c *DirectoryCache) BranchName(ctx context.Context, branchID string) (string, error) {
	return c.cached(ctx, "branch-name:"+branchID, func() (string, error) {
		return c.inner.BranchName(ctx, branchID)
	})
}

func (c *DirectoryCache) UserName(ctx context.Context, userID string) (string, error) {
	return c.cached(ctx, "user-name:"+userID, func() (string, error) {
		return c.inner.UserName(ctx, userID)
	})
}

func (c *DirectoryCache) cached(ctx context.Context, key string, load func() (string, error)) (string, error) {
	key = keyPrefix + key

	v, err := c.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		return v, nil
	case !errors.Is(err, redis.Nil):
		slog.WarnContext(ctx, "directory cache read failed", "key", key, "error", err)
	}

	v, err = load()
	if err != nil {
		return "", err
	}

	if err := c.rdb.Set(ctx, key, v, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "directory cache write failed", "key", key, "error", err)
	}

	return v, nil
}

// Compile-time check
var _ activity.Directory = (*DirectoryCache)(nil)
