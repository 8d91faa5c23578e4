package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"keyboards-api/internal/model"
)

// UserCache holds serialized users. A dirty marker blocks refills for a short
// window after a write so a slow reader cannot put back a stale copy.
type UserCache struct {
	client         *redisv9.Client
	userTTL        time.Duration
	dirtyMarkerTTL time.Duration
}

func NewUserCache(client *redisv9.Client, userTTL, dirtyMarkerTTL time.Duration) *UserCache {
	if userTTL <= 0 {
		userTTL = 60 * time.Second
	}
	if dirtyMarkerTTL <= 0 {
		dirtyMarkerTTL = 5 * time.Second
	}
	return &UserCache{
		client:         client,
		userTTL:        userTTL,
		dirtyMarkerTTL: dirtyMarkerTTL,
	}
}

func (c *UserCache) GetUser(ctx context.Context, userID uint) (*model.UserView, bool, error) {
	raw, err := c.client.Get(ctx, c.userKey(userID)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get user failed: %w", err)
	}

	var user model.UserView
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached user failed: %w", err)
	}
	return &user, true, nil
}

func (c *UserCache) SetUser(ctx context.Context, user model.UserView) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.userKey(user.ID), payload, c.userTTL).Err(); err != nil {
		return fmt.Errorf("redis set user failed: %w", err)
	}
	return nil
}

func (c *UserCache) DeleteUser(ctx context.Context, userID uint) error {
	if err := c.client.Del(ctx, c.userKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete user failed: %w", err)
	}
	return nil
}

func (c *UserCache) MarkDirty(ctx context.Context, userID uint) error {
	if err := c.client.Set(ctx, c.dirtyKey(userID), "1", c.dirtyMarkerTTL).Err(); err != nil {
		return fmt.Errorf("redis set dirty marker failed: %w", err)
	}
	return nil
}

func (c *UserCache) IsDirty(ctx context.Context, userID uint) (bool, error) {
	exists, err := c.client.Exists(ctx, c.dirtyKey(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis check dirty marker failed: %w", err)
	}
	return exists > 0, nil
}

func (c *UserCache) userKey(userID uint) string {
	return fmt.Sprintf("keyboards:user:%d", userID)
}

func (c *UserCache) dirtyKey(userID uint) string {
	return fmt.Sprintf("keyboards:user:dirty:%d", userID)
}
