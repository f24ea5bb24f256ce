package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const replyKeyPrefix = "greenroute:reply:"

// CachedModel memoizes replies in Redis keyed by the prompt hash. Cache
// failures are logged and bypassed; only the wrapped model's errors surface.
type CachedModel struct {
	next  TextModel
	redis *redis.Client
	ttl   time.Duration
	log   *zap.Logger
}

func NewCachedModel(next TextModel, rdb *redis.Client, ttl time.Duration, log *zap.Logger) *CachedModel {
	if log == nil {
		log = zap.NewNop()
	}
	return &CachedModel{next: next, redis: rdb, ttl: ttl, log: log}
}

func (c *CachedModel) Complete(ctx context.Context, prompt string) (string, error) {
	key := replyKey(prompt)

	cached, err := c.redis.Get(ctx, key).Result()
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, redis.Nil):
		c.log.Warn("reply cache read failed", zap.String("key", key), zap.Error(err))
	}

	reply, err := c.next.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	// Empty replies are not cached so the next request asks again.
	if reply != "" {
		if err := c.redis.Set(ctx, key, reply, c.ttl).Err(); err != nil {
			c.log.Warn("reply cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return reply, nil
}

func replyKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return replyKeyPrefix + hex.EncodeToString(sum[:])
}
