package cache

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/catalog-service/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const keyPrefix = "catalog:message:"

// MessageCache caches messages by business key. Misses and cache failures are
// indistinguishable to callers; the store stays the source of truth.
type MessageCache interface {
	Get(ctx context.Context, msgID string) (*domain.Message, bool)
	// Set stores message unless the cached entry for its key is newer.
	Set(ctx context.Context, message *domain.Message)
}

// setIfNotOlder writes the entry only when no newer version is cached.
// KEYS[1] entry key; ARGV: version, payload, ttl in milliseconds.
var setIfNotOlder = redis.NewScript(`
local current = redis.call('HGET', KEYS[1], 'version')
if current and tonumber(current) > tonumber(ARGV[1]) then
  return 0
end
redis.call('HSET', KEYS[1], 'version', ARGV[1], 'data', ARGV[2])
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return 1
`)

type redisMessageCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisMessageCache returns a Redis-backed cache with the given entry lifetime.
func NewRedisMessageCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) MessageCache {
	return &redisMessageCache{client: client, ttl: ttl, logger: logger}
}

func (c *redisMessageCache) Get(ctx context.Context, msgID string) (*domain.Message, bool) {
	raw, err := c.client.HGet(ctx, keyPrefix+msgID, "data").Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("message cache read failed", zap.String("msg_id", msgID), zap.Error(err))
		}
		return nil, false
	}
	var message domain.Message
	if err := json.Unmarshal(raw, &message); err != nil {
		c.logger.Warn("message cache entry unreadable", zap.String("msg_id", msgID), zap.Error(err))
		return nil, false
	}
	return &message, true
}

func (c *redisMessageCache) Set(ctx context.Context, message *domain.Message) {
	raw, err := json.Marshal(message)
	if err != nil {
		c.logger.Warn("message cache encode failed", zap.String("msg_id", message.MsgID), zap.Error(err))
		return
	}
	stored, err := setIfNotOlder.Run(ctx, c.client,
		[]string{keyPrefix + message.MsgID},
		entryVersion(message), raw, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		c.logger.Warn("message cache write failed", zap.String("msg_id", message.MsgID), zap.Error(err))
		return
	}
	if stored == 0 {
		c.logger.Debug("message cache kept newer entry", zap.String("msg_id", message.MsgID))
	}
}

// entryVersion orders writes of one message. updated_at is refreshed by every
// upsert, so a later write always carries a larger version.
func entryVersion(message *domain.Message) int64 {
	if message.UpdatedAt == nil {
		return 0
	}
	return message.UpdatedAt.UnixMicro()
}

type noopMessageCache struct{}

// NewNoopMessageCache returns a cache that never holds anything.
func NewNoopMessageCache() MessageCache {
	return noopMessageCache{}
}

func (noopMessageCache) Get(context.Context, string) (*domain.Message, bool) { return nil, false }
func (noopMessageCache) Set(context.Context, *domain.Message)                {}
