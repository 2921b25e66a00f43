package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/catalog-service/internal/config"
)

func TestRedisOptionsApplyOperationTimeout(t *testing.T) {
	opts := redisOptions(config.RedisConfig{Addr: "cache:6379", DB: 2, OpTimeoutMillis: 150})

	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 150*time.Millisecond, opts.DialTimeout)
	assert.Equal(t, 150*time.Millisecond, opts.ReadTimeout)
	assert.Equal(t, 150*time.Millisecond, opts.WriteTimeout)

	opts = redisOptions(config.RedisConfig{Addr: "cache:6379"})
	assert.Zero(t, opts.ReadTimeout)
}

func TestRedisPingNamesUnreachableServer(t *testing.T) {
	r := NewRedis(context.Background(), config.RedisConfig{Addr: "127.0.0.1:1", OpTimeoutMillis: 50}, zap.NewNop())
	t.Cleanup(r.Close)

	err := r.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis 127.0.0.1:1")
}

func TestRedisPingWithoutClient(t *testing.T) {
	var r *Redis
	assert.EqualError(t, r.Ping(context.Background()), "redis client not configured")
}
