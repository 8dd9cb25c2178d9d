package database

import (
	"context"
	"os"
	"testing"

	"github.com/go-redis/redis/v9"
	"github.com/stretchr/testify/assert"
)

var ctx = context.Background()

func init() {
	os.Setenv("MOCK_REDIS", "true")
}

func TestMockRedis(t *testing.T) {
	redis := GetRedisDB()
	assert.Equal(t, true, redis.Mock)
}

func TestSetAndGet(t *testing.T) {
	err := GetRedisDB().Set(ctx, "key", "v", 0)
	assert.Equal(t, nil, err)
	val, err := GetRedisDB().Get(ctx, "key")
	assert.Equal(t, nil, err)
	assert.Equal(t, "v", val)
}

func TestKeysArePrefixed(t *testing.T) {
	err := GetRedisDB().Set(ctx, "prefixed", "v", 0)
	assert.Equal(t, nil, err)
	val, err := GetRedisDB().Client.Get(ctx, "surveypush:prefixed").Result()
	assert.Equal(t, nil, err)
	assert.Equal(t, "v", val)
}

func TestGetMissing(t *testing.T) {
	_, err := GetRedisDB().Get(ctx, "missing")
	assert.Equal(t, redis.Nil, err)
}
