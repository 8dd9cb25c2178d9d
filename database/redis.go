package database

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/appditto/survey-push-server/config"
	"github.com/appditto/survey-push-server/utils"
	"github.com/go-redis/redis/v9"
	"k8s.io/klog/v2"
)

// Singleton to keep the client around for the life of the process
type redisManager struct {
	Client *redis.Client
	Mock   bool
}

var singleton *redisManager
var once sync.Once

func GetRedisDB() *redisManager {
	once.Do(func() {
		if utils.GetEnv("MOCK_REDIS", "false") == "true" {
			klog.Infof("Using mock redis client because MOCK_REDIS=true is set in environment")
			mr, _ := miniredis.Run()
			client := redis.NewClient(&redis.Options{
				Addr: mr.Addr(),
			})
			singleton = &redisManager{
				Client: client,
				Mock:   true,
			}
		} else {
			redisPort, err := strconv.Atoi(utils.GetEnv("REDIS_PORT", "6379"))
			if err != nil {
				panic("Invalid REDIS_PORT specified")
			}
			redisDb, err := strconv.Atoi(utils.GetEnv("REDIS_DB", "0"))
			if err != nil {
				panic("Invalid REDIS_DB specified")
			}
			client := redis.NewClient(&redis.Options{
				Addr: fmt.Sprintf("%s:%d", utils.GetEnv("REDIS_HOST", "localhost"), redisPort),
				DB:   redisDb,
			})
			singleton = &redisManager{
				Client: client,
				Mock:   false,
			}
		}
	})
	return singleton
}

func prefixed(key string) string {
	return fmt.Sprintf("%s:%s", config.REDIS_KEY_PREFIX, key)
}

// Get - Redis GET, returns redis.Nil when the key is missing
func (r *redisManager) Get(ctx context.Context, key string) (string, error) {
	return r.Client.Get(ctx, prefixed(key)).Result()
}

// Set - Redis SET
func (r *redisManager) Set(ctx context.Context, key string, value string, expiry time.Duration) error {
	return r.Client.Set(ctx, prefixed(key), value, expiry).Err()
}
