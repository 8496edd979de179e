package cache

import (
	"context"
	"time"

	"community-funding-system/config"

	"github.com/redis/go-redis/v9"
)

// Client 全局 Redis 客户端，未启用时为 nil，调用方需自行降级
var Client *redis.Client

func Init() {
	cfg := config.Get().Redis
	if !cfg.Enable {
		return
	}
	Client = redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// StatsTTL 统计缓存的过期时间
func StatsTTL() time.Duration {
	return time.Duration(config.Get().Redis.StatsTTLSeconds) * time.Second
}

// GetString 读取缓存值，未启用或未命中时 ok 为 false
func GetString(ctx context.Context, key string) (string, bool) {
	if Client == nil {
		return "", false
	}
	val, err := Client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// SetString 写入缓存值，未启用或 TTL 为 0 时不做任何事
func SetString(ctx context.Context, key, val string, ttl time.Duration) {
	if Client == nil || ttl <= 0 {
		return
	}
	Client.Set(ctx, key, val, ttl)
}
