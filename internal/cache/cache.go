package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()

// Cache 封装可选的 Redis 缓存。
// 未配置地址时 Enabled 返回 false，调用方将其当作持续未命中处理。
type Cache struct {
	client *redis.Client
}

// New 连接 Redis；addr 为空时返回禁用态实例，连接失败时返回错误。
func New(addr string) (*Cache, error) {
	if addr == "" {
		return &Cache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis %s: %w", addr, err)
	}

	return &Cache{client: client}, nil
}

// Enabled 返回缓存是否可用
func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// Set 以 JSON 序列化后写入
func (c *Cache) Set(key string, value interface{}, expiration time.Duration) error {
	if !c.Enabled() {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal failed: %w", err)
	}

	return c.client.Set(ctx, key, data, expiration).Err()
}

// Get 读取并反序列化到 dest，未命中返回错误
func (c *Cache) Get(key string, dest interface{}) error {
	if !c.Enabled() {
		return redis.Nil
	}

	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return fmt.Errorf("cache miss: %w", err)
	} else if err != nil {
		return fmt.Errorf("cache get failed: %w", err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return fmt.Errorf("cache unmarshal failed: %w", err)
	}

	return nil
}

// DeletePattern 按模式批量删除键（例如 foods:*）
func (c *Cache) DeletePattern(pattern string) error {
	if !c.Enabled() {
		return nil
	}

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("delete keys failed: %w", err)
			}
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}
	return nil
}

// Close 关闭连接
func (c *Cache) Close() error {
	if c.Enabled() {
		return c.client.Close()
	}
	return nil
}
