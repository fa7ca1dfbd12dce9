package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"taskhub/pkg/logger"
)

// Client wraps the Redis client used as a read-through cache.
type Client struct {
	rdb *redis.Client
}

type Config struct {
	URL      string
	Password string
	DB       int
}

func NewClient(cfg Config) (*Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	if cfg.Password != "" {
		opt.Password = cfg.Password
	}
	if cfg.DB > 0 {
		opt.DB = cfg.DB
	}

	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	logger.Info("Redis connected", "url", cfg.URL)

	return &Client{rdb: rdb}, nil
}

func (c *Client) Get(ctx context.Context, key string) (string, error) {
	return c.rdb.Get(ctx, key).Result()
}

// IsMiss reports whether a Get error means the key was absent.
func IsMiss(err error) bool {
	return err == redis.Nil
}

func (c *Client) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.rdb.Set(ctx, key, value, expiration).Err()
}

func (c *Client) Del(ctx context.Context, keys ...string) error {
	return c.rdb.Del(ctx, keys...).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
