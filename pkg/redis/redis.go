package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// IRedis is a small read-cache over hot public listings. A cache miss is
// reported as ErrCacheMiss so callers fall through to the database.
type IRedis interface {
	SetJSON(ctx context.Context, key string, payload []byte, expiration time.Duration) error
	GetJSON(ctx context.Context, key string) ([]byte, error)
	Invalidate(ctx context.Context, pattern string) error
}

var ErrCacheMiss = errors.New("cache miss")

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func (r *redisClient) SetJSON(ctx context.Context, key string, payload []byte, expiration time.Duration) error {
	if err := r.client.Set(ctx, key, payload, expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error caching key %s: %v", key, err))
		return err
	}
	return nil
}

func (r *redisClient) GetJSON(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error reading cache key %s: %v", key, err))
		return nil, err
	}
	return val, nil
}

func (r *redisClient) Invalidate(ctx context.Context, pattern string) error {
	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			logrus.Error(fmt.Sprintf("Error invalidating cache key %s: %v", iter.Val(), err))
			return err
		}
	}
	return iter.Err()
}
