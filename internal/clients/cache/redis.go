package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"max.ks1230/btc-tracker/internal/entity/price"
	"max.ks1230/btc-tracker/internal/logger"
)

type redisConfig interface {
	Addr() string
	Password() string
	DB() int
	KeyPrefix() string
	TTL() time.Duration
}

type keyValueStore interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Close() error
}

// RedisClient keeps the most recent record under <prefix>:latest, optionally expiring.
type RedisClient struct {
	client keyValueStore
	key    string
	ttl    time.Duration
}

func NewRedis(ctx context.Context, config redisConfig) (*RedisClient, error) {
	logger.Info("redis addr", zap.String("addr", config.Addr()), zap.Int("db", config.DB()))
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr(),
		Password: config.Password(),
		DB:       config.DB(),
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to connect to redis")
	}
	return newRedisClient(client, config.KeyPrefix(), config.TTL()), nil
}

func newRedisClient(client keyValueStore, prefix string, ttl time.Duration) *RedisClient {
	return &RedisClient{
		client: client,
		key:    latestKey(prefix),
		ttl:    ttl,
	}
}

func (rc *RedisClient) Name() string {
	return "redis"
}

func (rc *RedisClient) Publish(ctx context.Context, rec price.Record) error {
	value, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "marshalling record")
	}
	err = rc.client.Set(ctx, rc.key, value, rc.ttl).Err()
	return errors.Wrap(err, "cache latest record")
}

func (rc *RedisClient) LatestRecord(ctx context.Context) (price.Record, error) {
	data, err := rc.client.Get(ctx, rc.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return price.Record{}, price.ErrNoRecord
	}
	if err != nil {
		return price.Record{}, errors.Wrap(err, "get latest record")
	}
	return decodeRecord(data)
}

func (rc *RedisClient) Close() {
	if err := rc.client.Close(); err != nil {
		logger.Error("failed to close redis client", zap.Error(err))
	}
}
