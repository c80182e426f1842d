package cache

import (
	"context"
	"encoding/json"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/btc-tracker/internal/entity/price"
	"max.ks1230/btc-tracker/internal/logger"
)

const latestSuffix = ":latest"

type memcacheConfig interface {
	Hosts() []string
	KeyPrefix() string
}

type itemStore interface {
	Set(item *memcache.Item) error
	Get(key string) (*memcache.Item, error)
}

// MemcacheClient keeps the most recent record under <prefix>:latest.
type MemcacheClient struct {
	client itemStore
	key    string
}

func NewMemcache(config memcacheConfig) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{client: mc, key: latestKey(config.KeyPrefix())}, mc.Ping()
}

func latestKey(prefix string) string {
	return prefix + latestSuffix
}

func (mc *MemcacheClient) Name() string {
	return "memcached"
}

func (mc *MemcacheClient) Publish(_ context.Context, rec price.Record) error {
	value, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "marshalling record")
	}
	err = mc.client.Set(&memcache.Item{
		Key:   mc.key,
		Value: value,
	})
	return errors.Wrap(err, "cache latest record")
}

func (mc *MemcacheClient) LatestRecord(_ context.Context) (price.Record, error) {
	item, err := mc.client.Get(mc.key)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return price.Record{}, price.ErrNoRecord
	}
	if err != nil {
		return price.Record{}, errors.Wrap(err, "get latest record")
	}
	return decodeRecord(item.Value)
}

func decodeRecord(data []byte) (price.Record, error) {
	var rec price.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return price.Record{}, errors.Wrap(err, "unmarshalling cached record")
	}
	return rec, nil
}
