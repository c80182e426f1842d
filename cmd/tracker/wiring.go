package main

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/btc-tracker/internal/clients/cache"
	"max.ks1230/btc-tracker/internal/clients/kafka"
	"max.ks1230/btc-tracker/internal/clients/tg"
	"max.ks1230/btc-tracker/internal/config"
	"max.ks1230/btc-tracker/internal/entity/price"
	"max.ks1230/btc-tracker/internal/logger"
	"max.ks1230/btc-tracker/internal/model/storage"
	"max.ks1230/btc-tracker/internal/model/tracker"
	"max.ks1230/btc-tracker/internal/status"
)

type recordLog interface {
	Load() ([]price.Record, error)
	Append(rec price.Record) error
}

type latestReader interface {
	Name() string
	LatestRecord(ctx context.Context) (price.Record, error)
}

const shutdownTimeout = 5 * time.Second

// closerStack runs cleanups in reverse registration order.
type closerStack []func()

func (c *closerStack) push(f func()) {
	*c = append(*c, f)
}

func (c *closerStack) closeAll() {
	for i := len(*c) - 1; i >= 0; i-- {
		(*c)[i]()
	}
}

func openRecordLog(conf *config.Service, log *zap.Logger) (recordLog, error) {
	var store recordLog
	switch conf.Storage().Format() {
	case config.FormatJSONLines:
		store = storage.NewLinesStorage(conf.OutputFile(), log)
	default:
		store = storage.NewFileStorage(conf.OutputFile(), log)
	}

	records, err := store.Load()
	if err != nil {
		return nil, err
	}
	fields := []zap.Field{zap.String("path", conf.OutputFile()), zap.Int("records", len(records))}
	if len(records) > 0 {
		fields = append(fields, zap.Any("last", records[len(records)-1]))
	}
	log.Info("price log opened", fields...)
	return store, nil
}

// logLatestRecord reports the record a mirror already holds.
func logLatestRecord(ctx context.Context, log *zap.Logger, r latestReader) {
	rec, err := r.LatestRecord(ctx)
	switch {
	case errors.Is(err, price.ErrNoRecord):
		log.Info("mirror holds no record yet", zap.String("mirror", r.Name()))
	case err != nil:
		log.Warn("cannot read latest mirrored record", zap.String("mirror", r.Name()), zap.Error(err))
	default:
		log.Info("latest mirrored record", zap.String("mirror", r.Name()), zap.Any("record", rec))
	}
}

// wireOptions connects every optional component the config enables.
func wireOptions(ctx context.Context, conf *config.Service, closers *closerStack) ([]tracker.Option, error) {
	var opts []tracker.Option

	if conf.Postgres().Host() != "" {
		db, err := storage.NewPostgresStorage(conf.Postgres())
		if err != nil {
			return nil, errors.Wrap(err, "failed to init postgres")
		}
		closers.push(db.Close)
		if err = db.EnsureSchema(ctx); err != nil {
			return nil, errors.Wrap(err, "failed to init postgres schema")
		}
		logLatestRecord(ctx, logger.Logger(), db)
		opts = append(opts, tracker.WithMirrors(db))
	}

	if len(conf.Kafka().Brokers()) > 0 {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			return nil, errors.Wrap(err, "failed to init kafka producer")
		}
		closers.push(producer.Close)
		opts = append(opts, tracker.WithMirrors(producer))
	}

	if len(conf.Memcached().Hosts()) > 0 {
		mc, err := cache.NewMemcache(conf.Memcached())
		if err != nil {
			return nil, errors.Wrap(err, "failed to init memcached")
		}
		logLatestRecord(ctx, logger.Logger(), mc)
		opts = append(opts, tracker.WithMirrors(mc))
	}

	if conf.Redis().Addr() != "" {
		rc, err := cache.NewRedis(ctx, conf.Redis())
		if err != nil {
			return nil, errors.Wrap(err, "failed to init redis")
		}
		closers.push(rc.Close)
		logLatestRecord(ctx, logger.Logger(), rc)
		opts = append(opts, tracker.WithMirrors(rc))
	}

	if conf.Telegram().Token() != "" {
		notifier, err := tg.New(conf.Telegram())
		if err != nil {
			return nil, errors.Wrap(err, "failed to init telegram notifier")
		}
		opts = append(opts, tracker.WithNotifier(notifier))
	}

	if addr := conf.Health().Addr(); addr != "" {
		hs, err := status.NewHealthServer(addr)
		if err != nil {
			return nil, errors.Wrap(err, "failed to init health server")
		}
		go hs.Serve()
		closers.push(hs.Shutdown)
		opts = append(opts, tracker.WithStateListener(hs.SetState))
	}

	if addr := conf.Metrics().Addr(); addr != "" {
		ms, err := status.NewMetricsServer(addr)
		if err != nil {
			return nil, errors.Wrap(err, "failed to init metrics server")
		}
		go ms.Serve()
		closers.push(func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			ms.Shutdown(ctx)
		})
	}

	return opts, nil
}
