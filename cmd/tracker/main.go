package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/btc-tracker/internal/clients/coindesk"
	"max.ks1230/btc-tracker/internal/config"
	"max.ks1230/btc-tracker/internal/logger"
	"max.ks1230/btc-tracker/internal/model/tracker"
)

func main() {
	err := run()
	if err != nil {
		logger.Error("tracker exited with failure", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run() error {
	logger.Info("Tracker init - start")

	conf, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to init config")
	}
	logger.Info("configuration loaded",
		zap.String("apiUrl", conf.App().APIURL()),
		zap.Duration("fetchInterval", conf.App().FetchInterval()),
		zap.String("outputPath", conf.OutputFile()),
		zap.String("format", conf.Storage().Format()))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var closers closerStack
	defer closers.closeAll()

	if conf.Tracing().Enabled() {
		closer, err := initTracer(conf.Tracing())
		if err != nil {
			return errors.Wrap(err, "failed to init tracing")
		}
		closers.push(func() { _ = closer.Close() })
	}

	store, err := openRecordLog(conf, logger.Logger())
	if err != nil {
		return errors.Wrap(err, "failed to open price log")
	}

	opts, err := wireOptions(ctx, conf, &closers)
	if err != nil {
		return err
	}

	poller, err := tracker.NewPoller(
		coindesk.New(conf.App()),
		store,
		conf.App(),
		conf.Retry(),
		logger.Logger(),
		opts...,
	)
	if err != nil {
		return errors.Wrap(err, "failed to init poller")
	}

	logger.Info("Tracker init - end")
	return poller.Run(ctx)
}
