package main

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
	"max.ks1230/btc-tracker/internal/logger"
)

type tracingConfig interface {
	ServiceName() string
}

// initTracer installs a Jaeger tracer as the global opentracing tracer.
// JAEGER_* environment variables override the defaults.
func initTracer(cfg tracingConfig) (io.Closer, error) {
	jcfg, err := jaegercfg.FromEnv()
	if err != nil {
		return nil, errors.Wrap(err, "reading jaeger env")
	}
	if jcfg.ServiceName == "" {
		jcfg.ServiceName = cfg.ServiceName()
	}
	if jcfg.Sampler == nil || jcfg.Sampler.Type == "" {
		jcfg.Sampler = &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		}
	}

	tracer, closer, err := jcfg.NewTracer(jaegercfg.Logger(jaeger.StdLogger))
	if err != nil {
		return nil, errors.Wrap(err, "cannot init jaeger tracer")
	}
	opentracing.SetGlobalTracer(tracer)

	logger.Info("tracing enabled", zap.String("service", jcfg.ServiceName))
	return closer, nil
}
