package status

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/btc-tracker/internal/logger"
)

const readHeaderTimeout = 5 * time.Second

// MetricsServer serves the default prometheus registry at /metrics.
type MetricsServer struct {
	server *http.Server
	lis    net.Listener
}

func NewMetricsServer(addr string) (*MetricsServer, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create metrics server")
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &MetricsServer{
		server: &http.Server{Handler: mux, ReadHeaderTimeout: readHeaderTimeout},
		lis:    lis,
	}, nil
}

func (s *MetricsServer) Addr() net.Addr {
	return s.lis.Addr()
}

func (s *MetricsServer) Serve() {
	logger.Info("metrics server listening", zap.Any("addr", s.lis.Addr()))
	err := s.server.Serve(s.lis)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("failed to serve metrics", zap.Error(err))
	}
}

func (s *MetricsServer) Shutdown(ctx context.Context) {
	if err := s.server.Shutdown(ctx); err != nil {
		logger.Error("failed to stop metrics server", zap.Error(err))
		return
	}
	logger.Info("metrics server stopped")
}
