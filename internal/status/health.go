package status

import (
	"net"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"max.ks1230/btc-tracker/internal/logger"
	"max.ks1230/btc-tracker/internal/model/tracker"
)

const ServiceName = "btc-tracker"

// HealthServer exposes grpc.health.v1 and reports SERVING while the poller runs.
type HealthServer struct {
	health *health.Server
	server *grpc.Server
	lis    net.Listener
}

func NewHealthServer(addr string) (*HealthServer, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create health server")
	}

	rpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(rpcServer, hs)

	s := &HealthServer{
		health: hs,
		server: rpcServer,
		lis:    lis,
	}
	s.SetState(tracker.Running)
	return s, nil
}

func (s *HealthServer) Addr() net.Addr {
	return s.lis.Addr()
}

// SetState matches the tracker.WithStateListener signature.
func (s *HealthServer) SetState(state tracker.State) {
	status := healthpb.HealthCheckResponse_SERVING
	if state == tracker.Stopped {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus(ServiceName, status)
	s.health.SetServingStatus("", status)
}

func (s *HealthServer) Serve() {
	logger.Info("gRPC health server listening", zap.Any("addr", s.lis.Addr()))
	err := s.server.Serve(s.lis)
	if err != nil {
		logger.Error("failed to serve gRPC", zap.Error(err))
	}
}

func (s *HealthServer) Shutdown() {
	s.health.Shutdown()
	s.server.GracefulStop()
	logger.Info("grpc health server stopped")
}
