// internal/adapters/grpc/server.go
package grpc

import (
	"context"
	"net"
	"time"

	promgrpc "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// Server serves grpc.health.v1.Health and reflection. Unary calls are
// logged and counted.
type Server struct {
	grpc    *grpc.Server
	health  *health.Server
	metrics *promgrpc.ServerMetrics
	logger  *log.Entry
}

func NewServer(registerer prometheus.Registerer, logger *log.Entry) *Server {
	if logger == nil {
		logger = log.WithField("layer", "grpc")
	}
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	metrics := promgrpc.NewServerMetrics()
	if err := registerer.Register(metrics); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*promgrpc.ServerMetrics); ok {
				metrics = existing
			}
		} else {
			logger.WithError(err).Warn("failed to register grpc metrics")
		}
	}

	s := &Server{
		health:  health.NewServer(),
		metrics: metrics,
		logger:  logger,
	}
	s.grpc = grpc.NewServer(grpc.ChainUnaryInterceptor(
		metrics.UnaryServerInterceptor(),
		s.loggingInterceptor,
	))

	healthpb.RegisterHealthServer(s.grpc, s.health)
	reflection.Register(s.grpc)
	metrics.InitializeMetrics(s.grpc)

	s.SetServing(false)
	return s
}

// SetServing flips the overall health status reported to clients.
func (s *Server) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", st)
}

func (s *Server) Serve(lis net.Listener) error {
	s.logger.WithField("addr", lis.Addr().String()).Info("gRPC server listening")
	return s.grpc.Serve(lis)
}

// Stop reports NOT_SERVING, then drains in-flight calls for at most
// timeout before forcing the server down.
func (s *Server) Stop(timeout time.Duration) {
	s.health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(timeout):
		s.logger.Warn("graceful stop timed out, forcing")
		s.grpc.Stop()
	}
}

func (s *Server) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	entry := s.logger.WithFields(log.Fields{
		"method":  info.FullMethod,
		"code":    status.Code(err).String(),
		"latency": time.Since(start).String(),
	})
	if err != nil {
		entry.WithError(err).Warn("rpc failed")
	} else {
		entry.Debug("rpc completed")
	}
	return resp, err
}
