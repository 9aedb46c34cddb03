// Package grpc exposes the standard gRPC health service so orchestrators can
// probe the process without going through HTTP.
package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"

	"fooddelivery/internal/pkg/health"
	"fooddelivery/internal/pkg/logger"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the service whose status follows the component checks. The
// empty service name reports the status of the whole process.
const ServiceName = "fooddelivery.api"

// HealthServer serves grpc.health.v1.Health.
type HealthServer struct {
	server *grpc.Server
	health *grpchealth.Server
}

func NewHealthServer() *HealthServer {
	hs := grpchealth.NewServer()
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	server := grpc.NewServer()
	healthpb.RegisterHealthServer(server, hs)
	return &HealthServer{server: server, health: hs}
}

// Apply publishes a health report as the serving status of ServiceName.
func (s *HealthServer) Apply(report health.Report) {
	status := healthpb.HealthCheckResponse_SERVING
	if !report.Healthy() {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus(ServiceName, status)
}

// Serve blocks until Stop is called or the listener fails.
func (s *HealthServer) Serve(lis net.Listener) error {
	logger.L().Info("grpc health server listening", zap.String("addr", lis.Addr().String()))
	if err := s.server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve grpc: %w", err)
	}
	return nil
}

// Stop marks every service as not serving and drains open calls.
func (s *HealthServer) Stop(ctx context.Context) {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.server.Stop()
	}
}

// Server exposes the underlying grpc.Server for tests and extra services.
func (s *HealthServer) Server() *grpc.Server {
	return s.server
}
