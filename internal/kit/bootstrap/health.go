package bootstrap

import (
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"
)

// HealthServer 提供 gRPC Health Check (K8s liveness / readiness probe)
type HealthServer struct {
	server *grpc.Server
	health *health.Server
	name   string
	logger *slog.Logger
}

// NewHealthServer 建立 gRPC Health Server，初始狀態為 NOT_SERVING
//
// 參數:
//
//	serviceName: string - 回報狀態用的服務名稱 (同時也回報 "" 整體狀態)
//	logger: *slog.Logger - 日誌
func NewHealthServer(serviceName string, logger *slog.Logger) *HealthServer {
	grpcServer := grpc.NewServer(
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             5 * time.Second,
			PermitWithoutStream: true,
		}),
	)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	reflection.Register(grpcServer)

	s := &HealthServer{
		server: grpcServer,
		health: hs,
		name:   serviceName,
		logger: logger.With("component", "grpc_health"),
	}
	s.SetServing(false)
	return s
}

// SetServing 切換服務狀態
func (s *HealthServer) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(s.name, status)
}

// Listen 在指定 Port 監聽並阻塞服務
func (s *HealthServer) Listen(port int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return s.Serve(lis)
}

// Serve 在既有 listener 上阻塞服務
func (s *HealthServer) Serve(lis net.Listener) error {
	s.logger.Info("gRPC health listening", "addr", lis.Addr().String())
	return s.server.Serve(lis)
}

// Stop 將狀態設為 NOT_SERVING 並優雅關閉
func (s *HealthServer) Stop() {
	s.health.Shutdown()
	s.server.GracefulStop()
}
