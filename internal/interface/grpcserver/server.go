// Package grpcserver 提供gRPC健康检查服务（grpc.health.v1）
// 供Kubernetes gRPC探针、grpcurl等工具检查服务和数据库状态
package grpcserver

import (
	"context"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName 健康检查中登记的服务名
const ServiceName = "catalog"

// Pinger 依赖检查（数据库）
type Pinger func(ctx context.Context) error

// Server gRPC服务器
type Server struct {
	grpc   *grpc.Server
	health *health.Server
	ping   Pinger
	logger *zap.Logger
}

// New 创建gRPC服务器并注册健康检查和反射服务
func New(ping Pinger, logger *zap.Logger) *Server {
	srv := grpc.NewServer(
		grpc.MaxRecvMsgSize(4*1024*1024),
		grpc.ChainUnaryInterceptor(loggingInterceptor(logger)),
	)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)

	return &Server{grpc: srv, health: hs, ping: ping, logger: logger}
}

// Check 检查依赖并更新服务状态
// 整体状态（空服务名）和catalog服务状态保持一致
func (s *Server) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := s.ping(ctx); err != nil {
		s.logger.Warn("grpc health check failed", zap.Error(err))
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
	return status
}

// Watch 按interval周期检查，ctx取消时退出
func (s *Server) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		checkCtx, cancel := context.WithTimeout(ctx, interval/2)
		s.Check(checkCtx)
		cancel()

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Serve 在listener上提供服务，直到Stop被调用
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("grpc server listening", zap.String("addr", lis.Addr().String()))
	return s.grpc.Serve(lis)
}

// Stop 优雅关闭：标记NOT_SERVING后等待进行中的调用结束
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}

func loggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.Duration("latency", time.Since(start)),
		}
		if err != nil {
			logger.Warn("grpc call", append(fields, zap.Error(err))...)
		} else {
			logger.Debug("grpc call", fields...)
		}
		return resp, err
	}
}
