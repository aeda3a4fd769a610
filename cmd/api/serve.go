package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xiebiao/catalog/pkg/tracing"
)

// grpcHealthInterval gRPC健康状态刷新间隔
const grpcHealthInterval = 15 * time.Second

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "启动HTTP服务（以及启用时的gRPC健康检查服务）",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return c.serve(ctx)
		},
	}
}

// serve 启动服务，ctx取消后优雅关闭
//
// 关闭顺序：停止接收HTTP请求并等待进行中的请求 → 停止gRPC → 等待审计消息发布 → 关闭MQ/Redis/数据库 → 刷新trace
func (c *cli) serve(ctx context.Context) error {
	cfg, log := c.cfg, c.log

	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(ctx, tracing.Options{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
			Insecure:    cfg.Tracing.Insecure,
		})
		if err != nil {
			return fmt.Errorf("初始化链路追踪失败: %w", err)
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(flushCtx); err != nil {
				log.Warn("tracer shutdown failed", zap.Error(err))
			}
		}()
		log.Info("tracing enabled", zap.String("endpoint", cfg.Tracing.Endpoint))
	}

	app, cleanup, err := initializeApp(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	if cfg.Database.Seed {
		if err := app.Seeder.Run(ctx); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      app.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 2)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr), zap.String("mode", cfg.Server.Mode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP服务异常退出: %w", err)
		}
	}()

	if cfg.GRPC.Enabled {
		lis, err := net.Listen("tcp", cfg.GRPC.Addr())
		if err != nil {
			return fmt.Errorf("监听gRPC端口失败: %w", err)
		}
		go app.GRPC.Watch(ctx, grpcHealthInterval)
		go func() {
			if err := app.GRPC.Serve(lis); err != nil {
				errCh <- fmt.Errorf("gRPC服务异常退出: %w", err)
			}
		}()
		defer app.GRPC.Stop()
	}

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		log.Error("server failed", zap.Error(err))
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP服务关闭失败: %w", err)
	}
	log.Info("http server stopped")
	return nil
}
