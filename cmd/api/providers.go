package main

import (
	"context"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/xiebiao/catalog/internal/application"
	appcatalog "github.com/xiebiao/catalog/internal/application/catalog"
	"github.com/xiebiao/catalog/internal/application/seed"
	"github.com/xiebiao/catalog/internal/domain/catalog"
	"github.com/xiebiao/catalog/internal/domain/user"
	"github.com/xiebiao/catalog/internal/infrastructure/config"
	"github.com/xiebiao/catalog/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/catalog/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/catalog/internal/interface/grpcserver"
	"github.com/xiebiao/catalog/internal/interface/http/handler"
	"github.com/xiebiao/catalog/internal/interface/http/middleware"
	"github.com/xiebiao/catalog/pkg/jwt"
	"github.com/xiebiao/catalog/pkg/mq"
)

// version 构建时通过 -ldflags "-X main.version=..." 注入
var version = "dev"

// App 组装完成的应用
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	DB      *gorm.DB
	Engine  *gin.Engine
	Auditor *middleware.Auditor
	Seeder  *seed.Seeder
	Users   user.Service
	GRPC    *grpcserver.Server
}

// provideDB 数据库连接，cleanup时关闭连接池
func provideDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, func(), error) {
	db, err := gormdb.NewDB(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := gormdb.Close(db); err != nil {
			logger.Warn("close database failed", zap.Error(err))
		}
	}
	return db, cleanup, nil
}

// provideRedis Redis客户端；未启用时为nil
func provideRedis(cfg *config.Config, logger *zap.Logger) (*goredis.Client, func(), error) {
	client, err := redis.NewClient(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if client != nil {
			_ = client.Close()
		}
	}
	return client, cleanup, nil
}

// provideSessionStore 未启用Redis时不记录会话，黑名单为空
func provideSessionStore(client *goredis.Client) user.SessionStore {
	if client == nil {
		return user.NopSessionStore{}
	}
	return redis.NewSessionStore(client)
}

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expire, cfg.JWT.Issuer)
}

// provideRegistry 图书引用校验使用的资源注册表
func provideRegistry(repos []catalog.Repository) *catalog.Registry {
	return catalog.NewRegistry(repos...)
}

func provideCatalogServices(repos []catalog.Repository) []catalog.Service {
	services := make([]catalog.Service, 0, len(repos))
	for _, repo := range repos {
		services = append(services, catalog.NewService(repo))
	}
	return services
}

func provideCatalogUseCase(tx application.Transactor, services []catalog.Service) *appcatalog.UseCase {
	return appcatalog.NewUseCase(tx, services...)
}

// provideCatalogHandlers 每种资源一个处理器
func provideCatalogHandlers(uc *appcatalog.UseCase) []*handler.CatalogHandler {
	kinds := catalog.Kinds()
	handlers := make([]*handler.CatalogHandler, 0, len(kinds))
	for _, kind := range kinds {
		handlers = append(handlers, handler.NewCatalogHandler(kind, uc))
	}
	return handlers
}

func provideHealthHandler(db *gorm.DB) *handler.HealthHandler {
	return handler.NewHealthHandler(func(ctx context.Context) error {
		return gormdb.Ping(ctx, db)
	}, version)
}

// provideAuditor 启用MQ时审计事件发布到RabbitMQ，否则只记日志
// cleanup先等待进行中的发布，再关闭连接
func provideAuditor(cfg *config.Config, logger *zap.Logger) (*middleware.Auditor, func(), error) {
	if !cfg.MQ.Enabled {
		return middleware.NewAuditor(nil, cfg.MQ.PublishTimeout, logger), func() {}, nil
	}

	publisher, err := mq.NewPublisher(mqOptions(cfg), logger)
	if err != nil {
		return nil, nil, err
	}
	auditor := middleware.NewAuditor(publisher, cfg.MQ.PublishTimeout, logger)
	cleanup := func() {
		auditor.Wait()
		if err := publisher.Close(); err != nil {
			logger.Warn("close publisher failed", zap.Error(err))
		}
	}
	return auditor, cleanup, nil
}

func mqOptions(cfg *config.Config) mq.Options {
	return mq.Options{URL: cfg.MQ.URL, Exchange: cfg.MQ.Exchange}
}

func provideSeedAdmin(cfg *config.Config) seed.Admin {
	return seed.Admin{
		Name:     cfg.Seed.AdminName,
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
	}
}

func provideGRPCServer(db *gorm.DB, logger *zap.Logger) *grpcserver.Server {
	return grpcserver.New(func(ctx context.Context) error {
		return gormdb.Ping(ctx, db)
	}, logger)
}
