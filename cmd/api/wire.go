//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/xiebiao/catalog/internal/application"
	appauth "github.com/xiebiao/catalog/internal/application/auth"
	appbook "github.com/xiebiao/catalog/internal/application/book"
	"github.com/xiebiao/catalog/internal/application/seed"
	"github.com/xiebiao/catalog/internal/domain/book"
	"github.com/xiebiao/catalog/internal/domain/catalog"
	"github.com/xiebiao/catalog/internal/domain/user"
	"github.com/xiebiao/catalog/internal/infrastructure/config"
	"github.com/xiebiao/catalog/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/catalog/internal/interface/http/handler"
	"github.com/xiebiao/catalog/internal/interface/http/middleware"
	"github.com/xiebiao/catalog/internal/interface/http/router"
)

// 修改本文件后执行 `wire ./cmd/api` 重新生成 wire_gen.go

// 基础设施：数据库、Redis、JWT、事务
var infrastructureSet = wire.NewSet(
	provideDB,
	provideRedis,
	provideSessionStore,
	provideJWTManager,
	gormdb.NewTxManager,
	wire.Bind(new(application.Transactor), new(*gormdb.TxManager)),
	gormdb.NewCounter,
	wire.Bind(new(seed.Counter), new(*gormdb.Counter)),
)

// 仓储
var repositorySet = wire.NewSet(
	gormdb.NewCatalogRepositories,
	gormdb.NewBookRepository,
	gormdb.NewUserRepository,
)

// 领域服务
var domainSet = wire.NewSet(
	provideCatalogServices,
	provideRegistry,
	wire.Bind(new(book.ReferenceChecker), new(*catalog.Registry)),
	book.NewService,
	user.NewService,
)

// 应用层用例
var applicationSet = wire.NewSet(
	provideCatalogUseCase,
	appbook.NewUseCase,
	appauth.NewUseCase,
	provideSeedAdmin,
	seed.NewSeeder,
)

// 中间件
var middlewareSet = wire.NewSet(
	middleware.NewAuthMiddleware,
	provideAuditor,
)

// HTTP处理器和路由
var handlerSet = wire.NewSet(
	provideHealthHandler,
	handler.NewAuthHandler,
	handler.NewBookHandler,
	provideCatalogHandlers,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)

// initializeApp 组装应用；cleanup按创建的逆序释放资源
func initializeApp(cfg *config.Config, logger *zap.Logger) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGRPCServer,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
