package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/xiebiao/catalog/internal/infrastructure/config"
	"github.com/xiebiao/catalog/internal/interface/http/handler"
	"github.com/xiebiao/catalog/internal/interface/http/middleware"
	"github.com/xiebiao/catalog/pkg/metrics"
	"github.com/xiebiao/catalog/pkg/validation"
)

// slowRequest 超过该耗时的请求记录warn日志
const slowRequest = 500 * time.Millisecond

// Handlers 路由需要的全部处理器
type Handlers struct {
	Health   *handler.HealthHandler
	Auth     *handler.AuthHandler
	Books    *handler.BookHandler
	Catalogs []*handler.CatalogHandler
}

// New 创建Gin引擎并注册全部路由
//
// 全局中间件顺序：recovery → 请求日志 → CORS → 指标 → 链路追踪 → 超时 → 审计
// 认证中间件只挂在需要登录的路由组上
func New(
	cfg *config.Config,
	logger *zap.Logger,
	h Handlers,
	auth *middleware.AuthMiddleware,
	auditor *middleware.Auditor,
) *gin.Engine {
	switch cfg.Server.Mode {
	case gin.ReleaseMode:
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	}
	validation.Setup()

	r := gin.New()
	r.Use(
		middleware.Recovery(),
		middleware.Logger(logger, slowRequest),
		middleware.CORS(cfg.CORS),
	)
	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
		r.Use(middleware.Metrics())
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing())
	}
	if cfg.Server.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	}
	if auditor != nil {
		r.Use(auditor.Handler())
	}

	r.GET("/health", h.Health.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.GET("", h.Health.Welcome)

	// 公开接口
	public := api.Group("/auth")
	{
		public.POST("/register", h.Auth.Register)
		public.POST("/login", h.Auth.Login)
	}

	// 需要登录
	authorized := api.Group("")
	authorized.Use(auth.RequireAuth())
	{
		authorized.GET("/auth/verify", h.Auth.Verify)
		authorized.POST("/auth/logout", h.Auth.Logout)

		books := authorized.Group("/books")
		{
			books.GET("", h.Books.List)
			books.POST("", h.Books.Create)
			books.GET("/search", h.Books.Search)
			books.GET("/csv", h.Books.ExportCSV)
			books.GET("/:id", h.Books.Get)
			books.PATCH("/:id", h.Books.Update)
			books.DELETE("/:id", h.Books.Delete)
		}

		for _, ch := range h.Catalogs {
			group := authorized.Group("/" + ch.Kind().Meta().Plural)
			group.GET("", ch.List)
			group.POST("", ch.Create)
			group.GET("/:id", ch.Get)
			group.PATCH("/:id", ch.Update)
			group.DELETE("/:id", ch.Delete)
		}
	}

	return r
}
