// Package metrics 基于Prometheus的指标收集
//
// 指标分三类：
//   - HTTP：请求总数、耗时分布、处理中请求数（由中间件记录）
//   - 业务：目录写操作、认证尝试、CSV导出
//   - 基础设施：熔断器状态、审计消息发布
//
// 使用方式：
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	initOnce sync.Once

	// HTTPRequestsTotal HTTP请求总数，标签：method、path（路由模板）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（秒）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// CatalogWritesTotal 资源写操作总数，标签：resource（book/author/...）、action（create/update/delete）
	CatalogWritesTotal *prometheus.CounterVec

	// AuthAttemptsTotal 认证尝试总数，标签：action（login/register/verify/logout）、result（success/failure）
	AuthAttemptsTotal *prometheus.CounterVec

	// BooksExportedTotal CSV导出的图书行数
	BooksExportedTotal prometheus.Counter

	// CircuitBreakerState 熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）
	CircuitBreakerState *prometheus.GaugeVec

	// MessagesPublishedTotal 消息发布总数，标签：routing_key、result
	MessagesPublishedTotal *prometheus.CounterVec
)

// InitMetrics 注册所有指标到默认Registry（可重复调用）
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		CatalogWritesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_writes_total",
				Help: "目录资源写操作总数",
			},
			[]string{"resource", "action"},
		)

		AuthAttemptsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_attempts_total",
				Help: "认证尝试总数",
			},
			[]string{"action", "result"},
		)

		BooksExportedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "books_exported_total",
				Help: "CSV导出的图书行数",
			},
		)

		CircuitBreakerState = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
			},
			[]string{"name"},
		)

		MessagesPublishedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "messages_published_total",
				Help: "消息发布总数",
			},
			[]string{"routing_key", "result"},
		)
	})
}

// RecordWrite 记录一次资源写操作
func RecordWrite(resource, action string) {
	if CatalogWritesTotal == nil {
		return
	}
	CatalogWritesTotal.WithLabelValues(resource, action).Inc()
}

// RecordAuth 记录一次认证尝试
func RecordAuth(action string, err error) {
	if AuthAttemptsTotal == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	AuthAttemptsTotal.WithLabelValues(action, result).Inc()
}

// RecordExport 记录CSV导出行数
func RecordExport(rows int) {
	if BooksExportedTotal == nil {
		return
	}
	BooksExportedTotal.Add(float64(rows))
}

// RecordPublish 记录一次消息发布
func RecordPublish(routingKey string, err error) {
	if MessagesPublishedTotal == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	MessagesPublishedTotal.WithLabelValues(routingKey, result).Inc()
}

// SetBreakerState 更新熔断器状态
func SetBreakerState(name string, state int) {
	if CircuitBreakerState == nil {
		return
	}
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
