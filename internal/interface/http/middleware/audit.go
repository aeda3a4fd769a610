package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/catalog/pkg/circuitbreaker"
	"github.com/xiebiao/catalog/pkg/metrics"
)

// AuditRoutingKeyPrefix 审计消息的routing key前缀，完整key为 audit.<method>
const AuditRoutingKeyPrefix = "audit."

// AuditEvent 写操作审计事件
type AuditEvent struct {
	Method    string    `json:"method"`
	URL       string    `json:"url"`
	Route     string    `json:"route"`
	Status    int       `json:"status"`
	User      string    `json:"user"`
	RequestID string    `json:"requestId"`
	At        time.Time `json:"at"`
}

// String 审计日志格式：[METHOD] url by user
func (e AuditEvent) String() string {
	return fmt.Sprintf("[%s] %s by %s", e.Method, e.URL, e.User)
}

// EventPublisher 审计事件发布（mq.Publisher）
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// Auditor 写操作审计
// 每个POST/PUT/PATCH/DELETE请求结束后记一行日志；配置了publisher时异步发布到消息队列，
// 发布经过熔断器，消息队列故障不影响请求
type Auditor struct {
	publisher EventPublisher
	breaker   *circuitbreaker.CircuitBreaker
	timeout   time.Duration
	logger    *zap.Logger
	wg        sync.WaitGroup
}

// NewAuditor 创建审计中间件；publisher为nil时只记日志
func NewAuditor(publisher EventPublisher, timeout time.Duration, logger *zap.Logger) *Auditor {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	a := &Auditor{publisher: publisher, timeout: timeout, logger: logger}
	a.breaker = circuitbreaker.New("audit-publisher", circuitbreaker.Config{
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			metrics.SetBreakerState(name, int(to))
			logger.Warn("circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	return a
}

// Handler gin中间件
func (a *Auditor) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if !auditable(c.Request.Method) {
			return
		}

		user := GetEmail(c)
		if user == "" {
			user = "anonymous"
		}
		event := AuditEvent{
			Method:    c.Request.Method,
			URL:       c.Request.URL.RequestURI(),
			Route:     c.FullPath(),
			Status:    c.Writer.Status(),
			User:      user,
			RequestID: GetRequestID(c),
			At:        time.Now().UTC(),
		}

		a.logger.Info(event.String(), zap.Int("status", event.Status), zap.String("request_id", event.RequestID))
		a.publish(event)
	}
}

func (a *Auditor) publish(event AuditEvent) {
	if a.publisher == nil {
		return
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()

		key := AuditRoutingKeyPrefix + strings.ToLower(event.Method)
		err := a.breaker.Execute(func() error {
			return a.publisher.Publish(ctx, key, event)
		})
		if err != nil {
			a.logger.Warn("publish audit event failed", zap.String("routing_key", key), zap.Error(err))
		}
	}()
}

// Wait 等待进行中的发布完成（优雅关闭时调用）
func (a *Auditor) Wait() {
	a.wg.Wait()
}

// Breaker 发布使用的熔断器
func (a *Auditor) Breaker() *circuitbreaker.CircuitBreaker {
	return a.breaker
}

func auditable(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
