package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xiebiao/catalog/internal/domain/user"
	"github.com/xiebiao/catalog/internal/infrastructure/config"
	"github.com/xiebiao/catalog/pkg/circuitbreaker"
	"github.com/xiebiao/catalog/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type blacklist struct {
	user.NopSessionStore
	revoked map[string]bool
	err     error
}

func (b *blacklist) IsInBlacklist(_ context.Context, token string) (bool, error) {
	return b.revoked[token], b.err
}

func TestRequireAuth(t *testing.T) {
	tokens := jwt.NewManager("secret", time.Hour, "catalog")
	token, err := tokens.GenerateToken(7, "Ana", "ana@example.com")
	require.NoError(t, err)

	store := &blacklist{revoked: map[string]bool{}}
	r := gin.New()
	r.GET("/me", NewAuthMiddleware(tokens, store).RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": GetUserID(c), "email": GetEmail(c), "token": GetToken(c) != "", "claims": GetClaims(c) != nil})
	})

	request := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		return serve(r, req)
	}

	t.Run("missing header", func(t *testing.T) {
		w := request("")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"statusCode":401`)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, request("Basic abc").Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := request("Bearer nope")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})

	t.Run("valid token", func(t *testing.T) {
		w := request("bearer " + token.Value)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":7,"email":"ana@example.com","token":true,"claims":true}`, w.Body.String())
	})

	t.Run("revoked token", func(t *testing.T) {
		store.revoked[token.Value] = true
		defer delete(store.revoked, token.Value)
		assert.Equal(t, http.StatusUnauthorized, request("Bearer "+token.Value).Code)
	})

	t.Run("blacklist outage falls back to signature", func(t *testing.T) {
		store.err = errors.New("redis down")
		defer func() { store.err = nil }()
		assert.Equal(t, http.StatusOK, request("Bearer "+token.Value).Code)
	})
}

func TestBearerToken(t *testing.T) {
	tok, ok := bearerToken("Bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	_, ok = bearerToken("Bearer ")
	assert.False(t, ok)
	_, ok = bearerToken("abc")
	assert.False(t, ok)
}

func TestLogger_RequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(Logger(zap.New(core), time.Second))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	id := w.Header().Get(RequestIDHeader)
	assert.Len(t, id, 36)
	assert.Equal(t, id, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = serve(r, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "abc-123", entries[1].ContextMap()["request_id"])
	assert.Equal(t, int64(200), entries[1].ContextMap()["status"])
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"statusCode":500`)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS(config.CORSConfig{
		AllowOrigins: []string{"http://localhost:5173"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:       time.Hour,
	}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := serve(r, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "3600", w.Header().Get("Access-Control-Max-Age"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestTimeout(t *testing.T) {
	r := gin.New()
	r.Use(Timeout(20 * time.Millisecond))
	r.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})
	r.GET("/fast", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/slow", nil))
	assert.Equal(t, http.StatusRequestTimeout, w.Code)
	assert.Contains(t, w.Body.String(), "Request Timeout")

	w = serve(r, httptest.NewRequest(http.MethodGet, "/fast", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []AuditEvent
	keys   []string
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, key string, message any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.keys = append(p.keys, key)
	p.events = append(p.events, message.(AuditEvent))
	return nil
}

func TestAuditor(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	pub := &fakePublisher{}
	auditor := NewAuditor(pub, time.Second, zap.New(core))

	r := gin.New()
	r.Use(auditor.Handler())
	withUser := func(c *gin.Context) { c.Set(ctxEmail, "ana@example.com") }
	r.POST("/api/books", withUser, func(c *gin.Context) { c.Status(http.StatusCreated) })
	r.DELETE("/api/genres/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/books", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, httptest.NewRequest(http.MethodPost, "/api/books?x=1", nil))
	serve(r, httptest.NewRequest(http.MethodDelete, "/api/genres/3", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/api/books", nil))
	auditor.Wait()

	assert.Equal(t, 1, logs.FilterMessage("[POST] /api/books?x=1 by ana@example.com").Len())
	assert.Equal(t, 1, logs.FilterMessage("[DELETE] /api/genres/3 by anonymous").Len())

	require.Len(t, pub.events, 2)
	assert.ElementsMatch(t, []string{"audit.post", "audit.delete"}, pub.keys)
	for _, ev := range pub.events {
		if ev.Method == http.MethodDelete {
			assert.Equal(t, "/api/genres/:id", ev.Route)
			assert.Equal(t, "anonymous", ev.User)
		}
	}
}

func TestAuditor_BreakerOpensOnPublishFailures(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	auditor := NewAuditor(pub, time.Second, zaptest.NewLogger(t))

	r := gin.New()
	r.Use(auditor.Handler())
	r.PATCH("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 6; i++ {
		w := serve(r, httptest.NewRequest(http.MethodPatch, "/x", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		auditor.Wait()
	}
	assert.Equal(t, circuitbreaker.StateOpen, auditor.Breaker().State())
}

func TestAuditor_WithoutPublisher(t *testing.T) {
	auditor := NewAuditor(nil, 0, zaptest.NewLogger(t))
	r := gin.New()
	r.Use(auditor.Handler())
	r.PUT("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, httptest.NewRequest(http.MethodPut, "/x", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
