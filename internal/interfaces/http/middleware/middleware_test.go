package middleware

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/travelease/callcenter/internal/shared/constants"
	"github.com/travelease/callcenter/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allowed, s.err
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		limiter := &stubLimiter{allowed: true}
		r := newEngine(RateLimit(limiter, "visa", logger.NewNopLogger()))

		w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"visa:192.0.2.1"}, limiter.keys)
	})

	t.Run("rejected", func(t *testing.T) {
		r := newEngine(RateLimit(&stubLimiter{allowed: false}, "visa", logger.NewNopLogger()))

		w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.JSONEq(t, `{"error":"Too many requests, please try again later"}`, w.Body.String())
	})

	t.Run("limiter failure lets the request through", func(t *testing.T) {
		r := newEngine(RateLimit(&stubLimiter{err: stderrors.New("redis down")}, "visa", logger.NewNopLogger()))

		w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID(), CustomLogger(logger.NewNopLogger()))

	w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, w.Header().Get(constants.HeaderXRequestID), 36)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(constants.HeaderXRequestID, "abc-123")
	w = serve(r, req)
	assert.Equal(t, "abc-123", w.Header().Get(constants.HeaderXRequestID))
}

func TestRecovery(t *testing.T) {
	r := newEngine(Recovery(logger.NewNopLogger()))

	w := serve(r, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Server error"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	t.Run("wildcard", func(t *testing.T) {
		r := newEngine(CORS([]string{"*"}))
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://dashboard.local")

		w := serve(r, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("listed origin", func(t *testing.T) {
		r := newEngine(CORS([]string{"http://dashboard.local"}))
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://dashboard.local")

		w := serve(r, req)

		assert.Equal(t, "http://dashboard.local", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted origin", func(t *testing.T) {
		r := newEngine(CORS([]string{"http://dashboard.local"}))
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://evil.example")

		w := serve(r, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		r := newEngine(CORS([]string{"*"}))
		r.OPTIONS("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := serve(r, httptest.NewRequest(http.MethodOptions, "/ping", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
