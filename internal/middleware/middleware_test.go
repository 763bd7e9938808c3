package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/expense_tracker/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/posthog/posthog-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStructuredLoggingMiddlewareSetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(slog.Default()))

	var seenID string
	var seenLogger *slog.Logger
	r.GET("/ping", func(c *gin.Context) {
		seenID, _ = GetRequestIDFromCtx(c.Request.Context())
		seenLogger = GetLoggerFromCtx(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	header := w.Header().Get("X-Request-ID")
	_, err := uuid.Parse(header)
	require.NoError(t, err)
	assert.Equal(t, header, seenID)
	assert.NotSame(t, slog.Default(), seenLogger)
}

func TestStructuredLoggingMiddlewareKeepsIncomingID(t *testing.T) {
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(slog.Default()))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", id)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, id, w.Header().Get("X-Request-ID"))
}

func TestGetLoggerFromCtxFallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), GetLoggerFromCtx(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}

func TestRateLimitRejectsAfterLimit(t *testing.T) {
	lim, err := NewRateLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.Use(RateLimit(lim))
	r.POST("/w", func(c *gin.Context) { c.Status(http.StatusCreated) })

	codes := make([]int, 0, 3)
	for range 3 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/w", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)
}

func TestNewRateLimiterRejectsBadFormat(t *testing.T) {
	_, err := NewRateLimiter("lots")
	assert.Error(t, err)
}

type capturingPosthog struct {
	posthog.Client
	events []posthog.Capture
}

func (c *capturingPosthog) Enqueue(msg posthog.Message) error {
	if capture, ok := msg.(posthog.Capture); ok {
		c.events = append(c.events, capture)
	}
	return nil
}

func TestPosthogMiddlewareCapturesSuccessfulCalls(t *testing.T) {
	fake := &capturingPosthog{}
	client := utils.NewPosthogClientWrapper(fake, slog.Default())

	r := gin.New()
	r.Use(PosthogMiddleware(client))
	r.GET("/api/expenses/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.DELETE("/api/expenses/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/expenses/abc", nil),
		httptest.NewRequest(http.MethodGet, "/api/health", nil),
		httptest.NewRequest(http.MethodDelete, "/api/expenses/abc", nil),
	} {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	require.Len(t, fake.events, 1)
	assert.Equal(t, "GET api_expenses_:id", fake.events[0].Event)
	assert.Equal(t, "/api/expenses/abc", fake.events[0].Properties["path"])
}

func TestPosthogMiddlewareHashesClientIP(t *testing.T) {
	fake := &capturingPosthog{}
	client := utils.NewPosthogClientWrapper(fake, slog.Default())

	r := gin.New()
	r.Use(PosthogMiddleware(client))
	r.GET("/api/expenses", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, ip := range []string{"203.0.113.7:1234", "203.0.113.7:5678", "198.51.100.1:1234"} {
		req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
		req.RemoteAddr = ip
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	require.Len(t, fake.events, 3)
	first := fake.events[0].DistinctId
	assert.Len(t, first, 32)
	assert.NotContains(t, first, "203.0.113.7")
	assert.Equal(t, first, fake.events[1].DistinctId, "same client keeps one id")
	assert.NotEqual(t, first, fake.events[2].DistinctId)
	assert.Equal(t, client.DistinctID("203.0.113.7"), first)
}

func TestPosthogMiddlewareWithoutClient(t *testing.T) {
	r := gin.New()
	r.Use(PosthogMiddleware(nil))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
