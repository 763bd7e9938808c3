package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/expense_tracker/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/api/health": true,
}

// PosthogMiddleware tracks successful API calls with PostHog. There are no
// user accounts, so the distinct id is a keyed hash of the client IP.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		// "/api/expenses/:id" -> "PUT api_expenses_:id"
		route := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if route == "" {
			return
		}
		eventName := c.Request.Method + " " + route

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if requestID, ok := GetRequestIDFromCtx(c.Request.Context()); ok {
			props["request_id"] = requestID
		}

		posthogClient.Enqueue(posthogClient.DistinctID(c.ClientIP()), eventName, props)
	}
}
