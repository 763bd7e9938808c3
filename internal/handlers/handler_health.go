package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

func registerHealthRoutes(rg *gin.RouterGroup, healthService portssvc.HealthSvc) {
	rg.GET("/health", getHealth(healthService))
}

// getHealth godoc
// @Summary Service health
// @Description Reports whether the database answers a ping.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.ErrorResponse "Database connection error"
// @Router /health [get]
func getHealth(healthService portssvc.HealthSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := healthService.CheckHealth(c.Request.Context()); err != nil {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "Database connection error"})
			return
		}
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy", Database: "connected"})
	}
}
