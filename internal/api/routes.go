package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler, limiter gin.HandlerFunc) {
	// Health and readiness checks
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)

	// Public intake endpoint, rate limited
	router.POST("/submit", limiter, handler.SubmitLead)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/leads", limiter, handler.SubmitLead) // POST /api/v1/leads
		v1.POST("/classify", handler.Classify)         // POST /api/v1/classify
		v1.GET("/rules", handler.ListRules)            // GET /api/v1/rules
	}
}
