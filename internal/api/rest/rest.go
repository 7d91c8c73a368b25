package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Reference metadata and collection summary
		v1.GET("/metadata", handler.GetMetadata)

		// Per-country period lists
		v1.GET("/periods", handler.GetPeriods)

		// Grouped browse results (explore sample or exhaustive filtered fetch)
		v1.GET("/coins", handler.Browse)

		// Windowed render plan for a viewport
		v1.POST("/layout", handler.Layout)
	}
}
