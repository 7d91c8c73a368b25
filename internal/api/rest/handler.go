package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coinfolio/gallery/internal/api/shared/dto"
	"github.com/coinfolio/gallery/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetMetadata returns filter option lists and the collection summary
	// GET /api/v1/metadata?owned=<all|owned>
	GetMetadata(c *gin.Context)

	// GetPeriods returns one country's periods, newest first
	// GET /api/v1/periods?country_id=<id>
	GetPeriods(c *gin.Context)

	// Browse returns the grouped record set for a filter combination
	// GET /api/v1/coins?search=<text>&country_id=<id>&period_id=<id>&owned=<all|owned>&sort=<key>&view=<grid|list|table>
	Browse(c *gin.Context)

	// Layout returns the windowed render plan for a viewport
	// POST /api/v1/layout
	Layout(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

// GetMetadata returns reference metadata and the collection summary
func (h *handler) GetMetadata(c *gin.Context) {
	var params MetadataQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.GetMetadata(c.Request.Context(), parseOwned(params.Owned))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPeriods returns one country's period list
func (h *handler) GetPeriods(c *gin.Context) {
	var params PeriodsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if params.CountryID <= 0 {
		respondBadRequest(c, "country_id is required")
		return
	}

	resp, err := h.executor.GetPeriods(c.Request.Context(), params.CountryID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Browse returns the grouped record set for the requested filters
func (h *handler) Browse(c *gin.Context) {
	filter, view, err := ParseBrowseQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.Browse(c.Request.Context(), filter, view)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Layout returns the windowed render plan for a viewport
func (h *handler) Layout(c *gin.Context) {
	var req dto.LayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if req.Width <= 0 || req.ViewportHeight <= 0 {
		respondBadRequest(c, "width and viewport_height must be positive")
		return
	}

	resp, err := h.executor.Layout(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
