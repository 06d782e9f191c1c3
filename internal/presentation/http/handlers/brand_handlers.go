package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/royalacademy/academy-go/internal/application/services"
	"github.com/royalacademy/academy-go/internal/domain/entities/content"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/performance"
)

// BrandHandlers serves the single brand configuration object: GET and PUT
// only, no collection semantics.
type BrandHandlers struct {
	brandService *services.BrandService
	logger       *logging.ChanneledLogger
	perfTracker  *performance.Tracker
}

// NewBrandHandlers creates brand handlers with injected dependencies.
func NewBrandHandlers(brandService *services.BrandService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *BrandHandlers {
	return &BrandHandlers{
		brandService: brandService,
		logger:       logger,
		perfTracker:  perfTracker,
	}
}

// Get handles GET /api/v1/content/brand.
func (h *BrandHandlers) Get(c *gin.Context) {
	marker := h.perfTracker.StartOperation("get_brand_request", content.BucketBrand)
	defer marker.Complete()

	brand, err := h.brandService.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, brand)
}

// Update handles PUT /api/v1/content/brand - full replacement.
func (h *BrandHandlers) Update(c *gin.Context) {
	start := time.Now()
	marker := h.perfTracker.StartOperation("update_brand_request", content.BucketBrand)
	defer marker.Complete()

	var brand content.BrandConfig
	if err := c.ShouldBindJSON(&brand); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	updated, err := h.brandService.Update(c.Request.Context(), brand)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.Content().Info("Brand update completed", "duration", time.Since(start))

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, updated)
}
