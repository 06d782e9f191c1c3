package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/royalacademy/academy-go/internal/application/services"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/performance"
)

// DomainHandlers carries the few domain-specific reads that sit beside the
// generic collection surface: published events, gallery by category, books
// by year.
type DomainHandlers struct {
	events      *services.EventsService
	gallery     *services.GalleryService
	yearbooks   *services.YearbookService
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewDomainHandlers creates the domain-specific read handlers.
func NewDomainHandlers(events *services.EventsService, gallery *services.GalleryService, yearbooks *services.YearbookService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *DomainHandlers {
	return &DomainHandlers{
		events:      events,
		gallery:     gallery,
		yearbooks:   yearbooks,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// GetPublishedEvents handles GET /api/v1/content/events/published.
func (h *DomainHandlers) GetPublishedEvents(c *gin.Context) {
	marker := h.perfTracker.StartOperation("get_published_events_request", h.events.Events.BucketKey())
	defer marker.Complete()

	events, err := h.events.GetPublished(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{
		"items": events,
		"count": len(events),
	})
}

// GetGalleryByCategory handles GET /api/v1/content/gallery/by-category/:name.
func (h *DomainHandlers) GetGalleryByCategory(c *gin.Context) {
	marker := h.perfTracker.StartOperation("get_gallery_by_category_request", h.gallery.Images.BucketKey())
	defer marker.Complete()

	images, err := h.gallery.GetByCategory(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{
		"items": images,
		"count": len(images),
	})
}

// GetBooksByYear handles GET /api/v1/content/yearly-books/by-year/:year.
func (h *DomainHandlers) GetBooksByYear(c *gin.Context) {
	marker := h.perfTracker.StartOperation("get_books_by_year_request", h.yearbooks.Books.BucketKey())
	defer marker.Complete()

	books, err := h.yearbooks.GetByYear(c.Request.Context(), c.Param("year"))
	if err != nil {
		respondError(c, err)
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{
		"items": books,
		"count": len(books),
	})
}
