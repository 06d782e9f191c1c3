// Package handlers provides HTTP handlers for the content API.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/royalacademy/academy-go/internal/application/services"
	"github.com/royalacademy/academy-go/internal/domain/collection"
	"github.com/royalacademy/academy-go/internal/domain/entities/content"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/performance"
)

// CollectionHandlers serves the generic CRUD surface of one collection
// domain: list, get, create, update, delete and replace-all.
type CollectionHandlers[T content.Item] struct {
	name        string
	service     *services.CollectionService[T]
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewCollectionHandlers creates handlers for one collection domain. name is
// the short route segment, e.g. "departments".
func NewCollectionHandlers[T content.Item](name string, service *services.CollectionService[T], logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *CollectionHandlers[T] {
	return &CollectionHandlers[T]{
		name:        name,
		service:     service,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// Register wires the domain's routes onto the public and admin groups.
func (h *CollectionHandlers[T]) Register(public, admin *gin.RouterGroup) {
	public.GET("/"+h.name, h.GetAll)
	public.GET("/"+h.name+"/:id", h.GetByID)

	admin.POST("/"+h.name, h.Create)
	admin.PUT("/"+h.name+"/:id", h.Update)
	admin.DELETE("/"+h.name+"/:id", h.Delete)
	admin.POST("/"+h.name+"/replace", h.ReplaceAll)
}

// GetAll returns the whole collection using the cache-first pattern.
func (h *CollectionHandlers[T]) GetAll(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get all request", "collection", h.name, "method", c.Request.Method, "path", c.Request.URL.Path)

	marker := h.perfTracker.StartOperation("get_all_"+h.name+"_request", h.service.BucketKey())
	defer marker.Complete()

	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.Content().Info("Get all request completed", "collection", h.name, "count", len(items), "duration", time.Since(start))

	marker.SetSuccess(true)
	h.logger.Perf().Info("Performance for GetAll request", "collection", h.name, "duration", time.Since(start), "success", true)
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

// GetByID returns one item by id.
func (h *CollectionHandlers[T]) GetByID(c *gin.Context) {
	marker := h.perfTracker.StartOperation("get_"+h.name+"_by_id_request", h.service.BucketKey())
	defer marker.Complete()

	item, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, item)
}

// Create commits a creating draft from the request body and returns the
// stored item with its assigned id.
func (h *CollectionHandlers[T]) Create(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received create request", "collection", h.name, "method", c.Request.Method, "path", c.Request.URL.Path)

	marker := h.perfTracker.StartOperation("create_"+h.name+"_request", h.service.BucketKey())
	defer marker.Complete()

	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), item)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.Content().Info("Create request completed", "collection", h.name, "id", created.ItemID(), "duration", time.Since(start))

	marker.SetSuccess(true)
	h.logger.Perf().Info("Performance for Create request", "collection", h.name, "duration", time.Since(start), "success", true)
	c.JSON(http.StatusCreated, created)
}

// Update commits an editing draft: full replacement of the item at :id.
func (h *CollectionHandlers[T]) Update(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received update request", "collection", h.name, "id", c.Param("id"))

	marker := h.perfTracker.StartOperation("update_"+h.name+"_request", h.service.BucketKey())
	defer marker.Complete()

	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if item.ItemID() != c.Param("id") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body id does not match path id"})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), item)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.Content().Info("Update request completed", "collection", h.name, "id", updated.ItemID(), "duration", time.Since(start))

	marker.SetSuccess(true)
	h.logger.Perf().Info("Performance for Update request", "collection", h.name, "duration", time.Since(start), "success", true)
	c.JSON(http.StatusOK, updated)
}

// Delete removes one item by id. The caller must pass confirm=true; the
// admin UI asks the operator first and the API enforces the same gate.
func (h *CollectionHandlers[T]) Delete(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received delete request", "collection", h.name, "id", c.Param("id"))

	marker := h.perfTracker.StartOperation("delete_"+h.name+"_request", h.service.BucketKey())
	defer marker.Complete()

	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delete requires confirm=true"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	h.logger.Content().Info("Delete request completed", "collection", h.name, "id", c.Param("id"), "duration", time.Since(start))

	marker.SetSuccess(true)
	h.logger.Perf().Info("Performance for Delete request", "collection", h.name, "duration", time.Since(start), "success", true)
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// ReplaceAll persists a full replacement list, the raw save of the store
// contract.
func (h *CollectionHandlers[T]) ReplaceAll(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received replace-all request", "collection", h.name)

	marker := h.perfTracker.StartOperation("replace_all_"+h.name+"_request", h.service.BucketKey())
	defer marker.Complete()

	var items []T
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.ReplaceAll(c.Request.Context(), items); err != nil {
		respondError(c, err)
		return
	}

	h.logger.Content().Info("Replace-all request completed", "collection", h.name, "count", len(items), "duration", time.Since(start))

	marker.SetSuccess(true)
	h.logger.Perf().Info("Performance for ReplaceAll request", "collection", h.name, "duration", time.Since(start), "success", true)
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

// respondError maps service errors onto the API's JSON envelopes. Storage
// failures stay generic; domain refusals carry their reason.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrStillReferenced):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, collection.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case collection.IsValidationError(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
