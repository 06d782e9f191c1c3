package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/royalacademy/academy-go/internal/application/services"
	"github.com/royalacademy/academy-go/internal/domain/collection"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
	"github.com/royalacademy/academy-go/internal/infrastructure/observability/performance"
)

// ContactHandlers forwards contact-form submissions to the school office.
type ContactHandlers struct {
	contactService *services.ContactService
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewContactHandlers creates contact handlers with injected dependencies.
func NewContactHandlers(contactService *services.ContactService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ContactHandlers {
	return &ContactHandlers{
		contactService: contactService,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// Send handles POST /api/v1/contact. Enquiries are forwarded by email and
// never persisted.
func (h *ContactHandlers) Send(c *gin.Context) {
	start := time.Now()
	marker := h.perfTracker.StartOperation("contact_enquiry_request", "contact")
	defer marker.Complete()

	var enquiry services.Enquiry
	if err := c.ShouldBindJSON(&enquiry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.contactService.Send(enquiry); err != nil {
		if collection.IsValidationError(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.logger.Email().Error("Contact enquiry failed", "error", err.Error())
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to send enquiry"})
		return
	}

	h.logger.Email().Info("Contact enquiry forwarded", "duration", time.Since(start))

	marker.SetSuccess(true)
	c.JSON(http.StatusAccepted, gin.H{"sent": true})
}
