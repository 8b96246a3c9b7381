package handlers

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/crestview/estates-api/internal/errors"
	"github.com/crestview/estates-api/internal/pagination"
	"github.com/crestview/estates-api/internal/services"
)

const subscriptionPageSize = 25

// SubscriptionHandler handles email subscription HTTP requests.
type SubscriptionHandler struct {
	service services.SubscriptionService
}

// NewSubscriptionHandler creates a new SubscriptionHandler instance.
func NewSubscriptionHandler(service services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{service: service}
}

// SubscriptionRequest is the public newsletter signup payload.
type SubscriptionRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Subscribe handles POST /email-subscription. Resubscribing an already
// subscribed address is reported as a success.
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	var req SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.ValidationFailed(c, err)
		return
	}

	message, err := h.service.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondMessage(c, nil, message)
}

// List handles GET /admin/subscriptions.
func (h *SubscriptionHandler) List(c *gin.Context) {
	params := pagination.Parse(c.Query("page"), c.Query("limit"), subscriptionPageSize)

	subs, page, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	respondList(c, subs, page)
}
