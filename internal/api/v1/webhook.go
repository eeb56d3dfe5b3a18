package v1

import (
	"io"
	"net/http"

	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/logger"
	"github.com/garagio/garagio/internal/service"
	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	service service.SettlementService
	log     *logger.Logger
}

func NewWebhookHandler(service service.SettlementService, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		service: service,
		log:     log,
	}
}

// HandleStripeWebhook receives gateway events. The raw body is handed to
// the settlement service untouched: signature verification needs the exact
// bytes Stripe signed.
func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Unable to read webhook payload").
			Mark(ierr.ErrValidation))
		return
	}

	signature := c.GetHeader("Stripe-Signature")

	if err := h.service.HandleWebhook(c.Request.Context(), payload, signature); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
