package v1

import (
	"net/http"
	"time"

	"github.com/garagio/garagio/internal/api/dto"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/logger"
	"github.com/garagio/garagio/internal/service"
	"github.com/garagio/garagio/internal/types"
	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	service           service.InvoiceService
	paymentService    service.PaymentService
	settlementService service.SettlementService
	log               *logger.Logger
}

func NewInvoiceHandler(
	service service.InvoiceService,
	paymentService service.PaymentService,
	settlementService service.SettlementService,
	log *logger.Logger,
) *InvoiceHandler {
	return &InvoiceHandler{
		service:           service,
		paymentService:    paymentService,
		settlementService: settlementService,
		log:               log,
	}
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	resp, err := h.service.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	var filter types.QueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListInvoices(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	var req dto.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateInvoiceStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *InvoiceHandler) ListInvoicePayments(c *gin.Context) {
	resp, err := h.paymentService.ListPaymentsByInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MarkOverdue flips sent invoices past their due date to overdue. Called
// by the scheduler, once per tenant.
func (h *InvoiceHandler) MarkOverdue(c *gin.Context) {
	changed, err := h.service.MarkOverdueInvoices(c.Request.Context(), time.Now().UTC())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": changed})
}

func (h *InvoiceHandler) CreateCheckoutSession(c *gin.Context) {
	// The body is optional, the URLs fall back to configured defaults
	var req dto.CreateCheckoutSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(ierr.WithError(err).
				WithHint("Invalid request format").
				Mark(ierr.ErrValidation))
			return
		}
	}

	resp, err := h.settlementService.CreateCheckoutSession(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
