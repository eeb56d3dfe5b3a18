package v1

import (
	"net/http"

	"github.com/garagio/garagio/internal/api/dto"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/logger"
	"github.com/garagio/garagio/internal/service"
	"github.com/garagio/garagio/internal/types"
	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	service         service.CustomerService
	contractService service.ContractService
	invoiceService  service.InvoiceService
	log             *logger.Logger
}

func NewCustomerHandler(
	service service.CustomerService,
	contractService service.ContractService,
	invoiceService service.InvoiceService,
	log *logger.Logger,
) *CustomerHandler {
	return &CustomerHandler{
		service:         service,
		contractService: contractService,
		invoiceService:  invoiceService,
		log:             log,
	}
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	resp, err := h.service.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	var filter types.QueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListCustomers(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateCustomer(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.service.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "customer deleted successfully"})
}

func (h *CustomerHandler) ListCustomerContracts(c *gin.Context) {
	resp, err := h.contractService.ListContractsByCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CustomerHandler) ListCustomerInvoices(c *gin.Context) {
	resp, err := h.invoiceService.ListInvoicesByCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
