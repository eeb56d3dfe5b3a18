package api

import (
	v1 "github.com/garagio/garagio/internal/api/v1"
	"github.com/garagio/garagio/internal/config"
	"github.com/garagio/garagio/internal/logger"
	"github.com/garagio/garagio/internal/rest/middleware"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Property    *v1.PropertyHandler
	Unit        *v1.UnitHandler
	Customer    *v1.CustomerHandler
	Contract    *v1.ContractHandler
	Invoice     *v1.InvoiceHandler
	Payment     *v1.PaymentHandler
	Maintenance *v1.MaintenanceHandler
	Appointment *v1.AppointmentHandler
	Lead        *v1.LeadHandler
	Webhook     *v1.WebhookHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Gateway webhooks authenticate via payload signature, not a bearer
	// token
	webhooks := router.Group("/webhooks")
	{
		webhooks.POST("/stripe", handlers.Webhook.HandleStripeWebhook)
	}

	// Public enquiry form
	public := router.Group("/v1", middleware.GuestAuthenticateMiddleware)
	{
		public.POST("/leads", handlers.Lead.CreateLead)
	}

	private := router.Group("/v1", middleware.AuthenticateMiddleware(cfg, log), middleware.RequireStaff())
	registerStaffRoutes(private, handlers)

	return router
}

func registerStaffRoutes(router *gin.RouterGroup, handlers Handlers) {
	properties := router.Group("/properties")
	{
		properties.POST("", handlers.Property.CreateProperty)
		properties.GET("", handlers.Property.ListProperties)
		properties.GET("/:id", handlers.Property.GetProperty)
		properties.PUT("/:id", handlers.Property.UpdateProperty)
		properties.DELETE("/:id", handlers.Property.DeleteProperty)
		properties.GET("/:id/units", handlers.Property.ListPropertyUnits)
	}

	units := router.Group("/units")
	{
		units.POST("", handlers.Unit.CreateUnit)
		units.GET("", handlers.Unit.ListUnits)
		units.GET("/:id", handlers.Unit.GetUnit)
		units.PUT("/:id", handlers.Unit.UpdateUnit)
		units.DELETE("/:id", handlers.Unit.DeleteUnit)
	}

	customers := router.Group("/customers")
	{
		customers.POST("", handlers.Customer.CreateCustomer)
		customers.GET("", handlers.Customer.ListCustomers)
		customers.GET("/:id", handlers.Customer.GetCustomer)
		customers.PUT("/:id", handlers.Customer.UpdateCustomer)
		customers.DELETE("/:id", handlers.Customer.DeleteCustomer)
		customers.GET("/:id/contracts", handlers.Customer.ListCustomerContracts)
		customers.GET("/:id/invoices", handlers.Customer.ListCustomerInvoices)
	}

	contracts := router.Group("/contracts")
	{
		contracts.POST("", handlers.Contract.CreateContract)
		contracts.GET("", handlers.Contract.ListContracts)
		contracts.GET("/:id", handlers.Contract.GetContract)
		contracts.POST("/:id/status", handlers.Contract.UpdateContractStatus)
		contracts.DELETE("/:id", handlers.Contract.DeleteContract)
	}

	invoices := router.Group("/invoices")
	{
		invoices.POST("", handlers.Invoice.CreateInvoice)
		invoices.GET("", handlers.Invoice.ListInvoices)
		invoices.GET("/:id", handlers.Invoice.GetInvoice)
		invoices.POST("/:id/status", handlers.Invoice.UpdateInvoiceStatus)
		invoices.GET("/:id/payments", handlers.Invoice.ListInvoicePayments)
		invoices.POST("/:id/checkout", handlers.Invoice.CreateCheckoutSession)
	}

	// Scheduler-triggered jobs, one call per tenant
	cron := router.Group("/cron")
	{
		cron.POST("/invoices/overdue", handlers.Invoice.MarkOverdue)
	}

	payments := router.Group("/payments")
	{
		payments.POST("", handlers.Payment.RecordPayment)
		payments.GET("", handlers.Payment.ListPayments)
		payments.GET("/:id", handlers.Payment.GetPayment)
	}

	maintenance := router.Group("/maintenance-requests")
	{
		maintenance.POST("", handlers.Maintenance.CreateMaintenanceRequest)
		maintenance.GET("", handlers.Maintenance.ListMaintenanceRequests)
		maintenance.GET("/:id", handlers.Maintenance.GetMaintenanceRequest)
		maintenance.PUT("/:id", handlers.Maintenance.UpdateMaintenanceRequest)
		maintenance.DELETE("/:id", handlers.Maintenance.DeleteMaintenanceRequest)
	}

	appointments := router.Group("/appointments")
	{
		appointments.POST("", handlers.Appointment.CreateAppointment)
		appointments.GET("", handlers.Appointment.ListAppointments)
		appointments.GET("/:id", handlers.Appointment.GetAppointment)
		appointments.PUT("/:id", handlers.Appointment.UpdateAppointment)
		appointments.DELETE("/:id", handlers.Appointment.DeleteAppointment)
	}

	leads := router.Group("/leads")
	{
		leads.GET("", handlers.Lead.ListLeads)
		leads.GET("/:id", handlers.Lead.GetLead)
		leads.POST("/:id/status", handlers.Lead.UpdateLeadStatus)
	}
}
