package main

import (
	"context"
	"net/http"
	"time"

	"github.com/garagio/garagio/internal/api"
	v1 "github.com/garagio/garagio/internal/api/v1"
	"github.com/garagio/garagio/internal/config"
	"github.com/garagio/garagio/internal/email"
	"github.com/garagio/garagio/internal/integration/invoicing"
	"github.com/garagio/garagio/internal/integration/stripe"
	"github.com/garagio/garagio/internal/logger"
	"github.com/garagio/garagio/internal/postgres"
	"github.com/garagio/garagio/internal/repository"
	"github.com/garagio/garagio/internal/service"
	"github.com/garagio/garagio/internal/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Postgres
			postgres.NewDB,
			postgres.NewClient,

			// Repositories
			repository.NewPropertyRepository,
			repository.NewUnitRepository,
			repository.NewCustomerRepository,
			repository.NewContractRepository,
			repository.NewInvoiceRepository,
			repository.NewPaymentRepository,
			repository.NewMaintenanceRepository,
			repository.NewAppointmentRepository,
			repository.NewLeadRepository,

			// Integrations
			email.NewClient,
			email.NewSender,
			provideGateway,
			invoicing.NewClient,

			// Services
			service.NewServiceParams,
			service.NewPropertyService,
			service.NewUnitService,
			service.NewCustomerService,
			service.NewContractService,
			service.NewInvoiceService,
			service.NewPaymentService,
			service.NewSettlementService,
			service.NewMaintenanceService,
			service.NewAppointmentService,
			service.NewLeadService,

			// API
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)

	app.Run()
}

func provideGateway(cfg *config.Configuration, log *logger.Logger) stripe.Gateway {
	return stripe.NewClient(cfg, log)
}

func provideHandlers(
	log *logger.Logger,
	propertyService service.PropertyService,
	unitService service.UnitService,
	customerService service.CustomerService,
	contractService service.ContractService,
	invoiceService service.InvoiceService,
	paymentService service.PaymentService,
	settlementService service.SettlementService,
	maintenanceService service.MaintenanceService,
	appointmentService service.AppointmentService,
	leadService service.LeadService,
) api.Handlers {
	return api.Handlers{
		Property:    v1.NewPropertyHandler(propertyService, unitService, log),
		Unit:        v1.NewUnitHandler(unitService, log),
		Customer:    v1.NewCustomerHandler(customerService, contractService, invoiceService, log),
		Contract:    v1.NewContractHandler(contractService, log),
		Invoice:     v1.NewInvoiceHandler(invoiceService, paymentService, settlementService, log),
		Payment:     v1.NewPaymentHandler(paymentService, log),
		Maintenance: v1.NewMaintenanceHandler(maintenanceService, log),
		Appointment: v1.NewAppointmentHandler(appointmentService, log),
		Lead:        v1.NewLeadHandler(leadService, log),
		Webhook:     v1.NewWebhookHandler(settlementService, log),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, log *logger.Logger) *gin.Engine {
	return api.NewRouter(handlers, cfg, log)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting API server", "address", cfg.Server.Address)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return srv.Shutdown(ctx)
		},
	})
}
