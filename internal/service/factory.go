package service

import (
	"github.com/garagio/garagio/internal/config"
	"github.com/garagio/garagio/internal/domain/appointment"
	"github.com/garagio/garagio/internal/domain/contract"
	"github.com/garagio/garagio/internal/domain/customer"
	"github.com/garagio/garagio/internal/domain/invoice"
	"github.com/garagio/garagio/internal/domain/lead"
	"github.com/garagio/garagio/internal/domain/maintenance"
	"github.com/garagio/garagio/internal/domain/payment"
	"github.com/garagio/garagio/internal/domain/property"
	"github.com/garagio/garagio/internal/domain/unit"
	"github.com/garagio/garagio/internal/email"
	"github.com/garagio/garagio/internal/integration/invoicing"
	"github.com/garagio/garagio/internal/integration/stripe"
	"github.com/garagio/garagio/internal/logger"
	"github.com/garagio/garagio/internal/postgres"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient

	// Repositories
	PropertyRepo    property.Repository
	UnitRepo        unit.Repository
	CustomerRepo    customer.Repository
	ContractRepo    contract.Repository
	InvoiceRepo     invoice.Repository
	PaymentRepo     payment.Repository
	MaintenanceRepo maintenance.Repository
	AppointmentRepo appointment.Repository
	LeadRepo        lead.Repository

	// Integrations
	EmailSender     email.Sender
	Gateway         stripe.Gateway
	InvoicingMirror invoicing.Mirror
}

func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db postgres.IClient,
	propertyRepo property.Repository,
	unitRepo unit.Repository,
	customerRepo customer.Repository,
	contractRepo contract.Repository,
	invoiceRepo invoice.Repository,
	paymentRepo payment.Repository,
	maintenanceRepo maintenance.Repository,
	appointmentRepo appointment.Repository,
	leadRepo lead.Repository,
	emailSender email.Sender,
	gateway stripe.Gateway,
	invoicingMirror invoicing.Mirror,
) ServiceParams {
	return ServiceParams{
		Logger:          logger,
		Config:          config,
		DB:              db,
		PropertyRepo:    propertyRepo,
		UnitRepo:        unitRepo,
		CustomerRepo:    customerRepo,
		ContractRepo:    contractRepo,
		InvoiceRepo:     invoiceRepo,
		PaymentRepo:     paymentRepo,
		MaintenanceRepo: maintenanceRepo,
		AppointmentRepo: appointmentRepo,
		LeadRepo:        leadRepo,
		EmailSender:     emailSender,
		Gateway:         gateway,
		InvoicingMirror: invoicingMirror,
	}
}
