package repository

import (
	"github.com/garagio/garagio/internal/domain/appointment"
	"github.com/garagio/garagio/internal/domain/contract"
	"github.com/garagio/garagio/internal/domain/customer"
	"github.com/garagio/garagio/internal/domain/invoice"
	"github.com/garagio/garagio/internal/domain/lead"
	"github.com/garagio/garagio/internal/domain/maintenance"
	"github.com/garagio/garagio/internal/domain/payment"
	"github.com/garagio/garagio/internal/domain/property"
	"github.com/garagio/garagio/internal/domain/unit"
	"github.com/garagio/garagio/internal/logger"
	"github.com/garagio/garagio/internal/postgres"
	gormRepo "github.com/garagio/garagio/internal/repository/gorm"
)

func NewPropertyRepository(client postgres.IClient, log *logger.Logger) property.Repository {
	return gormRepo.NewPropertyRepository(client, log)
}

func NewUnitRepository(client postgres.IClient, log *logger.Logger) unit.Repository {
	return gormRepo.NewUnitRepository(client, log)
}

func NewCustomerRepository(client postgres.IClient, log *logger.Logger) customer.Repository {
	return gormRepo.NewCustomerRepository(client, log)
}

func NewContractRepository(client postgres.IClient, log *logger.Logger) contract.Repository {
	return gormRepo.NewContractRepository(client, log)
}

func NewInvoiceRepository(client postgres.IClient, log *logger.Logger) invoice.Repository {
	return gormRepo.NewInvoiceRepository(client, log)
}

func NewPaymentRepository(client postgres.IClient, log *logger.Logger) payment.Repository {
	return gormRepo.NewPaymentRepository(client, log)
}

func NewMaintenanceRepository(client postgres.IClient, log *logger.Logger) maintenance.Repository {
	return gormRepo.NewMaintenanceRepository(client, log)
}

func NewAppointmentRepository(client postgres.IClient, log *logger.Logger) appointment.Repository {
	return gormRepo.NewAppointmentRepository(client, log)
}

func NewLeadRepository(client postgres.IClient, log *logger.Logger) lead.Repository {
	return gormRepo.NewLeadRepository(client, log)
}
