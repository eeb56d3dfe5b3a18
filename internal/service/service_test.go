package service

import (
	"github.com/garagio/garagio/internal/testutil"
)

// newTestServiceParams wires the in-memory stores and fakes into the
// common service dependency set
func newTestServiceParams(s *testutil.BaseServiceTestSuite) ServiceParams {
	stores := s.GetStores()
	return ServiceParams{
		Logger:          s.GetLogger(),
		Config:          s.GetConfig(),
		DB:              s.GetDB(),
		PropertyRepo:    stores.PropertyRepo,
		UnitRepo:        stores.UnitRepo,
		CustomerRepo:    stores.CustomerRepo,
		ContractRepo:    stores.ContractRepo,
		InvoiceRepo:     stores.InvoiceRepo,
		PaymentRepo:     stores.PaymentRepo,
		MaintenanceRepo: stores.MaintenanceRepo,
		AppointmentRepo: stores.AppointmentRepo,
		LeadRepo:        stores.LeadRepo,
		EmailSender:     s.GetEmailSender(),
		Gateway:         s.GetGateway(),
		InvoicingMirror: s.GetInvoicingMirror(),
	}
}
