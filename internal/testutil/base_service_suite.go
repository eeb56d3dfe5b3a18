package testutil

import (
	"context"
	"time"

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
	"github.com/garagio/garagio/internal/logger"
	"github.com/garagio/garagio/internal/postgres"
	"github.com/garagio/garagio/internal/types"
	"github.com/garagio/garagio/internal/validator"
	"github.com/stretchr/testify/suite"
)

// TestWebhookSecret signs and verifies gateway webhook payloads in tests
const TestWebhookSecret = "whsec_test_secret"

// Stores holds all the repository interfaces for testing
type Stores struct {
	PropertyRepo    property.Repository
	UnitRepo        unit.Repository
	CustomerRepo    customer.Repository
	ContractRepo    contract.Repository
	InvoiceRepo     invoice.Repository
	PaymentRepo     payment.Repository
	MaintenanceRepo maintenance.Repository
	AppointmentRepo appointment.Repository
	LeadRepo        lead.Repository
}

// BaseServiceTestSuite provides common functionality for all service test
// suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	db     postgres.IClient
	logger *logger.Logger
	config *config.Configuration
	now    time.Time

	gateway     *FakeGateway
	emailSender *RecordingEmailSender
	mirror      *FakeInvoicingMirror
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := config.GetDefaultConfig()
	cfg.Stripe.WebhookSecret = TestWebhookSecret
	s.config = cfg

	var err error
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = context.Background()
	s.ctx = context.WithValue(s.ctx, types.CtxTenantID, types.DefaultTenantID)
	s.ctx = context.WithValue(s.ctx, types.CtxUserID, types.DefaultUserID)
	s.ctx = context.WithValue(s.ctx, types.CtxRequestID, types.GenerateUUID())
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		PropertyRepo:    NewInMemoryPropertyStore(),
		UnitRepo:        NewInMemoryUnitStore(),
		CustomerRepo:    NewInMemoryCustomerStore(),
		ContractRepo:    NewInMemoryContractStore(),
		InvoiceRepo:     NewInMemoryInvoiceStore(),
		PaymentRepo:     NewInMemoryPaymentStore(),
		MaintenanceRepo: NewInMemoryMaintenanceStore(),
		AppointmentRepo: NewInMemoryAppointmentStore(),
		LeadRepo:        NewInMemoryLeadStore(),
	}

	s.db = NewMockPostgresClient(s.logger)
	s.gateway = NewFakeGateway(TestWebhookSecret)
	s.emailSender = NewRecordingEmailSender()
	s.mirror = NewFakeInvoicingMirror()
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.PropertyRepo.(*InMemoryPropertyStore).Clear()
	s.stores.UnitRepo.(*InMemoryUnitStore).Clear()
	s.stores.CustomerRepo.(*InMemoryCustomerStore).Clear()
	s.stores.ContractRepo.(*InMemoryContractStore).Clear()
	s.stores.InvoiceRepo.(*InMemoryInvoiceStore).Clear()
	s.stores.PaymentRepo.(*InMemoryPaymentStore).Clear()
	s.stores.MaintenanceRepo.(*InMemoryMaintenanceStore).Clear()
	s.stores.AppointmentRepo.(*InMemoryAppointmentStore).Clear()
	s.stores.LeadRepo.(*InMemoryLeadStore).Clear()
	s.gateway.Clear()
	s.emailSender.Clear()
	s.mirror.Clear()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetStores returns the in-memory repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetDB returns the mock database client
func (s *BaseServiceTestSuite) GetDB() postgres.IClient {
	return s.db
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetNow returns the current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}

// GetGateway returns the fake payment gateway
func (s *BaseServiceTestSuite) GetGateway() *FakeGateway {
	return s.gateway
}

// GetEmailSender returns the recording email sender
func (s *BaseServiceTestSuite) GetEmailSender() *RecordingEmailSender {
	return s.emailSender
}

// GetInvoicingMirror returns the fake invoicing mirror
func (s *BaseServiceTestSuite) GetInvoicingMirror() *FakeInvoicingMirror {
	return s.mirror
}
