package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/garagio/garagio/internal/api/dto"
	ierr "github.com/garagio/garagio/internal/errors"
	"github.com/garagio/garagio/internal/testutil"
	"github.com/garagio/garagio/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SettlementServiceSuite struct {
	testutil.BaseServiceTestSuite
	service         SettlementService
	invoiceService  InvoiceService
	paymentService  PaymentService
	customerService CustomerService
	customerID      string
}

func TestSettlementService(t *testing.T) {
	suite.Run(t, new(SettlementServiceSuite))
}

func (s *SettlementServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.service = NewSettlementService(params)
	s.invoiceService = NewInvoiceService(params)
	s.paymentService = NewPaymentService(params)
	s.customerService = NewCustomerService(params)

	cust, err := s.customerService.CreateCustomer(s.GetContext(), dto.CreateCustomerRequest{
		Name:  "Jonas Keller",
		Email: "jonas.keller@example.com",
	})
	s.Require().NoError(err)
	s.customerID = cust.ID
}

func (s *SettlementServiceSuite) createInvoice(amount string) string {
	resp, err := s.invoiceService.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{
		CustomerID: s.customerID,
		Amount:     decimal.RequireFromString(amount),
		DueDate:    time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
	return resp.ID
}

// signWebhookPayload produces a Stripe-Signature header value for payload
// using the v1 scheme the verifier expects.
func signWebhookPayload(payload []byte, secret string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func (s *SettlementServiceSuite) checkoutCompletedPayload(invoiceID, sessionID, paymentIntentID string, amountCents int64, created time.Time) []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_test_1",
		"type": "checkout.session.completed",
		"created": %d,
		"data": {
			"object": {
				"id": %q,
				"object": "checkout.session",
				"amount_total": %d,
				"payment_intent": %q,
				"metadata": {
					"garagio_invoice_id": %q,
					"garagio_tenant_id": %q
				}
			}
		}
	}`, created.Unix(), sessionID, amountCents, paymentIntentID, invoiceID, types.DefaultTenantID))
}

func (s *SettlementServiceSuite) TestCreateCheckoutSession() {
	invoiceID := s.createInvoice("85.00")

	resp, err := s.service.CreateCheckoutSession(s.GetContext(), invoiceID, dto.CreateCheckoutSessionRequest{
		SuccessURL: "https://garagio.example.com/paid",
	})
	s.NoError(err)
	s.NotEmpty(resp.SessionID)
	s.NotEmpty(resp.URL)

	inv, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), invoiceID)
	s.NoError(err)
	s.Require().NotNil(inv.CheckoutSessionID)
	s.Equal(resp.SessionID, *inv.CheckoutSessionID)

	req := s.GetGateway().LastSession()
	s.Require().NotNil(req)
	s.Equal(invoiceID, req.InvoiceID)
	s.Equal(types.DefaultTenantID, req.TenantID)
	s.Equal("jonas.keller@example.com", req.CustomerEmail)
	s.Equal("eur", req.Currency)
	s.True(req.Amount.Equal(decimal.RequireFromString("85.00")))
}

func (s *SettlementServiceSuite) TestCreateCheckoutSessionRejectedForPaidInvoice() {
	invoiceID := s.createInvoice("85.00")

	_, err := s.invoiceService.UpdateInvoiceStatus(s.GetContext(), invoiceID, dto.UpdateInvoiceStatusRequest{
		Status: types.InvoiceStatusPaid,
	})
	s.NoError(err)

	_, err = s.service.CreateCheckoutSession(s.GetContext(), invoiceID, dto.CreateCheckoutSessionRequest{})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *SettlementServiceSuite) TestWebhookSettlesInvoice() {
	invoiceID := s.createInvoice("85.00")

	now := time.Now()
	payload := s.checkoutCompletedPayload(invoiceID, "cs_test_settle", "pi_123", 8500, now)
	signature := signWebhookPayload(payload, testutil.TestWebhookSecret, now)

	// The webhook arrives on an unauthenticated request. Tenant scoping
	// must come from the signed session metadata.
	err := s.service.HandleWebhook(context.Background(), payload, signature)
	s.NoError(err)

	inv, err := s.invoiceService.GetInvoice(s.GetContext(), invoiceID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusPaid, inv.InvoiceStatus)
	s.Require().NotNil(inv.PaidAt)
	s.Equal(now.Unix(), inv.PaidAt.Unix())

	payments, err := s.paymentService.ListPaymentsByInvoice(s.GetContext(), invoiceID)
	s.NoError(err)
	s.Require().Len(payments.Items, 1)
	entry := payments.Items[0]
	s.Equal(types.PaymentMethodGateway, entry.Method)
	s.Require().NotNil(entry.ReferenceNumber)
	s.Equal("pi_123", *entry.ReferenceNumber)
	s.True(entry.Amount.Equal(decimal.RequireFromString("85.00")))
}

func (s *SettlementServiceSuite) TestWebhookReplayIsNoOp() {
	invoiceID := s.createInvoice("85.00")

	now := time.Now()
	payload := s.checkoutCompletedPayload(invoiceID, "cs_test_replay", "pi_456", 8500, now)
	signature := signWebhookPayload(payload, testutil.TestWebhookSecret, now)

	s.NoError(s.service.HandleWebhook(context.Background(), payload, signature))
	s.NoError(s.service.HandleWebhook(context.Background(), payload, signature))

	payments, err := s.paymentService.ListPaymentsByInvoice(s.GetContext(), invoiceID)
	s.NoError(err)
	s.Len(payments.Items, 1)

	inv, err := s.invoiceService.GetInvoice(s.GetContext(), invoiceID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusPaid, inv.InvoiceStatus)
}

func (s *SettlementServiceSuite) TestWebhookRejectsBadSignature() {
	invoiceID := s.createInvoice("85.00")

	now := time.Now()
	payload := s.checkoutCompletedPayload(invoiceID, "cs_test_tamper", "pi_789", 8500, now)
	signature := signWebhookPayload(payload, testutil.TestWebhookSecret, now)

	tampered := []byte(string(payload) + " ")
	err := s.service.HandleWebhook(context.Background(), tampered, signature)
	s.Error(err)
	s.True(ierr.IsSignature(err))

	err = s.service.HandleWebhook(context.Background(), payload, "t=0,v1=deadbeef")
	s.Error(err)
	s.True(ierr.IsSignature(err))

	payments, err := s.paymentService.ListPaymentsByInvoice(s.GetContext(), invoiceID)
	s.NoError(err)
	s.Empty(payments.Items)
}

func (s *SettlementServiceSuite) TestWebhookIgnoresUnknownEventType() {
	now := time.Now()
	payload := []byte(fmt.Sprintf(`{
		"id": "evt_test_2",
		"type": "payment_intent.created",
		"created": %d,
		"data": {"object": {"id": "pi_unrelated"}}
	}`, now.Unix()))
	signature := signWebhookPayload(payload, testutil.TestWebhookSecret, now)

	s.NoError(s.service.HandleWebhook(context.Background(), payload, signature))
}

func (s *SettlementServiceSuite) TestWebhookAcknowledgesForeignSession() {
	now := time.Now()
	payload := []byte(fmt.Sprintf(`{
		"id": "evt_test_3",
		"type": "checkout.session.completed",
		"created": %d,
		"data": {"object": {"id": "cs_foreign", "object": "checkout.session", "amount_total": 1000}}
	}`, now.Unix()))
	signature := signWebhookPayload(payload, testutil.TestWebhookSecret, now)

	// No invoice metadata means the session was not opened by us; the
	// event is acknowledged without touching the ledger.
	s.NoError(s.service.HandleWebhook(context.Background(), payload, signature))
}

func (s *SettlementServiceSuite) TestWebhookSkipsLedgerWriteForClosedInvoice() {
	invoiceID := s.createInvoice("85.00")

	_, err := s.paymentService.RecordPayment(s.GetContext(), dto.RecordPaymentRequest{
		InvoiceID:   invoiceID,
		Amount:      decimal.RequireFromString("85.00"),
		PaymentDate: time.Date(2025, 1, 28, 0, 0, 0, 0, time.UTC),
		Method:      types.PaymentMethodTransfer,
	})
	s.NoError(err)

	now := time.Now()
	payload := s.checkoutCompletedPayload(invoiceID, "cs_test_late", "pi_late", 8500, now)
	signature := signWebhookPayload(payload, testutil.TestWebhookSecret, now)

	s.NoError(s.service.HandleWebhook(context.Background(), payload, signature))

	payments, err := s.paymentService.ListPaymentsByInvoice(s.GetContext(), invoiceID)
	s.NoError(err)
	s.Len(payments.Items, 1)
}
