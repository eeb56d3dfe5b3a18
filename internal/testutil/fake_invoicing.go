package testutil

import (
	"context"
	"sync"

	"github.com/garagio/garagio/internal/integration/invoicing"
	"github.com/garagio/garagio/internal/types"
)

var _ invoicing.Mirror = (*FakeInvoicingMirror)(nil)

// FakeInvoicingMirror implements invoicing.Mirror and records mirrored
// invoices. Setting CreateErr makes the mirror fail, to verify that the
// local invoice survives a SaaS outage.
type FakeInvoicingMirror struct {
	mu sync.Mutex

	Disabled  bool
	CreateErr error

	Mirrored []*invoicing.CreateInvoiceRequest
	statuses map[string]string
}

func NewFakeInvoicingMirror() *FakeInvoicingMirror {
	return &FakeInvoicingMirror{
		statuses: make(map[string]string),
	}
}

func (m *FakeInvoicingMirror) Enabled() bool {
	return !m.Disabled
}

func (m *FakeInvoicingMirror) CreateInvoice(ctx context.Context, req *invoicing.CreateInvoiceRequest) (string, error) {
	if m.CreateErr != nil {
		return "", m.CreateErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Mirrored = append(m.Mirrored, req)
	externalID := "ext_" + types.GenerateUUID()
	m.statuses[externalID] = "open"
	return externalID, nil
}

func (m *FakeInvoicingMirror) GetInvoiceStatus(ctx context.Context, externalID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if status, ok := m.statuses[externalID]; ok {
		return status, nil
	}
	return "unknown", nil
}

func (m *FakeInvoicingMirror) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Mirrored = nil
	m.CreateErr = nil
	m.Disabled = false
	m.statuses = make(map[string]string)
}
