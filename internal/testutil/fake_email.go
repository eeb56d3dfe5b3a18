package testutil

import (
	"context"
	"sync"

	"github.com/garagio/garagio/internal/email"
)

var _ email.Sender = (*RecordingEmailSender)(nil)

// RecordingEmailSender implements email.Sender and records every
// notification. Setting Err makes sends fail, to verify that notification
// failures never roll back the primary mutation.
type RecordingEmailSender struct {
	mu sync.Mutex

	Err  error
	Sent []email.InvoiceNotification
}

func NewRecordingEmailSender() *RecordingEmailSender {
	return &RecordingEmailSender{}
}

func (s *RecordingEmailSender) SendInvoiceCreated(ctx context.Context, n email.InvoiceNotification) error {
	if s.Err != nil {
		return s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sent = append(s.Sent, n)
	return nil
}

func (s *RecordingEmailSender) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sent = nil
	s.Err = nil
}
