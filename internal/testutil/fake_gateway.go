package testutil

import (
	"context"
	"sync"

	ierr "github.com/garagio/garagio/internal/errors"
	gateway "github.com/garagio/garagio/internal/integration/stripe"
	"github.com/garagio/garagio/internal/types"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

var _ gateway.Gateway = (*FakeGateway)(nil)

// FakeGateway implements the payment gateway for tests. Checkout sessions
// are fabricated in memory; webhook events run through the real Stripe
// signature verification so tests exercise the same rejection path as
// production.
type FakeGateway struct {
	mu sync.Mutex

	WebhookSecret string
	CreateErr     error

	// Sessions records every checkout session request in order
	Sessions []*gateway.CheckoutSessionRequest
}

func NewFakeGateway(webhookSecret string) *FakeGateway {
	return &FakeGateway{
		WebhookSecret: webhookSecret,
	}
}

func (g *FakeGateway) CreateCheckoutSession(ctx context.Context, req *gateway.CheckoutSessionRequest) (*gateway.CheckoutSessionResponse, error) {
	if g.CreateErr != nil {
		return nil, g.CreateErr
	}

	g.mu.Lock()
	g.Sessions = append(g.Sessions, req)
	g.mu.Unlock()

	sessionID := "cs_test_" + types.GenerateUUID()
	return &gateway.CheckoutSessionResponse{
		SessionID: sessionID,
		URL:       "https://checkout.stripe.test/pay/" + sessionID,
	}, nil
}

func (g *FakeGateway) ParseWebhookEvent(payload []byte, signature string) (*stripe.Event, error) {
	options := webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	}
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.WebhookSecret, options)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid webhook signature or payload").
			Mark(ierr.ErrSignature)
	}
	return &event, nil
}

// LastSession returns the most recently created session request, or nil
func (g *FakeGateway) LastSession() *gateway.CheckoutSessionRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.Sessions) == 0 {
		return nil
	}
	return g.Sessions[len(g.Sessions)-1]
}

func (g *FakeGateway) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Sessions = nil
	g.CreateErr = nil
}
