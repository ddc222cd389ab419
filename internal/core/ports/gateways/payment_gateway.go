package gateways

import (
	"context"
)

// CheckoutSessionInput describes one hosted checkout for a single package.
type CheckoutSessionInput struct {
	PackageName   string
	EmployeeLimit int
	CustomerEmail string
	UnitAmount    int64 // Minor currency units
	Currency      string
	SuccessURL    string
	CancelURL     string
	// Metadata is stored on the session and read back on reconciliation.
	Metadata map[string]string
}

// CheckoutSession is the gateway's view of a session.
type CheckoutSession struct {
	ID              string
	URL             string
	PaymentStatus   string
	CustomerEmail   string
	PaymentIntentID string
	Metadata        map[string]string
	AmountTotal     int64
	Currency        string
}

// PaymentGateway creates and inspects hosted checkout sessions.
// GetCheckoutSession returns apperrors.ErrValidation for unknown sessions and
// apperrors.ErrGateway for transport failures.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, in CheckoutSessionInput) (*CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}
