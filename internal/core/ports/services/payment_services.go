package services

import (
	"context"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
	"github.com/SscSPs/asset_management_app/internal/dto"
)

// CheckoutSvc opens hosted checkout sessions.
type CheckoutSvc interface {
	// CreateCheckoutSession returns the URL the buyer is redirected to.
	CreateCheckoutSession(ctx context.Context, req dto.CreateCheckoutSessionRequest) (string, error)
}

// ReconciliationSvc settles completed checkouts.
type ReconciliationSvc interface {
	// ReconcilePayment records the payment of a session and credits the
	// purchased seats. Safe to call repeatedly for the same session.
	ReconcilePayment(ctx context.Context, sessionID string) (*domain.Reconciliation, error)
}

// PaymentHistorySvc lists recorded payments.
type PaymentHistorySvc interface {
	ListPayments(ctx context.Context, hrEmail string, opts domain.ListOptions) ([]domain.Payment, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	CheckoutSvc
	ReconciliationSvc
	PaymentHistorySvc
}
