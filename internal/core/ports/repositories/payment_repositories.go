package repositories

import (
	"context"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
)

// PaymentReader defines read operations for payment records
type PaymentReader interface {
	FindPaymentByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error)

	// ListPaymentsByHR returns one employer's payments, newest first.
	ListPaymentsByHR(ctx context.Context, hrEmail string, opts domain.ListOptions) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment records
type PaymentWriter interface {
	// SavePayment appends a payment. Returns apperrors.ErrDuplicate when the
	// transactionId was already recorded.
	SavePayment(ctx context.Context, payment domain.Payment) error
}

type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
