package dto

import (
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCheckoutSessionRequest selects the package to buy. The catalog entry
// named by PackageName decides the charged price and seat count.
type CreateCheckoutSessionRequest struct {
	PackageName   string          `json:"packageName" binding:"required"`
	Price         decimal.Decimal `json:"price"`
	EmployeeLimit int             `json:"employeeLimit" binding:"required,gt=0"`
	Email         string          `json:"email" binding:"required,email"`
}

// CheckoutSessionResponse returns the hosted checkout URL.
type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

// ReconcileResult holds the records written by a successful reconciliation.
type ReconcileResult struct {
	User    *domain.User    `json:"user"`
	Payment *domain.Payment `json:"payment"`
}

// ReconcilePaymentResponse is the body of the reconciliation endpoint.
type ReconcilePaymentResponse struct {
	Success          bool             `json:"success"`
	AlreadyProcessed bool             `json:"alreadyProcessed,omitempty"`
	Result           *ReconcileResult `json:"result,omitempty"`
}

// ToReconcilePaymentResponse converts a domain.Reconciliation to its response DTO
func ToReconcilePaymentResponse(r *domain.Reconciliation) ReconcilePaymentResponse {
	switch {
	case !r.Paid:
		return ReconcilePaymentResponse{Success: false}
	case r.AlreadyProcessed:
		return ReconcilePaymentResponse{Success: true, AlreadyProcessed: true}
	default:
		return ReconcilePaymentResponse{
			Success: true,
			Result:  &ReconcileResult{User: r.User, Payment: r.Payment},
		}
	}
}
