package mapping

import (
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	"github.com/SscSPs/asset_management_app/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		HREmail:       d.HREmail,
		PackageName:   d.PackageName,
		EmployeeLimit: d.EmployeeLimit,
		Amount:        d.Amount,
		Currency:      d.Currency,
		TransactionID: d.TransactionID,
		SessionID:     d.SessionID,
		PaymentDate:   d.PaymentDate,
		Status:        string(d.Status),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:     m.PaymentID,
		HREmail:       m.HREmail,
		PackageName:   m.PackageName,
		EmployeeLimit: m.EmployeeLimit,
		Amount:        m.Amount,
		Currency:      m.Currency,
		TransactionID: m.TransactionID,
		SessionID:     m.SessionID,
		PaymentDate:   m.PaymentDate,
		Status:        domain.PaymentStatus(m.Status),
	}
}

// ToDomainPaymentSlice converts a slice of model Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
