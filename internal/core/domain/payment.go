package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus mirrors the gateway payment status at reconciliation time.
type PaymentStatus string

const PaymentPaid PaymentStatus = "paid"

// Payment is an append-only record of a reconciled checkout.
// TransactionID is the de-duplication key.
type Payment struct {
	PaymentID     string          `json:"paymentId"`
	HREmail       string          `json:"hrEmail"`
	PackageName   string          `json:"packageName"`
	EmployeeLimit int             `json:"employeeLimit"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	TransactionID string          `json:"transactionId"`
	SessionID     string          `json:"sessionId"`
	PaymentDate   time.Time       `json:"paymentDate"`
	Status        PaymentStatus   `json:"status"`
}

// Reconciliation is the outcome of settling a checkout session.
type Reconciliation struct {
	Paid             bool
	AlreadyProcessed bool
	User             *User
	Payment          *Payment
}
