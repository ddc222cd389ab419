package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the payments table row.
type Payment struct {
	PaymentID     string          `db:"payment_id"`
	HREmail       string          `db:"hr_email"`
	PackageName   string          `db:"package_name"`
	EmployeeLimit int             `db:"employee_limit"`
	Amount        decimal.Decimal `db:"amount"`
	Currency      string          `db:"currency"`
	TransactionID string          `db:"transaction_id"` // Unique
	SessionID     string          `db:"session_id"`
	PaymentDate   time.Time       `db:"payment_date"`
	Status        string          `db:"status"`
}
