package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/asset_management_app/internal/models"
	"github.com/SscSPs/asset_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const paymentColumns = `payment_id, hr_email, package_name, employee_limit, amount, currency, transaction_id, session_id, payment_date, status`

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(db *pgxpool.Pool) *PgxPaymentRepository {
	return &PgxPaymentRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

// SavePayment uses ON CONFLICT so a duplicate does not abort the enclosing transaction.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (transaction_id) DO NOTHING;
	`
	tag, err := r.conn(ctx).Exec(ctx, query,
		m.PaymentID, m.HREmail, m.PackageName, m.EmployeeLimit, m.Amount, m.Currency,
		m.TransactionID, m.SessionID, m.PaymentDate, m.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDuplicate
	}
	return nil
}

func (r *PgxPaymentRepository) FindPaymentByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE transaction_id = $1;`
	rows, err := r.conn(ctx).Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment: %w", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Payment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan payment: %w", err)
	}
	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

func (r *PgxPaymentRepository) ListPaymentsByHR(ctx context.Context, hrEmail string, opts domain.ListOptions) ([]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE hr_email = $1
		ORDER BY payment_date DESC` + limitClause(opts.Limit) + `;`
	rows, err := r.conn(ctx).Query(ctx, query, hrEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Payment])
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments: %w", err)
	}
	return mapping.ToDomainPaymentSlice(ms), nil
}
