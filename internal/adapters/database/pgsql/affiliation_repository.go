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

const affiliationColumns = `affiliation_id, employee_email, employee_name, hr_email, company_name, company_logo, affiliation_date, status`

type PgxAffiliationRepository struct {
	BaseRepository
}

func newPgxAffiliationRepository(db *pgxpool.Pool) *PgxAffiliationRepository {
	return &PgxAffiliationRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.AffiliationRepositoryFacade = (*PgxAffiliationRepository)(nil)

func (r *PgxAffiliationRepository) FindAffiliation(ctx context.Context, employeeEmail, hrEmail string) (*domain.Affiliation, error) {
	query := `SELECT ` + affiliationColumns + ` FROM affiliations WHERE employee_email = $1 AND hr_email = $2;`
	rows, err := r.conn(ctx).Query(ctx, query, employeeEmail, hrEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to query affiliation: %w", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Affiliation])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan affiliation: %w", err)
	}
	affiliation := mapping.ToDomainAffiliation(m)
	return &affiliation, nil
}

func (r *PgxAffiliationRepository) ListAffiliations(ctx context.Context, hrEmail string, opts domain.ListOptions) ([]domain.Affiliation, error) {
	query := `SELECT ` + affiliationColumns + ` FROM affiliations`
	var args []any
	if hrEmail != "" {
		query += ` WHERE hr_email = $1`
		args = append(args, hrEmail)
	}
	query += ` ORDER BY affiliation_date DESC` + limitClause(opts.Limit) + `;`

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query affiliations: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Affiliation])
	if err != nil {
		return nil, fmt.Errorf("failed to scan affiliations: %w", err)
	}
	return mapping.ToDomainAffiliationSlice(ms), nil
}

// SaveAffiliation uses ON CONFLICT so a concurrent link does not abort the
// enclosing approval transaction.
func (r *PgxAffiliationRepository) SaveAffiliation(ctx context.Context, affiliation domain.Affiliation) error {
	m := mapping.ToModelAffiliation(affiliation)
	query := `
		INSERT INTO affiliations (` + affiliationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (employee_email, hr_email) DO NOTHING;
	`
	tag, err := r.conn(ctx).Exec(ctx, query,
		m.AffiliationID, m.EmployeeEmail, m.EmployeeName, m.HREmail, m.CompanyName, m.CompanyLogo, m.AffiliationDate, m.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to save affiliation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDuplicate
	}
	return nil
}

func (r *PgxAffiliationRepository) DeleteAffiliation(ctx context.Context, affiliationID, hrEmail string) (int64, error) {
	tag, err := r.conn(ctx).Exec(ctx,
		`DELETE FROM affiliations WHERE affiliation_id = $1 AND lower(hr_email) = lower($2);`, affiliationID, hrEmail)
	if err != nil {
		return 0, fmt.Errorf("failed to delete affiliation %s: %w", affiliationID, err)
	}
	return tag.RowsAffected(), nil
}
