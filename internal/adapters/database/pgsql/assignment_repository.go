package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/asset_management_app/internal/models"
	"github.com/SscSPs/asset_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const assignmentColumns = `assignment_id, request_id, employee_email, employee_name, asset_id, asset_name, asset_type,
	hr_email, company_name, assigned_date, status, return_date`

type PgxAssignmentRepository struct {
	BaseRepository
}

func newPgxAssignmentRepository(db *pgxpool.Pool) *PgxAssignmentRepository {
	return &PgxAssignmentRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.AssignmentRepositoryFacade = (*PgxAssignmentRepository)(nil)

func (r *PgxAssignmentRepository) SaveAssignment(ctx context.Context, assignment domain.AssignedAsset) error {
	m := mapping.ToModelAssignedAsset(assignment)
	query := `
		INSERT INTO assigned_assets (` + assignmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.conn(ctx).Exec(ctx, query,
		m.AssignmentID, m.RequestID, m.EmployeeEmail, m.EmployeeName, m.AssetID, m.AssetName, m.AssetType,
		m.HREmail, m.CompanyName, m.AssignedDate, m.Status, m.ReturnDate,
	)
	if err != nil {
		return fmt.Errorf("failed to save assignment: %w", err)
	}
	return nil
}

func (r *PgxAssignmentRepository) FindAssignmentByID(ctx context.Context, assignmentID string) (*domain.AssignedAsset, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assigned_assets WHERE assignment_id = $1;`
	return r.queryOne(ctx, query, assignmentID)
}

func (r *PgxAssignmentRepository) ListAssignmentsByEmployee(ctx context.Context, employeeEmail string, opts domain.ListOptions) ([]domain.AssignedAsset, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM assigned_assets
		WHERE employee_email = $1
		ORDER BY assigned_date DESC` + limitClause(opts.Limit) + `;`
	rows, err := r.conn(ctx).Query(ctx, query, employeeEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.AssignedAsset])
	if err != nil {
		return nil, fmt.Errorf("failed to scan assignments: %w", err)
	}
	return mapping.ToDomainAssignedAssetSlice(ms), nil
}

func (r *PgxAssignmentRepository) MarkAssignmentReturned(ctx context.Context, assignmentID string, returnedAt time.Time) (*domain.AssignedAsset, error) {
	query := `
		UPDATE assigned_assets
		SET status = 'returned', return_date = $2
		WHERE assignment_id = $1 AND status = 'assigned'
		RETURNING ` + assignmentColumns + `;
	`
	updated, err := r.queryOne(ctx, query, assignmentID, returnedAt)
	if !errors.Is(err, apperrors.ErrNotFound) {
		return updated, err
	}
	if _, findErr := r.FindAssignmentByID(ctx, assignmentID); findErr != nil {
		return nil, findErr
	}
	return nil, apperrors.ErrConflict
}

func (r *PgxAssignmentRepository) queryOne(ctx context.Context, query string, args ...any) (*domain.AssignedAsset, error) {
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignment: %w", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.AssignedAsset])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan assignment: %w", err)
	}
	assignment := mapping.ToDomainAssignedAsset(m)
	return &assignment, nil
}
