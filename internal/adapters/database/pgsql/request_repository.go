package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/asset_management_app/internal/models"
	"github.com/SscSPs/asset_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const requestColumns = `request_id, asset_id, asset_name, asset_type, requester_email, requester_name, hr_email,
	company_name, additional_note, request_status, request_date, approval_date, note`

type PgxRequestRepository struct {
	BaseRepository
}

func newPgxRequestRepository(db *pgxpool.Pool) *PgxRequestRepository {
	return &PgxRequestRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.RequestRepositoryFacade = (*PgxRequestRepository)(nil)

func (r *PgxRequestRepository) SaveRequest(ctx context.Context, request domain.Request) error {
	m := mapping.ToModelRequest(request)
	query := `
		INSERT INTO asset_requests (` + requestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.conn(ctx).Exec(ctx, query,
		m.RequestID, m.AssetID, m.AssetName, m.AssetType, m.RequesterEmail, m.RequesterName, m.HREmail,
		m.CompanyName, m.AdditionalNote, m.RequestStatus, m.RequestDate, m.ApprovalDate, m.Note,
	)
	if err != nil {
		return fmt.Errorf("failed to save request: %w", err)
	}
	return nil
}

func (r *PgxRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM asset_requests WHERE request_id = $1;`
	return r.queryOne(ctx, query, requestID)
}

func (r *PgxRequestRepository) ListRequests(ctx context.Context, filter domain.RequestFilter, opts domain.ListOptions) ([]domain.Request, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.HREmail != "" {
		args = append(args, filter.HREmail)
		conditions = append(conditions, fmt.Sprintf("hr_email = $%d", len(args)))
	}
	if filter.RequesterEmail != "" {
		args = append(args, filter.RequesterEmail)
		conditions = append(conditions, fmt.Sprintf("requester_email = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conditions = append(conditions, fmt.Sprintf("request_status = $%d", len(args)))
	}

	query := `SELECT ` + requestColumns + ` FROM asset_requests`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY request_date DESC` + limitClause(opts.Limit) + `;`

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query requests: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Request])
	if err != nil {
		return nil, fmt.Errorf("failed to scan requests: %w", err)
	}
	return mapping.ToDomainRequestSlice(ms), nil
}

// UpdateRequestStatus only touches pending rows, so two deciders cannot both win.
func (r *PgxRequestRepository) UpdateRequestStatus(ctx context.Context, requestID string, status domain.RequestStatus, decidedAt time.Time) (*domain.Request, error) {
	query := `
		UPDATE asset_requests
		SET request_status = $2, approval_date = $3
		WHERE request_id = $1 AND request_status = 'pending'
		RETURNING ` + requestColumns + `;
	`
	updated, err := r.queryOne(ctx, query, requestID, string(status), decidedAt)
	if !errors.Is(err, apperrors.ErrNotFound) {
		return updated, err
	}

	// Nothing matched: either the id is unknown or the request was already decided.
	if _, findErr := r.FindRequestByID(ctx, requestID); findErr != nil {
		return nil, findErr
	}
	return nil, apperrors.ErrConflict
}

func (r *PgxRequestRepository) queryOne(ctx context.Context, query string, args ...any) (*domain.Request, error) {
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query request: %w", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Request])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan request: %w", err)
	}
	request := mapping.ToDomainRequest(m)
	return &request, nil
}
