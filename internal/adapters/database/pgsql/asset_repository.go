package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/asset_management_app/internal/models"
	"github.com/SscSPs/asset_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const assetColumns = `asset_id, product_name, product_type, available_quantity, hr_email, company_name, data_added`

type PgxAssetRepository struct {
	BaseRepository
}

func newPgxAssetRepository(db *pgxpool.Pool) *PgxAssetRepository {
	return &PgxAssetRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

func (r *PgxAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	m := mapping.ToModelAsset(asset)
	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.conn(ctx).Exec(ctx, query,
		m.AssetID, m.ProductName, m.ProductType, m.AvailableQuantity, m.HREmail, m.CompanyName, m.DataAdded,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save asset: %w", err)
	}
	return nil
}

func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE asset_id = $1;`
	rows, err := r.conn(ctx).Query(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset %s: %w", assetID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Asset])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan asset: %w", err)
	}
	asset := mapping.ToDomainAsset(m)
	return &asset, nil
}

func (r *PgxAssetRepository) ListAssets(ctx context.Context, filter domain.AssetFilter, opts domain.ListOptions) ([]domain.Asset, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.HREmail != "" {
		args = append(args, filter.HREmail)
		conditions = append(conditions, fmt.Sprintf("hr_email = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		conditions = append(conditions, fmt.Sprintf("product_name ILIKE $%d", len(args)))
	}

	query := `SELECT ` + assetColumns + ` FROM assets`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY data_added DESC` + limitClause(opts.Limit) + `;`

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Asset])
	if err != nil {
		return nil, fmt.Errorf("failed to scan assets: %w", err)
	}
	return mapping.ToDomainAssetSlice(ms), nil
}

// DecrementAvailableQuantity is one conditional UPDATE; a row that does not
// match is told apart afterwards as missing or empty.
func (r *PgxAssetRepository) DecrementAvailableQuantity(ctx context.Context, assetID string) (int, error) {
	query := `
		UPDATE assets
		SET available_quantity = available_quantity - 1
		WHERE asset_id = $1 AND available_quantity >= 1
		RETURNING available_quantity;
	`
	var remaining int
	err := r.conn(ctx).QueryRow(ctx, query, assetID).Scan(&remaining)
	if err == nil {
		return remaining, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("failed to decrement asset %s: %w", assetID, err)
	}

	var exists bool
	if err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM assets WHERE asset_id = $1);`, assetID).Scan(&exists); err != nil {
		return 0, fmt.Errorf("failed to check asset %s: %w", assetID, err)
	}
	if !exists {
		return 0, apperrors.ErrNotFound
	}
	return 0, apperrors.ErrInsufficientInventory
}

func (r *PgxAssetRepository) IncrementAvailableQuantity(ctx context.Context, assetID string) (int, error) {
	query := `
		UPDATE assets
		SET available_quantity = available_quantity + 1
		WHERE asset_id = $1
		RETURNING available_quantity;
	`
	var quantity int
	if err := r.conn(ctx).QueryRow(ctx, query, assetID).Scan(&quantity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, fmt.Errorf("failed to increment asset %s: %w", assetID, err)
	}
	return quantity, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
