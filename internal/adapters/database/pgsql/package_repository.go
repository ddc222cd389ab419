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

type PgxPackageRepository struct {
	BaseRepository
}

func newPgxPackageRepository(db *pgxpool.Pool) *PgxPackageRepository {
	return &PgxPackageRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.PackageRepositoryFacade = (*PgxPackageRepository)(nil)

func (r *PgxPackageRepository) ListPackages(ctx context.Context, opts domain.ListOptions) ([]domain.Package, error) {
	query := `
		SELECT package_id, name, employee_limit, price
		FROM packages
		ORDER BY employee_limit DESC` + limitClause(opts.Limit) + `;`
	rows, err := r.conn(ctx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query packages: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Package])
	if err != nil {
		return nil, fmt.Errorf("failed to scan packages: %w", err)
	}
	return mapping.ToDomainPackageSlice(ms), nil
}

func (r *PgxPackageRepository) FindPackageByName(ctx context.Context, name string) (*domain.Package, error) {
	query := `SELECT package_id, name, employee_limit, price FROM packages WHERE lower(name) = lower($1);`
	rows, err := r.conn(ctx).Query(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query package %s: %w", name, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Package])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan package: %w", err)
	}
	pkg := mapping.ToDomainPackage(m)
	return &pkg, nil
}
