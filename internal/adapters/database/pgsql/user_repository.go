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

const userColumns = `user_id, email, name, role, company_name, company_logo, date_of_birth, package_limit, subscription, created_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.conn(ctx).Exec(ctx, query,
		m.UserID, m.Email, m.Name, m.Role, m.CompanyName, m.CompanyLogo,
		m.DateOfBirth, m.PackageLimit, m.Subscription, m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	return r.queryOne(ctx, query, email)
}

// AddPackageLimit increments in SQL so concurrent credits never overwrite each other.
func (r *PgxUserRepository) AddPackageLimit(ctx context.Context, email string, seats int, subscription string) (*domain.User, error) {
	query := `
		UPDATE users
		SET package_limit = package_limit + $2, subscription = $3
		WHERE email = $1
		RETURNING ` + userColumns + `;
	`
	return r.queryOne(ctx, query, email, seats, subscription)
}

func (r *PgxUserRepository) queryOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}
