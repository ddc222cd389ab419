package repositories

import (
	"context"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
)

// AffiliationReader defines read operations for employee/employer links
type AffiliationReader interface {
	// FindAffiliation looks up the link between one employee and one employer.
	FindAffiliation(ctx context.Context, employeeEmail, hrEmail string) (*domain.Affiliation, error)

	// ListAffiliations returns links sorted by affiliationDate descending.
	// An empty hrEmail lists every employer's links.
	ListAffiliations(ctx context.Context, hrEmail string, opts domain.ListOptions) ([]domain.Affiliation, error)
}

// AffiliationWriter defines write operations for employee/employer links
type AffiliationWriter interface {
	// SaveAffiliation inserts a link. Returns apperrors.ErrDuplicate if the
	// (employeeEmail, hrEmail) pair already exists.
	SaveAffiliation(ctx context.Context, affiliation domain.Affiliation) error

	// DeleteAffiliation removes a link by id when it belongs to hrEmail and
	// reports how many rows went away.
	DeleteAffiliation(ctx context.Context, affiliationID, hrEmail string) (int64, error)
}

type AffiliationRepositoryFacade interface {
	AffiliationReader
	AffiliationWriter
}
