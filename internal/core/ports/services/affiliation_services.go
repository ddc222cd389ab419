package services

import (
	"context"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
)

// AffiliationSvcFacade manages team membership.
type AffiliationSvcFacade interface {
	// ListAffiliations lists one employer's team, or every team when hrEmail is empty.
	ListAffiliations(ctx context.Context, hrEmail string, opts domain.ListOptions) ([]domain.Affiliation, error)

	// RemoveEmployee deletes one of hrEmail's affiliations. apperrors.ErrNotFound
	// when the id does not name an affiliation of that employer.
	RemoveEmployee(ctx context.Context, affiliationID, hrEmail string) (int64, error)
}
