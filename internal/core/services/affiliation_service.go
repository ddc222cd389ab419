package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/asset_management_app/internal/core/ports/services"
)

type affiliationService struct {
	BaseService
	affiliationRepo portsrepo.AffiliationRepositoryFacade
}

func NewAffiliationService(affiliationRepo portsrepo.AffiliationRepositoryFacade) portssvc.AffiliationSvcFacade {
	return &affiliationService{affiliationRepo: affiliationRepo}
}

func (s *affiliationService) ListAffiliations(ctx context.Context, hrEmail string, opts domain.ListOptions) ([]domain.Affiliation, error) {
	affiliations, err := s.affiliationRepo.ListAffiliations(ctx, hrEmail, opts)
	if err != nil {
		s.LogError(ctx, err, "Failed to list affiliations")
		return nil, fmt.Errorf("failed to list affiliations: %w", err)
	}
	if affiliations == nil {
		return []domain.Affiliation{}, nil
	}
	return affiliations, nil
}

func (s *affiliationService) RemoveEmployee(ctx context.Context, affiliationID, hrEmail string) (int64, error) {
	if err := validateID("affiliation", affiliationID); err != nil {
		return 0, err
	}
	if hrEmail == "" {
		return 0, fmt.Errorf("%w: employer is required", apperrors.ErrForbidden)
	}

	deleted, err := s.affiliationRepo.DeleteAffiliation(ctx, affiliationID, hrEmail)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete affiliation", slog.String("affiliation_id", affiliationID))
		return 0, fmt.Errorf("failed to remove employee: %w", err)
	}
	if deleted == 0 {
		return 0, fmt.Errorf("%w: Employee not found", apperrors.ErrNotFound)
	}

	s.LogInfo(ctx, "Employee removed from team", slog.String("affiliation_id", affiliationID))
	return deleted, nil
}
