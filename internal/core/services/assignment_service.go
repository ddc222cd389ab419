package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/asset_management_app/internal/core/ports/services"
	"github.com/SscSPs/asset_management_app/internal/platform/metrics"
)

type assignmentService struct {
	BaseService
	txManager      portsrepo.TransactionManager
	assignmentRepo portsrepo.AssignmentRepositoryFacade
	assetRepo      portsrepo.AssetInventory
	metrics        *metrics.Metrics
}

// AssignmentServiceOption is a functional option for configuring the assignment service
type AssignmentServiceOption func(*assignmentService)

func WithAssignmentMetrics(m *metrics.Metrics) AssignmentServiceOption {
	return func(s *assignmentService) {
		s.metrics = m
	}
}

func NewAssignmentService(
	txManager portsrepo.TransactionManager,
	assignmentRepo portsrepo.AssignmentRepositoryFacade,
	assetRepo portsrepo.AssetInventory,
	options ...AssignmentServiceOption,
) portssvc.AssignmentSvcFacade {
	s := &assignmentService{
		txManager:      txManager,
		assignmentRepo: assignmentRepo,
		assetRepo:      assetRepo,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

var _ portssvc.AssignmentSvcFacade = (*assignmentService)(nil)

func (s *assignmentService) ListAssignments(ctx context.Context, employeeEmail string, opts domain.ListOptions) ([]domain.AssignedAsset, error) {
	assignments, err := s.assignmentRepo.ListAssignmentsByEmployee(ctx, employeeEmail, opts)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assignments")
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	if assignments == nil {
		return []domain.AssignedAsset{}, nil
	}
	return assignments, nil
}

func (s *assignmentService) ReturnAsset(ctx context.Context, assignmentID string, callerEmail string) (*domain.AssignedAsset, error) {
	if err := validateID("assignment", assignmentID); err != nil {
		return nil, err
	}

	var returned *domain.AssignedAsset
	err := s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		assignment, err := s.assignmentRepo.FindAssignmentByID(txCtx, assignmentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: Assignment not found", apperrors.ErrNotFound)
			}
			return fmt.Errorf("failed to load assignment: %w", err)
		}
		if !domain.SameEmail(callerEmail, assignment.EmployeeEmail) && !domain.SameEmail(callerEmail, assignment.HREmail) {
			return fmt.Errorf("%w: not your assignment", apperrors.ErrForbidden)
		}
		if assignment.AssetType == domain.ProductNonReturnable {
			return fmt.Errorf("%w: non-returnable assets cannot be returned", apperrors.ErrValidation)
		}

		returned, err = s.assignmentRepo.MarkAssignmentReturned(txCtx, assignmentID, time.Now().UTC())
		if err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				return fmt.Errorf("%w: Asset already returned", apperrors.ErrConflict)
			}
			return fmt.Errorf("failed to mark assignment returned: %w", err)
		}

		if _, err := s.assetRepo.IncrementAvailableQuantity(txCtx, assignment.AssetID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: Asset not found", apperrors.ErrNotFound)
			}
			return fmt.Errorf("failed to restock asset: %w", err)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Asset return failed", slog.String("assignment_id", assignmentID))
		return nil, err
	}

	s.metrics.AssetReturned()
	s.LogInfo(ctx, "Asset returned", slog.String("assignment_id", assignmentID), slog.String("asset_id", returned.AssetID))
	return returned, nil
}
