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
	"github.com/SscSPs/asset_management_app/internal/dto"
	"github.com/SscSPs/asset_management_app/internal/platform/metrics"
	"github.com/google/uuid"
)

// requestService implements the RequestSvcFacade interface
type requestService struct {
	BaseService
	txManager       portsrepo.TransactionManager
	requestRepo     portsrepo.RequestRepositoryFacade
	assetRepo       portsrepo.AssetRepositoryFacade
	assignmentRepo  portsrepo.AssignmentWriter
	affiliationRepo portsrepo.AffiliationRepositoryFacade
	metrics         *metrics.Metrics
}

// RequestServiceOption is a functional option for configuring the request service
type RequestServiceOption func(*requestService)

// WithRequestMetrics records decisions on m.
func WithRequestMetrics(m *metrics.Metrics) RequestServiceOption {
	return func(s *requestService) {
		s.metrics = m
	}
}

// NewRequestService creates a new request service with the provided dependencies
func NewRequestService(
	txManager portsrepo.TransactionManager,
	requestRepo portsrepo.RequestRepositoryFacade,
	assetRepo portsrepo.AssetRepositoryFacade,
	assignmentRepo portsrepo.AssignmentWriter,
	affiliationRepo portsrepo.AffiliationRepositoryFacade,
	options ...RequestServiceOption,
) portssvc.RequestSvcFacade {
	s := &requestService{
		txManager:       txManager,
		requestRepo:     requestRepo,
		assetRepo:       assetRepo,
		assignmentRepo:  assignmentRepo,
		affiliationRepo: affiliationRepo,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

var _ portssvc.RequestSvcFacade = (*requestService)(nil)

// SubmitRequest stores a pending request. Descriptive fields missing from the
// body are copied from the asset when it can be found.
func (s *requestService) SubmitRequest(ctx context.Context, req dto.CreateRequestRequest, callerEmail string) (*domain.Request, error) {
	if err := validateID("asset", req.AssetID); err != nil {
		return nil, err
	}
	requester := nonEmpty(req.RequesterEmail, callerEmail)
	if requester == "" {
		return nil, fmt.Errorf("%w: requesterEmail is required", apperrors.ErrValidation)
	}

	request := domain.Request{
		RequestID:      uuid.NewString(),
		AssetID:        req.AssetID,
		AssetName:      req.AssetName,
		AssetType:      req.AssetType,
		RequesterEmail: requester,
		RequesterName:  req.RequesterName,
		HREmail:        req.HREmail,
		CompanyName:    req.CompanyName,
		AdditionalNote: req.AdditionalNote,
		RequestStatus:  domain.RequestPending,
		RequestDate:    time.Now().UTC(),
		Note:           domain.PendingRequestNote,
	}

	asset, err := s.assetRepo.FindAssetByID(ctx, req.AssetID)
	switch {
	case err == nil:
		request.AssetName = nonEmpty(request.AssetName, asset.ProductName)
		request.AssetType = domain.ProductType(nonEmpty(string(request.AssetType), string(asset.ProductType)))
		request.HREmail = nonEmpty(request.HREmail, asset.HREmail)
		request.CompanyName = nonEmpty(request.CompanyName, asset.CompanyName)
	case errors.Is(err, apperrors.ErrNotFound):
		s.LogDebug(ctx, "Request submitted for unknown asset", slog.String("asset_id", req.AssetID))
	default:
		s.LogError(ctx, err, "Failed to load asset for request", slog.String("asset_id", req.AssetID))
		return nil, fmt.Errorf("failed to submit request: %w", err)
	}

	if err := s.requestRepo.SaveRequest(ctx, request); err != nil {
		s.LogError(ctx, err, "Failed to save request", slog.String("request_id", request.RequestID))
		return nil, fmt.Errorf("failed to submit request: %w", err)
	}

	s.LogInfo(ctx, "Asset request submitted",
		slog.String("request_id", request.RequestID),
		slog.String("asset_id", request.AssetID))
	return &request, nil
}

func (s *requestService) ListRequests(ctx context.Context, filter domain.RequestFilter, opts domain.ListOptions) ([]domain.Request, error) {
	requests, err := s.requestRepo.ListRequests(ctx, filter, opts)
	if err != nil {
		s.LogError(ctx, err, "Failed to list requests", slog.String("hr_email", filter.HREmail))
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	if requests == nil {
		return []domain.Request{}, nil
	}
	return requests, nil
}

// UpdateRequestStatus validates everything it can before opening the
// transaction; inside it every failure rolls back the whole decision.
func (s *requestService) UpdateRequestStatus(ctx context.Context, requestID string, req dto.UpdateRequestStatusRequest, callerEmail string) (*domain.RequestDecision, error) {
	if err := validateID("request", requestID); err != nil {
		return nil, err
	}
	if !req.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: status must be approved or rejected", apperrors.ErrValidation)
	}
	approving := req.Status == domain.RequestApproved
	if approving {
		if req.AssetID == "" {
			return nil, fmt.Errorf("%w: assetId is required to approve a request", apperrors.ErrValidation)
		}
		if err := validateID("asset", req.AssetID); err != nil {
			return nil, err
		}
	}
	if req.HREmail != "" && !domain.SameEmail(req.HREmail, callerEmail) {
		return nil, fmt.Errorf("%w: cannot decide on behalf of another employer", apperrors.ErrForbidden)
	}

	var decision domain.RequestDecision
	err := s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		stored, err := s.requestRepo.FindRequestByID(txCtx, requestID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: Request not found", apperrors.ErrNotFound)
			}
			return fmt.Errorf("failed to load request: %w", err)
		}
		if stored.HREmail != "" && !domain.SameEmail(stored.HREmail, callerEmail) {
			return fmt.Errorf("%w: request belongs to another employer", apperrors.ErrForbidden)
		}
		if approving && stored.AssetID != "" && stored.AssetID != req.AssetID {
			return fmt.Errorf("%w: assetId does not match the requested asset", apperrors.ErrValidation)
		}

		now := time.Now().UTC()
		updated, err := s.requestRepo.UpdateRequestStatus(txCtx, requestID, req.Status, now)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrConflict):
				return fmt.Errorf("%w: Request already processed", apperrors.ErrConflict)
			case errors.Is(err, apperrors.ErrNotFound):
				return fmt.Errorf("%w: Request not found", apperrors.ErrNotFound)
			}
			return fmt.Errorf("failed to update request status: %w", err)
		}
		decision.Request = *updated

		if !approving {
			return nil
		}
		return s.fulfil(txCtx, &decision, stored, req, callerEmail, now)
	})
	if err != nil {
		s.LogError(ctx, err, "Request decision failed",
			slog.String("request_id", requestID),
			slog.String("status", string(req.Status)))
		return nil, err
	}

	s.metrics.RequestDecided(string(req.Status))
	s.LogInfo(ctx, "Request decided",
		slog.String("request_id", requestID),
		slog.String("status", string(req.Status)),
		slog.Bool("affiliation_created", decision.AffiliationCreated))
	return &decision, nil
}

// fulfil runs the approval side effects: take stock, record the assignment,
// link employee and employer.
func (s *requestService) fulfil(ctx context.Context, decision *domain.RequestDecision, stored *domain.Request, req dto.UpdateRequestStatusRequest, hrEmail string, now time.Time) error {
	asset, err := s.assetRepo.FindAssetByID(ctx, req.AssetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: Asset not found", apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to load asset: %w", err)
	}
	if asset.HREmail != "" && !domain.SameEmail(asset.HREmail, hrEmail) {
		return fmt.Errorf("%w: asset belongs to another employer", apperrors.ErrForbidden)
	}

	remaining, err := s.assetRepo.DecrementAvailableQuantity(ctx, req.AssetID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return fmt.Errorf("%w: Asset not found", apperrors.ErrNotFound)
		case errors.Is(err, apperrors.ErrValidation):
			return fmt.Errorf("%w: availableQuantity is not numeric", apperrors.ErrValidation)
		case errors.Is(err, apperrors.ErrInsufficientInventory):
			return fmt.Errorf("%w: Insufficient inventory", apperrors.ErrInsufficientInventory)
		}
		return fmt.Errorf("failed to decrement inventory: %w", err)
	}
	decision.Asset = &domain.AssetQuantity{AssetID: req.AssetID, AvailableQuantity: remaining}

	employeeEmail := nonEmpty(req.EmployeeEmail, stored.RequesterEmail)
	companyName := nonEmpty(req.CompanyName, stored.CompanyName, asset.CompanyName)
	assignment := domain.AssignedAsset{
		AssignmentID:  uuid.NewString(),
		RequestID:     stored.RequestID,
		EmployeeEmail: employeeEmail,
		EmployeeName:  nonEmpty(req.EmployeeName, stored.RequesterName),
		AssetID:       req.AssetID,
		AssetName:     nonEmpty(req.AssetName, stored.AssetName, asset.ProductName),
		AssetType:     domain.ProductType(nonEmpty(string(req.AssetType), string(stored.AssetType), string(asset.ProductType))),
		HREmail:       hrEmail,
		CompanyName:   companyName,
		AssignedDate:  now,
		Status:        domain.AssignmentAssigned,
	}
	if err := s.assignmentRepo.SaveAssignment(ctx, assignment); err != nil {
		return fmt.Errorf("failed to save assignment: %w", err)
	}
	decision.Assignment = &assignment

	created, err := s.ensureAffiliation(ctx, domain.Affiliation{
		AffiliationID:   uuid.NewString(),
		EmployeeEmail:   employeeEmail,
		EmployeeName:    assignment.EmployeeName,
		HREmail:         hrEmail,
		CompanyName:     companyName,
		CompanyLogo:     req.CompanyLogo,
		AffiliationDate: now,
		Status:          domain.AffiliationActive,
	})
	if err != nil {
		return err
	}
	decision.AffiliationCreated = created
	return nil
}

// ensureAffiliation inserts the link unless the pair is already linked.
func (s *requestService) ensureAffiliation(ctx context.Context, affiliation domain.Affiliation) (bool, error) {
	_, err := s.affiliationRepo.FindAffiliation(ctx, affiliation.EmployeeEmail, affiliation.HREmail)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return false, fmt.Errorf("failed to look up affiliation: %w", err)
	}

	if err := s.affiliationRepo.SaveAffiliation(ctx, affiliation); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return false, nil
		}
		return false, fmt.Errorf("failed to save affiliation: %w", err)
	}
	return true, nil
}
