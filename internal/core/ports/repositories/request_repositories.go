package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
)

// RequestReader defines read operations for asset requests
type RequestReader interface {
	FindRequestByID(ctx context.Context, requestID string) (*domain.Request, error)

	// ListRequests returns requests sorted by requestDate descending.
	// Empty filter fields do not filter.
	ListRequests(ctx context.Context, filter domain.RequestFilter, opts domain.ListOptions) ([]domain.Request, error)
}

// RequestWriter defines write operations for asset requests
type RequestWriter interface {
	SaveRequest(ctx context.Context, request domain.Request) error

	// UpdateRequestStatus moves a pending request to status and stamps
	// approvalDate. Returns apperrors.ErrNotFound for an unknown id and
	// apperrors.ErrConflict when the request is no longer pending.
	UpdateRequestStatus(ctx context.Context, requestID string, status domain.RequestStatus, decidedAt time.Time) (*domain.Request, error)
}

// RequestRepositoryFacade combines all request-related repository interfaces
type RequestRepositoryFacade interface {
	RequestReader
	RequestWriter
}
