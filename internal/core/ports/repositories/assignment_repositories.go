package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
)

// AssignmentReader defines read operations for assigned assets
type AssignmentReader interface {
	FindAssignmentByID(ctx context.Context, assignmentID string) (*domain.AssignedAsset, error)

	// ListAssignmentsByEmployee returns an employee's assignments, newest first.
	ListAssignmentsByEmployee(ctx context.Context, employeeEmail string, opts domain.ListOptions) ([]domain.AssignedAsset, error)
}

// AssignmentWriter defines write operations for assigned assets
type AssignmentWriter interface {
	SaveAssignment(ctx context.Context, assignment domain.AssignedAsset) error

	// MarkAssignmentReturned moves an assigned row to returned. Returns
	// apperrors.ErrConflict if it was already returned.
	MarkAssignmentReturned(ctx context.Context, assignmentID string, returnedAt time.Time) (*domain.AssignedAsset, error)
}

type AssignmentRepositoryFacade interface {
	AssignmentReader
	AssignmentWriter
}
