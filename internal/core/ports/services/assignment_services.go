package services

import (
	"context"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
)

// AssignmentSvcFacade covers assets handed to employees.
type AssignmentSvcFacade interface {
	ListAssignments(ctx context.Context, employeeEmail string, opts domain.ListOptions) ([]domain.AssignedAsset, error)

	// ReturnAsset closes an assignment and puts the unit back in stock.
	// Only the assignee or the employer that assigned it may return it.
	ReturnAsset(ctx context.Context, assignmentID string, callerEmail string) (*domain.AssignedAsset, error)
}
