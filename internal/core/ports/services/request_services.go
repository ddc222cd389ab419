package services

import (
	"context"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
	"github.com/SscSPs/asset_management_app/internal/dto"
)

// RequestReaderSvc defines read operations for asset requests
type RequestReaderSvc interface {
	ListRequests(ctx context.Context, filter domain.RequestFilter, opts domain.ListOptions) ([]domain.Request, error)
}

// RequestWriterSvc defines write operations for asset requests
type RequestWriterSvc interface {
	// SubmitRequest stores a new pending request.
	SubmitRequest(ctx context.Context, req dto.CreateRequestRequest, callerEmail string) (*domain.Request, error)
}

// RequestDecisionSvc runs the approval workflow.
type RequestDecisionSvc interface {
	// UpdateRequestStatus approves or rejects a pending request. An approval
	// takes one unit of stock, records the assignment and links the employee
	// to the employer, all in one transaction.
	UpdateRequestStatus(ctx context.Context, requestID string, req dto.UpdateRequestStatusRequest, callerEmail string) (*domain.RequestDecision, error)
}

// RequestSvcFacade combines all request-related service interfaces
type RequestSvcFacade interface {
	RequestReaderSvc
	RequestWriterSvc
	RequestDecisionSvc
}
