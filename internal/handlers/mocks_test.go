package handlers_test

import (
	"context"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/asset_management_app/internal/core/ports/services"
	"github.com/SscSPs/asset_management_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) AuthorizeRole(ctx context.Context, email string, role domain.UserRole) error {
	args := m.Called(ctx, email, role)
	return args.Error(0)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock RequestService ---
type MockRequestService struct {
	mock.Mock
}

func (m *MockRequestService) ListRequests(ctx context.Context, filter domain.RequestFilter, opts domain.ListOptions) ([]domain.Request, error) {
	args := m.Called(ctx, filter, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Request), args.Error(1)
}

func (m *MockRequestService) SubmitRequest(ctx context.Context, req dto.CreateRequestRequest, callerEmail string) (*domain.Request, error) {
	args := m.Called(ctx, req, callerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}

func (m *MockRequestService) UpdateRequestStatus(ctx context.Context, requestID string, req dto.UpdateRequestStatusRequest, callerEmail string) (*domain.RequestDecision, error) {
	args := m.Called(ctx, requestID, req, callerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RequestDecision), args.Error(1)
}

var _ portssvc.RequestSvcFacade = (*MockRequestService)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreateCheckoutSession(ctx context.Context, req dto.CreateCheckoutSessionRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentService) ReconcilePayment(ctx context.Context, sessionID string) (*domain.Reconciliation, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reconciliation), args.Error(1)
}

func (m *MockPaymentService) ListPayments(ctx context.Context, hrEmail string, opts domain.ListOptions) ([]domain.Payment, error) {
	args := m.Called(ctx, hrEmail, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)
