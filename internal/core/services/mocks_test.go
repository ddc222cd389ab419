package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
	"github.com/SscSPs/asset_management_app/internal/core/ports/gateways"
	"github.com/stretchr/testify/mock"
)

// passthroughTx runs fn on the caller's context and records how often it was used.
type passthroughTx struct {
	calls int
}

func (p *passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) AddPackageLimit(ctx context.Context, email string, seats int, subscription string) (*domain.User, error) {
	args := m.Called(ctx, email, seats, subscription)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Mock PackageRepository ---
type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) ListPackages(ctx context.Context, opts domain.ListOptions) ([]domain.Package, error) {
	args := m.Called(ctx, opts)
	var packages []domain.Package
	if args.Get(0) != nil {
		packages = args.Get(0).([]domain.Package)
	}
	return packages, args.Error(1)
}

func (m *MockPackageRepository) FindPackageByName(ctx context.Context, name string) (*domain.Package, error) {
	args := m.Called(ctx, name)
	var pkg *domain.Package
	if args.Get(0) != nil {
		pkg = args.Get(0).(*domain.Package)
	}
	return pkg, args.Error(1)
}

// --- Mock AssetRepository ---
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	var asset *domain.Asset
	if args.Get(0) != nil {
		asset = args.Get(0).(*domain.Asset)
	}
	return asset, args.Error(1)
}

func (m *MockAssetRepository) ListAssets(ctx context.Context, filter domain.AssetFilter, opts domain.ListOptions) ([]domain.Asset, error) {
	args := m.Called(ctx, filter, opts)
	var assets []domain.Asset
	if args.Get(0) != nil {
		assets = args.Get(0).([]domain.Asset)
	}
	return assets, args.Error(1)
}

func (m *MockAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) DecrementAvailableQuantity(ctx context.Context, assetID string) (int, error) {
	args := m.Called(ctx, assetID)
	return args.Int(0), args.Error(1)
}

func (m *MockAssetRepository) IncrementAvailableQuantity(ctx context.Context, assetID string) (int, error) {
	args := m.Called(ctx, assetID)
	return args.Int(0), args.Error(1)
}

// --- Mock RequestRepository ---
type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.Request, error) {
	args := m.Called(ctx, requestID)
	var request *domain.Request
	if args.Get(0) != nil {
		request = args.Get(0).(*domain.Request)
	}
	return request, args.Error(1)
}

func (m *MockRequestRepository) ListRequests(ctx context.Context, filter domain.RequestFilter, opts domain.ListOptions) ([]domain.Request, error) {
	args := m.Called(ctx, filter, opts)
	var requests []domain.Request
	if args.Get(0) != nil {
		requests = args.Get(0).([]domain.Request)
	}
	return requests, args.Error(1)
}

func (m *MockRequestRepository) SaveRequest(ctx context.Context, request domain.Request) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockRequestRepository) UpdateRequestStatus(ctx context.Context, requestID string, status domain.RequestStatus, decidedAt time.Time) (*domain.Request, error) {
	args := m.Called(ctx, requestID, status, decidedAt)
	var request *domain.Request
	if args.Get(0) != nil {
		request = args.Get(0).(*domain.Request)
	}
	return request, args.Error(1)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	args := m.Called(ctx, transactionID)
	var payment *domain.Payment
	if args.Get(0) != nil {
		payment = args.Get(0).(*domain.Payment)
	}
	return payment, args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByHR(ctx context.Context, hrEmail string, opts domain.ListOptions) ([]domain.Payment, error) {
	args := m.Called(ctx, hrEmail, opts)
	var payments []domain.Payment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.Payment)
	}
	return payments, args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

// --- Mock AffiliationRepository ---
type MockAffiliationRepository struct {
	mock.Mock
}

func (m *MockAffiliationRepository) FindAffiliation(ctx context.Context, employeeEmail, hrEmail string) (*domain.Affiliation, error) {
	args := m.Called(ctx, employeeEmail, hrEmail)
	var affiliation *domain.Affiliation
	if args.Get(0) != nil {
		affiliation = args.Get(0).(*domain.Affiliation)
	}
	return affiliation, args.Error(1)
}

func (m *MockAffiliationRepository) ListAffiliations(ctx context.Context, hrEmail string, opts domain.ListOptions) ([]domain.Affiliation, error) {
	args := m.Called(ctx, hrEmail, opts)
	var affiliations []domain.Affiliation
	if args.Get(0) != nil {
		affiliations = args.Get(0).([]domain.Affiliation)
	}
	return affiliations, args.Error(1)
}

func (m *MockAffiliationRepository) SaveAffiliation(ctx context.Context, affiliation domain.Affiliation) error {
	args := m.Called(ctx, affiliation)
	return args.Error(0)
}

func (m *MockAffiliationRepository) DeleteAffiliation(ctx context.Context, affiliationID, hrEmail string) (int64, error) {
	args := m.Called(ctx, affiliationID, hrEmail)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock AssignmentRepository ---
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) FindAssignmentByID(ctx context.Context, assignmentID string) (*domain.AssignedAsset, error) {
	args := m.Called(ctx, assignmentID)
	var assignment *domain.AssignedAsset
	if args.Get(0) != nil {
		assignment = args.Get(0).(*domain.AssignedAsset)
	}
	return assignment, args.Error(1)
}

func (m *MockAssignmentRepository) ListAssignmentsByEmployee(ctx context.Context, employeeEmail string, opts domain.ListOptions) ([]domain.AssignedAsset, error) {
	args := m.Called(ctx, employeeEmail, opts)
	var assignments []domain.AssignedAsset
	if args.Get(0) != nil {
		assignments = args.Get(0).([]domain.AssignedAsset)
	}
	return assignments, args.Error(1)
}

func (m *MockAssignmentRepository) SaveAssignment(ctx context.Context, assignment domain.AssignedAsset) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockAssignmentRepository) MarkAssignmentReturned(ctx context.Context, assignmentID string, returnedAt time.Time) (*domain.AssignedAsset, error) {
	args := m.Called(ctx, assignmentID, returnedAt)
	var assignment *domain.AssignedAsset
	if args.Get(0) != nil {
		assignment = args.Get(0).(*domain.AssignedAsset)
	}
	return assignment, args.Error(1)
}

// --- Mock PaymentGateway ---
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateCheckoutSession(ctx context.Context, in gateways.CheckoutSessionInput) (*gateways.CheckoutSession, error) {
	args := m.Called(ctx, in)
	var session *gateways.CheckoutSession
	if args.Get(0) != nil {
		session = args.Get(0).(*gateways.CheckoutSession)
	}
	return session, args.Error(1)
}

func (m *MockPaymentGateway) GetCheckoutSession(ctx context.Context, sessionID string) (*gateways.CheckoutSession, error) {
	args := m.Called(ctx, sessionID)
	var session *gateways.CheckoutSession
	if args.Get(0) != nil {
		session = args.Get(0).(*gateways.CheckoutSession)
	}
	return session, args.Error(1)
}
