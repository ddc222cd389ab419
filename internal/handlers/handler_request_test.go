package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/asset_management_app/internal/adapters/identity"
	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/asset_management_app/internal/core/ports/services"
	"github.com/SscSPs/asset_management_app/internal/dto"
	"github.com/SscSPs/asset_management_app/internal/handlers"
	"github.com/SscSPs/asset_management_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret = "test-secret-key-that-is-long-enough"
	hrEmail    = "hr@acme.com"
)

type RequestHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAuthService    *MockAuthService
	mockRequestService *MockRequestService
	mockPaymentService *MockPaymentService
}

func (suite *RequestHandlerTestSuite) SetupTest() {
	suite.router = gin.New()
	suite.mockAuthService = new(MockAuthService)
	suite.mockRequestService = new(MockRequestService)
	suite.mockPaymentService = new(MockPaymentService)

	cfg := &config.Config{IsProduction: true, ListMaxLimit: 50}
	services := &portssvc.ServiceContainer{
		Auth:    suite.mockAuthService,
		Request: suite.mockRequestService,
		Payment: suite.mockPaymentService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services, identity.NewJWTVerifier(testSecret, ""), nil)
}

// generateTestToken signs a short-lived token for email.
func (suite *RequestHandlerTestSuite) generateTestToken(email string) string {
	token, err := identity.IssueToken(testSecret, "", email, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *RequestHandlerTestSuite) do(method, url, email string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if email != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(email))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RequestHandlerTestSuite) decodeError(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var body dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.False(body.Success)
	return body
}

// --- Test Cases ---

func (suite *RequestHandlerTestSuite) TestUpdateRequest_Approved() {
	requestID := uuid.NewString()
	assetID := uuid.NewString()
	decision := &domain.RequestDecision{
		Request:            domain.Request{RequestID: requestID, RequestStatus: domain.RequestApproved},
		Asset:              &domain.AssetQuantity{AssetID: assetID, AvailableQuantity: 4},
		Assignment:         &domain.AssignedAsset{AssignmentID: uuid.NewString(), AssetID: assetID},
		AffiliationCreated: true,
	}
	body := dto.UpdateRequestStatusRequest{Status: domain.RequestApproved, AssetID: assetID}

	suite.mockAuthService.On("AuthorizeRole", mock.Anything, hrEmail, domain.RoleHR).Return(nil).Once()
	suite.mockRequestService.On("UpdateRequestStatus", mock.Anything, requestID, body, hrEmail).Return(decision, nil).Once()

	w := suite.do(http.MethodPatch, "/update-request/"+requestID, hrEmail, body)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RequestDecisionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.True(resp.AffiliationCreated)
	suite.Equal(domain.RequestApproved, resp.Request.RequestStatus)
	suite.Require().NotNil(resp.Asset)
	suite.Equal(4, resp.Asset.AvailableQuantity)
	suite.NotNil(resp.Assignment)
	suite.mockRequestService.AssertExpectations(suite.T())
}

func (suite *RequestHandlerTestSuite) TestUpdateRequest_ErrorMapping() {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{fmt.Errorf("%w: assetId is required to approve a request", apperrors.ErrValidation), http.StatusBadRequest, "assetId is required to approve a request"},
		{fmt.Errorf("%w: Request not found", apperrors.ErrNotFound), http.StatusNotFound, "Request not found"},
		{fmt.Errorf("%w: Request already processed", apperrors.ErrConflict), http.StatusConflict, "Request already processed"},
		{fmt.Errorf("%w: Insufficient inventory", apperrors.ErrInsufficientInventory), http.StatusConflict, "Insufficient inventory"},
		{fmt.Errorf("%w: request belongs to another employer", apperrors.ErrForbidden), http.StatusForbidden, "request belongs to another employer"},
		{fmt.Errorf("failed to decrement inventory: %w", fmt.Errorf("connection reset")), http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tt := range tests {
		suite.Run(tt.message, func() {
			suite.SetupTest()
			requestID := uuid.NewString()
			suite.mockAuthService.On("AuthorizeRole", mock.Anything, hrEmail, domain.RoleHR).Return(nil).Once()
			suite.mockRequestService.On("UpdateRequestStatus", mock.Anything, requestID, mock.Anything, hrEmail).Return(nil, tt.err).Once()

			w := suite.do(http.MethodPatch, "/update-request/"+requestID, hrEmail, map[string]string{"status": "rejected"})

			suite.Equal(tt.status, w.Code)
			suite.Equal(tt.message, suite.decodeError(w).Message)
		})
	}
}

func (suite *RequestHandlerTestSuite) TestUpdateRequest_InvalidStatusRejectedBeforeService() {
	suite.mockAuthService.On("AuthorizeRole", mock.Anything, hrEmail, domain.RoleHR).Return(nil).Once()

	w := suite.do(http.MethodPatch, "/update-request/"+uuid.NewString(), hrEmail, map[string]string{"status": "pending"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.decodeError(w)
	suite.mockRequestService.AssertNotCalled(suite.T(), "UpdateRequestStatus")
}

func (suite *RequestHandlerTestSuite) TestUpdateRequest_UnknownFieldRejected() {
	suite.mockAuthService.On("AuthorizeRole", mock.Anything, hrEmail, domain.RoleHR).Return(nil).Once()

	w := suite.do(http.MethodPatch, "/update-request/"+uuid.NewString(), hrEmail, map[string]string{"status": "approved", "bogus": "x"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRequestService.AssertNotCalled(suite.T(), "UpdateRequestStatus")
}

func (suite *RequestHandlerTestSuite) TestUpdateRequest_MissingToken() {
	w := suite.do(http.MethodPatch, "/update-request/"+uuid.NewString(), "", map[string]string{"status": "approved"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("unauthorized access", suite.decodeError(w).Message)
	suite.mockAuthService.AssertNotCalled(suite.T(), "AuthorizeRole")
}

func (suite *RequestHandlerTestSuite) TestUpdateRequest_NotHR() {
	suite.mockAuthService.On("AuthorizeRole", mock.Anything, "emp@acme.com", domain.RoleHR).Return(apperrors.ErrForbidden).Once()

	w := suite.do(http.MethodPatch, "/update-request/"+uuid.NewString(), "emp@acme.com", map[string]string{"status": "approved"})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("forbidden access", suite.decodeError(w).Message)
	suite.mockRequestService.AssertNotCalled(suite.T(), "UpdateRequestStatus")
}

func (suite *RequestHandlerTestSuite) TestAllRequest_OtherEmployerForbidden() {
	suite.mockAuthService.On("AuthorizeRole", mock.Anything, hrEmail, domain.RoleHR).Return(nil).Once()

	w := suite.do(http.MethodGet, "/all-request/other@acme.com", hrEmail, nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockRequestService.AssertNotCalled(suite.T(), "ListRequests")
}

func (suite *RequestHandlerTestSuite) TestAllRequest_LimitCapped() {
	suite.mockAuthService.On("AuthorizeRole", mock.Anything, hrEmail, domain.RoleHR).Return(nil).Once()
	suite.mockRequestService.On("ListRequests", mock.Anything,
		domain.RequestFilter{HREmail: hrEmail, Status: domain.RequestPending},
		domain.ListOptions{Limit: 50},
	).Return([]domain.Request{{RequestID: "r1"}}, nil).Once()

	w := suite.do(http.MethodGet, "/all-request/"+hrEmail+"?status=pending&limit=1000", hrEmail, nil)

	suite.Equal(http.StatusOK, w.Code)
	var requests []domain.Request
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &requests))
	suite.Len(requests, 1)
	suite.mockRequestService.AssertExpectations(suite.T())
}

func (suite *RequestHandlerTestSuite) TestAddRequest_DefaultsToCaller() {
	assetID := uuid.NewString()
	body := dto.CreateRequestRequest{AssetID: assetID, AdditionalNote: "for onboarding"}
	stored := &domain.Request{RequestID: uuid.NewString(), AssetID: assetID, RequesterEmail: "emp@acme.com", RequestStatus: domain.RequestPending}
	suite.mockRequestService.On("SubmitRequest", mock.Anything, body, "emp@acme.com").Return(stored, nil).Once()

	w := suite.do(http.MethodPost, "/add-request", "emp@acme.com", body)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockRequestService.AssertExpectations(suite.T())
}

func (suite *RequestHandlerTestSuite) TestReconcile_Responses() {
	suite.mockPaymentService.On("ReconcilePayment", mock.Anything, "cs_unpaid").Return(&domain.Reconciliation{Paid: false}, nil).Once()
	suite.mockPaymentService.On("ReconcilePayment", mock.Anything, "cs_again").Return(&domain.Reconciliation{Paid: true, AlreadyProcessed: true}, nil).Once()
	suite.mockPaymentService.On("ReconcilePayment", mock.Anything, "").Return(nil, fmt.Errorf("%w: session_id is required", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPatch, "/package-payment-successful?session_id=cs_unpaid", hrEmail, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"success":false}`, w.Body.String())

	w = suite.do(http.MethodPatch, "/package-payment-successful?session_id=cs_again", hrEmail, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"success":true,"alreadyProcessed":true}`, w.Body.String())

	w = suite.do(http.MethodPatch, "/package-payment-successful", hrEmail, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("session_id is required", suite.decodeError(w).Message)
}

func (suite *RequestHandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"status":"ok"}`, w.Body.String())
}

// --- Run Test Suite ---
func TestRequestHandler(t *testing.T) {
	suite.Run(t, new(RequestHandlerTestSuite))
}
