package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/asset_management_app/internal/adapters/database/memory"
	"github.com/SscSPs/asset_management_app/internal/adapters/identity"
	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	"github.com/SscSPs/asset_management_app/internal/core/ports/gateways"
	"github.com/SscSPs/asset_management_app/internal/core/services"
	"github.com/SscSPs/asset_management_app/internal/dto"
	"github.com/SscSPs/asset_management_app/internal/handlers"
	"github.com/SscSPs/asset_management_app/internal/platform/config"
	"github.com/SscSPs/asset_management_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway serves checkout sessions from memory.
type fakeGateway struct {
	mu       sync.Mutex
	sessions map[string]*gateways.CheckoutSession
	created  []gateways.CheckoutSessionInput
}

func (g *fakeGateway) CreateCheckoutSession(_ context.Context, in gateways.CheckoutSessionInput) (*gateways.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.created = append(g.created, in)
	return &gateways.CheckoutSession{ID: "cs_new", URL: "https://checkout.test/cs_new"}, nil
}

func (g *fakeGateway) GetCheckoutSession(_ context.Context, id string) (*gateways.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: no such session", apperrors.ErrValidation)
	}
	return s, nil
}

type scenario struct {
	t       *testing.T
	router  *gin.Engine
	gateway *fakeGateway
	metrics *metrics.Metrics
}

func newScenario(t *testing.T) *scenario {
	t.Helper()
	cfg := &config.Config{
		IsProduction:            true,
		WebsiteDomain:           "https://app.test",
		PaymentCurrency:         "usd",
		PaymentAmountMultiplier: 100,
		ListMaxLimit:            100,
	}
	gw := &fakeGateway{sessions: map[string]*gateways.CheckoutSession{}}
	m := metrics.New()
	repos := memory.NewRepositoryProvider(memory.NewStore())
	container := services.NewServiceContainer(cfg, repos, gw, m)

	r := gin.New()
	handlers.RegisterRoutes(r, cfg, container, identity.NewJWTVerifier(testSecret, ""), m)
	return &scenario{t: t, router: r, gateway: gw, metrics: m}
}

func (s *scenario) call(method, url, email string, body any, out any) int {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if email != "" {
		token, err := identity.IssueToken(testSecret, "", email, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		require.NoError(s.t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	if out != nil && w.Code < 300 {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

func (s *scenario) register(email string, role domain.UserRole) {
	s.t.Helper()
	code := s.call(http.MethodPost, "/users", "", dto.CreateUserRequest{Name: email, Email: email, Role: role, CompanyName: "Acme"}, nil)
	require.Equal(s.t, http.StatusCreated, code)
}

func (s *scenario) addAsset(hr, name string, productType domain.ProductType, quantity int) domain.Asset {
	s.t.Helper()
	var asset domain.Asset
	code := s.call(http.MethodPost, "/add-asset", hr, dto.CreateAssetRequest{
		ProductName: name, ProductType: productType, AvailableQuantity: &quantity,
	}, &asset)
	require.Equal(s.t, http.StatusCreated, code)
	return asset
}

func (s *scenario) request(employee string, asset domain.Asset) domain.Request {
	s.t.Helper()
	var request domain.Request
	code := s.call(http.MethodPost, "/add-request", employee, dto.CreateRequestRequest{AssetID: asset.AssetID}, &request)
	require.Equal(s.t, http.StatusCreated, code)
	return request
}

func (s *scenario) approve(hr string, request domain.Request) (int, dto.RequestDecisionResponse) {
	s.t.Helper()
	var resp dto.RequestDecisionResponse
	code := s.call(http.MethodPatch, "/update-request/"+request.RequestID, hr,
		dto.UpdateRequestStatusRequest{Status: domain.RequestApproved, AssetID: request.AssetID}, &resp)
	return code, resp
}

func (s *scenario) asset(caller, id string) domain.Asset {
	s.t.Helper()
	var assets []domain.Asset
	require.Equal(s.t, http.StatusOK, s.call(http.MethodGet, "/asset-list", caller, nil, &assets))
	for _, a := range assets {
		if a.AssetID == id {
			return a
		}
	}
	s.t.Fatalf("asset %s not listed", id)
	return domain.Asset{}
}

func TestScenario_ApprovalWorkflow(t *testing.T) {
	s := newScenario(t)
	s.register("hr@acme.com", domain.RoleHR)
	s.register("emp@acme.com", domain.RoleEmployee)
	laptop := s.addAsset("hr@acme.com", "Laptop", domain.ProductReturnable, 1)

	first := s.request("emp@acme.com", laptop)
	assert.Equal(t, domain.RequestPending, first.RequestStatus)
	assert.Equal(t, domain.PendingRequestNote, first.Note)
	assert.Equal(t, "hr@acme.com", first.HREmail, "employer copied from the asset")
	assert.Nil(t, first.ApprovalDate)

	code, decision := s.approve("hr@acme.com", first)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, decision.Success)
	assert.True(t, decision.AffiliationCreated)
	assert.Equal(t, domain.RequestApproved, decision.Request.RequestStatus)
	require.NotNil(t, decision.Asset)
	assert.Equal(t, 0, decision.Asset.AvailableQuantity)
	require.NotNil(t, decision.Assignment)
	assert.Equal(t, "emp@acme.com", decision.Assignment.EmployeeEmail)
	assert.Equal(t, domain.AssignmentAssigned, decision.Assignment.Status)

	// deciding twice is a conflict
	code, _ = s.approve("hr@acme.com", first)
	assert.Equal(t, http.StatusConflict, code)

	// out of stock: the whole decision rolls back and the request stays pending
	second := s.request("emp@acme.com", laptop)
	code, _ = s.approve("hr@acme.com", second)
	assert.Equal(t, http.StatusConflict, code)

	var pending []domain.Request
	require.Equal(t, http.StatusOK, s.call(http.MethodGet, "/all-request/hr@acme.com?status=pending", "hr@acme.com", nil, &pending))
	require.Len(t, pending, 1)
	assert.Equal(t, second.RequestID, pending[0].RequestID)
	assert.Equal(t, 0, s.asset("hr@acme.com", laptop.AssetID).AvailableQuantity)

	// a second approval for the same employee does not duplicate the affiliation
	monitor := s.addAsset("hr@acme.com", "Monitor", domain.ProductReturnable, 3)
	code, decision = s.approve("hr@acme.com", s.request("emp@acme.com", monitor))
	require.Equal(t, http.StatusOK, code)
	assert.False(t, decision.AffiliationCreated)

	var team []domain.Affiliation
	require.Equal(t, http.StatusOK, s.call(http.MethodGet, "/employee/hr@acme.com", "hr@acme.com", nil, &team))
	assert.Len(t, team, 1)

	var assigned []domain.AssignedAsset
	require.Equal(t, http.StatusOK, s.call(http.MethodGet, "/assigned-asset/emp@acme.com", "emp@acme.com", nil, &assigned))
	require.Len(t, assigned, 2)
}

func TestScenario_ApprovalValidationMutatesNothing(t *testing.T) {
	s := newScenario(t)
	s.register("hr@acme.com", domain.RoleHR)
	s.register("emp@acme.com", domain.RoleEmployee)
	laptop := s.addAsset("hr@acme.com", "Laptop", domain.ProductReturnable, 2)
	request := s.request("emp@acme.com", laptop)

	code := s.call(http.MethodPatch, "/update-request/"+request.RequestID, "hr@acme.com",
		dto.UpdateRequestStatusRequest{Status: domain.RequestApproved}, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code = s.call(http.MethodPatch, "/update-request/not-a-uuid", "hr@acme.com",
		dto.UpdateRequestStatusRequest{Status: domain.RequestRejected}, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	assert.Equal(t, 2, s.asset("hr@acme.com", laptop.AssetID).AvailableQuantity)
	var mine []domain.Request
	require.Equal(t, http.StatusOK, s.call(http.MethodGet, "/my-requests", "emp@acme.com", nil, &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, domain.RequestPending, mine[0].RequestStatus)
}

func TestScenario_RejectOnlyChangesStatus(t *testing.T) {
	s := newScenario(t)
	s.register("hr@acme.com", domain.RoleHR)
	s.register("emp@acme.com", domain.RoleEmployee)
	laptop := s.addAsset("hr@acme.com", "Laptop", domain.ProductReturnable, 1)
	request := s.request("emp@acme.com", laptop)

	var resp dto.RequestDecisionResponse
	code := s.call(http.MethodPatch, "/update-request/"+request.RequestID, "hr@acme.com",
		dto.UpdateRequestStatusRequest{Status: domain.RequestRejected}, &resp)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, domain.RequestRejected, resp.Request.RequestStatus)
	assert.NotNil(t, resp.Request.ApprovalDate)
	assert.Nil(t, resp.Asset)
	assert.Nil(t, resp.Assignment)
	assert.Equal(t, 1, s.asset("hr@acme.com", laptop.AssetID).AvailableQuantity)
}

func TestScenario_ConcurrentApprovalsNeverOversell(t *testing.T) {
	s := newScenario(t)
	s.register("hr@acme.com", domain.RoleHR)
	s.register("emp@acme.com", domain.RoleEmployee)
	const stock = 3
	laptop := s.addAsset("hr@acme.com", "Laptop", domain.ProductReturnable, stock)

	requests := make([]domain.Request, 10)
	for i := range requests {
		requests[i] = s.request("emp@acme.com", laptop)
	}

	codes := make([]int, len(requests))
	var wg sync.WaitGroup
	for i, req := range requests {
		wg.Add(1)
		go func() {
			defer wg.Done()
			codes[i], _ = s.approve("hr@acme.com", req)
		}()
	}
	wg.Wait()

	approved := 0
	for _, code := range codes {
		if code == http.StatusOK {
			approved++
		} else {
			assert.Equal(t, http.StatusConflict, code)
		}
	}
	assert.Equal(t, stock, approved)
	assert.Equal(t, 0, s.asset("hr@acme.com", laptop.AssetID).AvailableQuantity)
}

func TestScenario_ReturnAsset(t *testing.T) {
	s := newScenario(t)
	s.register("hr@acme.com", domain.RoleHR)
	s.register("emp@acme.com", domain.RoleEmployee)
	s.register("other@acme.com", domain.RoleEmployee)
	laptop := s.addAsset("hr@acme.com", "Laptop", domain.ProductReturnable, 1)
	_, decision := s.approve("hr@acme.com", s.request("emp@acme.com", laptop))
	require.NotNil(t, decision.Assignment)
	returnURL := "/return-asset/" + decision.Assignment.AssignmentID

	assert.Equal(t, http.StatusForbidden, s.call(http.MethodPatch, returnURL, "other@acme.com", nil, nil))

	var returned domain.AssignedAsset
	require.Equal(t, http.StatusOK, s.call(http.MethodPatch, returnURL, "emp@acme.com", nil, &returned))
	assert.Equal(t, domain.AssignmentReturned, returned.Status)
	assert.NotNil(t, returned.ReturnDate)
	assert.Equal(t, 1, s.asset("hr@acme.com", laptop.AssetID).AvailableQuantity)

	assert.Equal(t, http.StatusConflict, s.call(http.MethodPatch, returnURL, "emp@acme.com", nil, nil))
}

func TestScenario_ReconciliationIsIdempotent(t *testing.T) {
	s := newScenario(t)
	s.register("hr@acme.com", domain.RoleHR)

	var checkout dto.CheckoutSessionResponse
	code := s.call(http.MethodPost, "/create-checkout-session", "hr@acme.com", dto.CreateCheckoutSessionRequest{
		PackageName: "standard", EmployeeLimit: 10, Email: "hr@acme.com",
	}, &checkout)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "https://checkout.test/cs_new", checkout.URL)
	require.Len(t, s.gateway.created, 1)
	in := s.gateway.created[0]
	assert.Equal(t, int64(800), in.UnitAmount)
	assert.Equal(t, "10", in.Metadata["employeeLimit"])
	assert.Equal(t, "Standard", in.Metadata["name"])
	assert.Equal(t, "https://app.test/dashboard/package-payment-successful?session_id={CHECKOUT_SESSION_ID}", in.SuccessURL)

	s.gateway.sessions["cs_paid"] = &gateways.CheckoutSession{
		ID:              "cs_paid",
		PaymentStatus:   "paid",
		CustomerEmail:   "hr@acme.com",
		PaymentIntentID: "pi_1",
		Metadata:        map[string]string{"employeeLimit": "10", "name": "Standard"},
		AmountTotal:     800,
		Currency:        "usd",
	}

	var first dto.ReconcilePaymentResponse
	require.Equal(t, http.StatusOK, s.call(http.MethodPatch, "/package-payment-successful?session_id=cs_paid", "hr@acme.com", nil, &first))
	assert.True(t, first.Success)
	require.NotNil(t, first.Result)
	assert.Equal(t, 10, first.Result.User.PackageLimit)
	assert.Equal(t, "Standard", first.Result.User.Subscription)
	assert.Equal(t, "pi_1", first.Result.Payment.TransactionID)
	assert.Equal(t, "8", first.Result.Payment.Amount.String())

	var second dto.ReconcilePaymentResponse
	require.Equal(t, http.StatusOK, s.call(http.MethodPatch, "/package-payment-successful?session_id=cs_paid", "hr@acme.com", nil, &second))
	assert.True(t, second.Success)
	assert.True(t, second.AlreadyProcessed)

	var payments []domain.Payment
	require.Equal(t, http.StatusOK, s.call(http.MethodGet, "/payment-history/hr@acme.com", "hr@acme.com", nil, &payments))
	assert.Len(t, payments, 1)
}

func TestScenario_RoleLookupAndPackages(t *testing.T) {
	s := newScenario(t)
	s.register("hr@acme.com", domain.RoleHR)

	var role dto.UserRoleResponse
	require.Equal(t, http.StatusOK, s.call(http.MethodGet, "/user-role/hr@acme.com/role", "hr@acme.com", nil, &role))
	assert.Equal(t, "hr", role.Role)
	require.Equal(t, http.StatusOK, s.call(http.MethodGet, "/user-role/nobody@acme.com/role", "hr@acme.com", nil, &role))
	assert.Equal(t, "", role.Role)

	var packages []domain.Package
	require.Equal(t, http.StatusOK, s.call(http.MethodGet, "/packages", "", nil, &packages))
	require.Len(t, packages, 3)
	assert.Equal(t, 20, packages[0].EmployeeLimit)

	assert.Equal(t, http.StatusBadRequest, s.call(http.MethodPost, "/users", "", dto.CreateUserRequest{Name: "x", Email: "hr@acme.com"}, nil))
	assert.Equal(t, http.StatusForbidden, s.call(http.MethodGet, "/my-team", "nobody@acme.com", nil, nil))
	assert.Equal(t, http.StatusNotFound, s.call(http.MethodDelete, "/remove-employee/5d6e1b52-3c1f-4b5e-9a53-1f0a8e2d7c99", "hr@acme.com", nil, nil))
	assert.Equal(t, http.StatusBadRequest, s.call(http.MethodPatch, "/package-payment-successful?session_id=cs_missing", "hr@acme.com", nil, nil))
}

func (s *scenario) teamOf(employee string) []domain.Affiliation {
	s.t.Helper()
	var all, rows []domain.Affiliation
	require.Equal(s.t, http.StatusOK, s.call(http.MethodGet, "/my-team", "hr@acme.com", nil, &all))
	for _, a := range all {
		if a.EmployeeEmail == employee {
			rows = append(rows, a)
		}
	}
	return rows
}

func TestScenario_TwoEmployersTwoAffiliations(t *testing.T) {
	s := newScenario(t)
	s.register("hr@acme.com", domain.RoleHR)
	s.register("hr@globex.com", domain.RoleHR)
	s.register("emp@acme.com", domain.RoleEmployee)
	laptop := s.addAsset("hr@acme.com", "Laptop", domain.ProductReturnable, 1)
	chair := s.addAsset("hr@globex.com", "Chair", domain.ProductNonReturnable, 1)

	code, first := s.approve("hr@acme.com", s.request("emp@acme.com", laptop))
	require.Equal(t, http.StatusOK, code)
	assert.True(t, first.AffiliationCreated)

	// the token carries a differently cased email than the stored account
	code, second := s.approve("HR@Globex.com", s.request("emp@acme.com", chair))
	require.Equal(t, http.StatusOK, code)
	assert.True(t, second.AffiliationCreated)

	rows := s.teamOf("emp@acme.com")
	require.Len(t, rows, 2)
	employers := []string{rows[0].HREmail, rows[1].HREmail}
	assert.ElementsMatch(t, []string{"hr@acme.com", "hr@globex.com"}, employers)
}

func TestScenario_RemoveEmployeeOnlyFromOwnTeam(t *testing.T) {
	s := newScenario(t)
	s.register("hr@acme.com", domain.RoleHR)
	s.register("hr@globex.com", domain.RoleHR)
	s.register("emp@acme.com", domain.RoleEmployee)
	laptop := s.addAsset("hr@acme.com", "Laptop", domain.ProductReturnable, 1)
	_, decision := s.approve("hr@acme.com", s.request("emp@acme.com", laptop))
	require.True(t, decision.AffiliationCreated)

	rows := s.teamOf("emp@acme.com")
	require.Len(t, rows, 1)
	removeURL := "/remove-employee/" + rows[0].AffiliationID

	assert.Equal(t, http.StatusNotFound, s.call(http.MethodDelete, removeURL, "hr@globex.com", nil, nil))
	require.Len(t, s.teamOf("emp@acme.com"), 1, "another employer's removal leaves the link in place")

	var resp dto.DeleteResponse
	require.Equal(t, http.StatusOK, s.call(http.MethodDelete, removeURL, "hr@acme.com", nil, &resp))
	assert.Equal(t, int64(1), resp.DeletedCount)
	assert.Empty(t, s.teamOf("emp@acme.com"))
}

func TestScenario_ApprovalMustUseTheRequestedAsset(t *testing.T) {
	s := newScenario(t)
	s.register("hr@acme.com", domain.RoleHR)
	s.register("emp@acme.com", domain.RoleEmployee)
	laptop := s.addAsset("hr@acme.com", "Laptop", domain.ProductReturnable, 5)
	chair := s.addAsset("hr@acme.com", "Chair", domain.ProductNonReturnable, 5)
	request := s.request("emp@acme.com", laptop)

	code := s.call(http.MethodPatch, "/update-request/"+request.RequestID, "hr@acme.com",
		dto.UpdateRequestStatusRequest{Status: domain.RequestApproved, AssetID: chair.AssetID}, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	assert.Equal(t, 5, s.asset("hr@acme.com", laptop.AssetID).AvailableQuantity)
	assert.Equal(t, 5, s.asset("hr@acme.com", chair.AssetID).AvailableQuantity)
	var assigned []domain.AssignedAsset
	require.Equal(t, http.StatusOK, s.call(http.MethodGet, "/assigned-asset/emp@acme.com", "emp@acme.com", nil, &assigned))
	assert.Empty(t, assigned)

	code, decision := s.approve("hr@acme.com", request)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, laptop.AssetID, decision.Assignment.AssetID)
	assert.Equal(t, "Laptop", decision.Assignment.AssetName)
	assert.Equal(t, 4, s.asset("hr@acme.com", laptop.AssetID).AvailableQuantity)
}
