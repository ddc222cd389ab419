// Package repotest holds the behaviour every storage backend must share.
// Backends call Run from their own tests.
package repotest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_management_app/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run exercises repos against the repository contracts. Every case works on
// freshly generated keys so a shared database can be reused across cases.
func Run(t *testing.T, repos portsrepo.RepositoryProvider) {
	t.Run("users", func(t *testing.T) { testUsers(t, repos) })
	t.Run("packages", func(t *testing.T) { testPackages(t, repos) })
	t.Run("assets", func(t *testing.T) { testAssets(t, repos) })
	t.Run("requests", func(t *testing.T) { testRequests(t, repos) })
	t.Run("payments", func(t *testing.T) { testPayments(t, repos) })
	t.Run("affiliations", func(t *testing.T) { testAffiliations(t, repos) })
	t.Run("assignments", func(t *testing.T) { testAssignments(t, repos) })
	t.Run("rollback", func(t *testing.T) { testRollback(t, repos) })
	t.Run("concurrent decrement", func(t *testing.T) { testConcurrentDecrement(t, repos) })
}

func email(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8] + "@acme.com"
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func newAsset(hrEmail string, quantity int) domain.Asset {
	return domain.Asset{
		AssetID:           uuid.NewString(),
		ProductName:       "Laptop " + uuid.NewString(),
		ProductType:       domain.ProductReturnable,
		AvailableQuantity: quantity,
		HREmail:           hrEmail,
		CompanyName:       "Acme",
		DataAdded:         now(),
	}
}

func testUsers(t *testing.T, repos portsrepo.RepositoryProvider) {
	ctx := context.Background()
	user := domain.User{UserID: uuid.NewString(), Email: email("hr"), Name: "HR", Role: domain.RoleHR, CreatedAt: now()}

	require.NoError(t, repos.UserRepo.SaveUser(ctx, user))
	dup := user
	dup.UserID = uuid.NewString()
	assert.ErrorIs(t, repos.UserRepo.SaveUser(ctx, dup), apperrors.ErrDuplicate)

	found, err := repos.UserRepo.FindUserByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleHR, found.Role)

	_, err = repos.UserRepo.FindUserByEmail(ctx, email("ghost"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	updated, err := repos.UserRepo.AddPackageLimit(ctx, user.Email, 5, "Basic")
	require.NoError(t, err)
	assert.Equal(t, 5, updated.PackageLimit)
	updated, err = repos.UserRepo.AddPackageLimit(ctx, user.Email, 10, "Standard")
	require.NoError(t, err)
	assert.Equal(t, 15, updated.PackageLimit)
	assert.Equal(t, "Standard", updated.Subscription)

	_, err = repos.UserRepo.AddPackageLimit(ctx, email("ghost"), 5, "Basic")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func testPackages(t *testing.T, repos portsrepo.RepositoryProvider) {
	ctx := context.Background()

	packages, err := repos.PackageRepo.ListPackages(ctx, domain.ListOptions{})
	require.NoError(t, err)
	require.Len(t, packages, len(domain.DefaultCatalog()))
	for i := 1; i < len(packages); i++ {
		assert.GreaterOrEqual(t, packages[i-1].EmployeeLimit, packages[i].EmployeeLimit)
	}

	limited, err := repos.PackageRepo.ListPackages(ctx, domain.ListOptions{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	pkg, err := repos.PackageRepo.FindPackageByName(ctx, "premium")
	require.NoError(t, err)
	assert.Equal(t, "Premium", pkg.Name)
	assert.True(t, pkg.Price.Equal(decimal.NewFromInt(15)), pkg.Price.String())

	_, err = repos.PackageRepo.FindPackageByName(ctx, "Gold")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func testAssets(t *testing.T, repos portsrepo.RepositoryProvider) {
	ctx := context.Background()
	hr := email("hr")
	asset := newAsset(hr, 2)

	require.NoError(t, repos.AssetRepo.SaveAsset(ctx, asset))
	dup := newAsset(hr, 1)
	dup.ProductName = asset.ProductName
	assert.ErrorIs(t, repos.AssetRepo.SaveAsset(ctx, dup), apperrors.ErrDuplicate)

	left, err := repos.AssetRepo.DecrementAvailableQuantity(ctx, asset.AssetID)
	require.NoError(t, err)
	assert.Equal(t, 1, left)
	left, err = repos.AssetRepo.DecrementAvailableQuantity(ctx, asset.AssetID)
	require.NoError(t, err)
	assert.Equal(t, 0, left)
	_, err = repos.AssetRepo.DecrementAvailableQuantity(ctx, asset.AssetID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientInventory)

	_, err = repos.AssetRepo.DecrementAvailableQuantity(ctx, uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = repos.AssetRepo.IncrementAvailableQuantity(ctx, uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	left, err = repos.AssetRepo.IncrementAvailableQuantity(ctx, asset.AssetID)
	require.NoError(t, err)
	assert.Equal(t, 1, left)

	older := newAsset(hr, 7)
	older.ProductName = "Monitor " + uuid.NewString()
	older.DataAdded = asset.DataAdded.Add(-time.Hour)
	require.NoError(t, repos.AssetRepo.SaveAsset(ctx, older))

	listed, err := repos.AssetRepo.ListAssets(ctx, domain.AssetFilter{HREmail: hr}, domain.ListOptions{})
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, asset.AssetID, listed[0].AssetID, "newest first")

	searched, err := repos.AssetRepo.ListAssets(ctx, domain.AssetFilter{HREmail: hr, Search: "moni"}, domain.ListOptions{})
	require.NoError(t, err)
	require.Len(t, searched, 1)
	assert.Equal(t, older.AssetID, searched[0].AssetID)

	// metacharacters are matched literally
	none, err := repos.AssetRepo.ListAssets(ctx, domain.AssetFilter{HREmail: hr, Search: "%"}, domain.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, none)

	found, err := repos.AssetRepo.FindAssetByID(ctx, older.AssetID)
	require.NoError(t, err)
	assert.Equal(t, 7, found.AvailableQuantity)
}

func testRequests(t *testing.T, repos portsrepo.RepositoryProvider) {
	ctx := context.Background()
	hr, employee := email("hr"), email("emp")
	base := now()

	first := domain.Request{
		RequestID: uuid.NewString(), AssetID: uuid.NewString(), RequesterEmail: employee, HREmail: hr,
		RequestStatus: domain.RequestPending, RequestDate: base.Add(-time.Minute), Note: domain.PendingRequestNote,
	}
	second := first
	second.RequestID = uuid.NewString()
	second.RequestDate = base
	require.NoError(t, repos.RequestRepo.SaveRequest(ctx, first))
	require.NoError(t, repos.RequestRepo.SaveRequest(ctx, second))

	decided, err := repos.RequestRepo.UpdateRequestStatus(ctx, first.RequestID, domain.RequestApproved, base)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestApproved, decided.RequestStatus)
	require.NotNil(t, decided.ApprovalDate)

	_, err = repos.RequestRepo.UpdateRequestStatus(ctx, first.RequestID, domain.RequestRejected, base)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	_, err = repos.RequestRepo.UpdateRequestStatus(ctx, uuid.NewString(), domain.RequestRejected, base)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	all, err := repos.RequestRepo.ListRequests(ctx, domain.RequestFilter{HREmail: hr}, domain.ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.RequestID, all[0].RequestID, "newest first")

	pending, err := repos.RequestRepo.ListRequests(ctx, domain.RequestFilter{RequesterEmail: employee, Status: domain.RequestPending}, domain.ListOptions{})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.RequestID, pending[0].RequestID)

	stored, err := repos.RequestRepo.FindRequestByID(ctx, first.RequestID)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestApproved, stored.RequestStatus)
}

func testPayments(t *testing.T, repos portsrepo.RepositoryProvider) {
	ctx := context.Background()
	hr := email("hr")
	payment := domain.Payment{
		PaymentID: uuid.NewString(), HREmail: hr, PackageName: "Standard", EmployeeLimit: 10,
		Amount: decimal.RequireFromString("7.99"), Currency: "usd", TransactionID: "pi_" + uuid.NewString(),
		SessionID: "cs_" + uuid.NewString(), PaymentDate: now(), Status: domain.PaymentPaid,
	}

	require.NoError(t, repos.PaymentRepo.SavePayment(ctx, payment))
	again := payment
	again.PaymentID = uuid.NewString()
	assert.ErrorIs(t, repos.PaymentRepo.SavePayment(ctx, again), apperrors.ErrDuplicate)

	found, err := repos.PaymentRepo.FindPaymentByTransactionID(ctx, payment.TransactionID)
	require.NoError(t, err)
	assert.True(t, found.Amount.Equal(payment.Amount), found.Amount.String())

	_, err = repos.PaymentRepo.FindPaymentByTransactionID(ctx, "pi_missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	listed, err := repos.PaymentRepo.ListPaymentsByHR(ctx, hr, domain.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func testAffiliations(t *testing.T, repos portsrepo.RepositoryProvider) {
	ctx := context.Background()
	affiliation := domain.Affiliation{
		AffiliationID: uuid.NewString(), EmployeeEmail: email("emp"), HREmail: email("hr"),
		AffiliationDate: now(), Status: domain.AffiliationActive,
	}

	require.NoError(t, repos.AffiliationRepo.SaveAffiliation(ctx, affiliation))
	dup := affiliation
	dup.AffiliationID = uuid.NewString()
	assert.ErrorIs(t, repos.AffiliationRepo.SaveAffiliation(ctx, dup), apperrors.ErrDuplicate)

	_, err := repos.AffiliationRepo.FindAffiliation(ctx, affiliation.EmployeeEmail, affiliation.HREmail)
	require.NoError(t, err)
	_, err = repos.AffiliationRepo.FindAffiliation(ctx, affiliation.EmployeeEmail, email("other"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	team, err := repos.AffiliationRepo.ListAffiliations(ctx, affiliation.HREmail, domain.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, team, 1)

	deleted, err := repos.AffiliationRepo.DeleteAffiliation(ctx, affiliation.AffiliationID, email("other"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted, "another employer cannot remove the link")
	deleted, err = repos.AffiliationRepo.DeleteAffiliation(ctx, affiliation.AffiliationID, affiliation.HREmail)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	deleted, err = repos.AffiliationRepo.DeleteAffiliation(ctx, affiliation.AffiliationID, affiliation.HREmail)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func testAssignments(t *testing.T, repos portsrepo.RepositoryProvider) {
	ctx := context.Background()
	employee, hr := email("emp"), email("hr")
	asset := newAsset(hr, 0)
	require.NoError(t, repos.AssetRepo.SaveAsset(ctx, asset))
	assignment := domain.AssignedAsset{
		AssignmentID: uuid.NewString(), RequestID: uuid.NewString(), EmployeeEmail: employee,
		AssetID: asset.AssetID, AssetType: domain.ProductReturnable, HREmail: hr,
		AssignedDate: now(), Status: domain.AssignmentAssigned,
	}
	require.NoError(t, repos.AssignmentRepo.SaveAssignment(ctx, assignment))

	returned, err := repos.AssignmentRepo.MarkAssignmentReturned(ctx, assignment.AssignmentID, now())
	require.NoError(t, err)
	assert.Equal(t, domain.AssignmentReturned, returned.Status)
	assert.NotNil(t, returned.ReturnDate)

	_, err = repos.AssignmentRepo.MarkAssignmentReturned(ctx, assignment.AssignmentID, now())
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	_, err = repos.AssignmentRepo.MarkAssignmentReturned(ctx, uuid.NewString(), now())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	listed, err := repos.AssignmentRepo.ListAssignmentsByEmployee(ctx, employee, domain.ListOptions{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, domain.AssignmentReturned, listed[0].Status)
}

func testRollback(t *testing.T, repos portsrepo.RepositoryProvider) {
	ctx := context.Background()
	asset := newAsset(email("hr"), 1)
	require.NoError(t, repos.AssetRepo.SaveAsset(ctx, asset))
	request := domain.Request{
		RequestID: uuid.NewString(), AssetID: asset.AssetID, RequesterEmail: email("emp"),
		RequestStatus: domain.RequestPending, RequestDate: now(), Note: domain.PendingRequestNote,
	}
	require.NoError(t, repos.RequestRepo.SaveRequest(ctx, request))

	boom := errors.New("boom")
	err := repos.TxManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		if _, err := repos.RequestRepo.UpdateRequestStatus(txCtx, request.RequestID, domain.RequestApproved, now()); err != nil {
			return err
		}
		if _, err := repos.AssetRepo.DecrementAvailableQuantity(txCtx, asset.AssetID); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	stored, err := repos.RequestRepo.FindRequestByID(ctx, request.RequestID)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestPending, stored.RequestStatus)
	found, err := repos.AssetRepo.FindAssetByID(ctx, asset.AssetID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.AvailableQuantity)
}

// testConcurrentDecrement checks stock is never oversold. Backends may abort a
// contended transaction, so only the upper bound and the final count are exact.
func testConcurrentDecrement(t *testing.T, repos portsrepo.RepositoryProvider) {
	ctx := context.Background()
	const stock, workers = 3, 10
	asset := newAsset(email("hr"), stock)
	require.NoError(t, repos.AssetRepo.SaveAsset(ctx, asset))

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repos.TxManager.WithinTransaction(ctx, func(txCtx context.Context) error {
				_, err := repos.AssetRepo.DecrementAvailableQuantity(txCtx, asset.AssetID)
				return err
			})
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, successes, stock)
	found, err := repos.AssetRepo.FindAssetByID(ctx, asset.AssetID)
	require.NoError(t, err)
	assert.Equal(t, stock-successes, found.AvailableQuantity)
	assert.GreaterOrEqual(t, found.AvailableQuantity, 0)
}
