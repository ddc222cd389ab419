package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/asset_management_app/internal/adapters/database/repotest"
	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinTransactionRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repos := NewRepositoryProvider(store)
	require.NoError(t, repos.AssetRepo.SaveAsset(ctx, domain.Asset{AssetID: "a1", ProductName: "Laptop", AvailableQuantity: 2}))

	boom := errors.New("boom")
	err := repos.TxManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		remaining, err := repos.AssetRepo.DecrementAvailableQuantity(txCtx, "a1")
		require.NoError(t, err)
		assert.Equal(t, 1, remaining)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	asset, err := repos.AssetRepo.FindAssetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 2, asset.AvailableQuantity)
}

func TestWithinTransactionCommits(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositoryProvider(NewStore())
	require.NoError(t, repos.UserRepo.SaveUser(ctx, domain.User{UserID: "u1", Email: "hr@x.com"}))

	err := repos.TxManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		// nested call joins the outer transaction instead of deadlocking
		return repos.TxManager.WithinTransaction(txCtx, func(inner context.Context) error {
			_, err := repos.UserRepo.AddPackageLimit(inner, "hr@x.com", 5, "Basic")
			return err
		})
	})
	require.NoError(t, err)

	user, err := repos.UserRepo.FindUserByEmail(ctx, "hr@x.com")
	require.NoError(t, err)
	assert.Equal(t, 5, user.PackageLimit)
	assert.Equal(t, "Basic", user.Subscription)
}

func TestDecrementAvailableQuantity(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositoryProvider(NewStore())
	require.NoError(t, repos.AssetRepo.SaveAsset(ctx, domain.Asset{AssetID: "a1", ProductName: "Mouse", AvailableQuantity: 1}))

	remaining, err := repos.AssetRepo.DecrementAvailableQuantity(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)

	_, err = repos.AssetRepo.DecrementAvailableQuantity(ctx, "a1")
	assert.ErrorIs(t, err, apperrors.ErrInsufficientInventory)

	_, err = repos.AssetRepo.DecrementAvailableQuantity(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateRequestStatusIsMonotonic(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositoryProvider(NewStore())
	require.NoError(t, repos.RequestRepo.SaveRequest(ctx, domain.Request{RequestID: "r1", RequestStatus: domain.RequestPending}))

	updated, err := repos.RequestRepo.UpdateRequestStatus(ctx, "r1", domain.RequestApproved, time.Now())
	require.NoError(t, err)
	assert.Equal(t, domain.RequestApproved, updated.RequestStatus)
	assert.NotNil(t, updated.ApprovalDate)

	_, err = repos.RequestRepo.UpdateRequestStatus(ctx, "r1", domain.RequestRejected, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestListsAreNewestFirstAndLimited(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositoryProvider(NewStore())
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"old", "mid", "new"} {
		require.NoError(t, repos.AssetRepo.SaveAsset(ctx, domain.Asset{
			AssetID: name, ProductName: name, HREmail: "hr@x.com", DataAdded: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	assets, err := repos.AssetRepo.ListAssets(ctx, domain.AssetFilter{HREmail: "hr@x.com"}, domain.ListOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.Equal(t, "new", assets[0].AssetID)
	assert.Equal(t, "mid", assets[1].AssetID)
}

func TestPackagesSeededAndFoundIgnoringCase(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositoryProvider(NewStore())

	pkgs, err := repos.PackageRepo.ListPackages(ctx, domain.ListOptions{})
	require.NoError(t, err)
	require.Len(t, pkgs, 3)
	assert.Equal(t, "Premium", pkgs[0].Name)

	pkg, err := repos.PackageRepo.FindPackageByName(ctx, "standard")
	require.NoError(t, err)
	assert.Equal(t, 10, pkg.EmployeeLimit)
}

func TestSaveAffiliationRejectsDuplicatePair(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositoryProvider(NewStore())
	aff := domain.Affiliation{AffiliationID: "f1", EmployeeEmail: "e@x.com", HREmail: "hr@x.com"}
	require.NoError(t, repos.AffiliationRepo.SaveAffiliation(ctx, aff))

	aff.AffiliationID = "f2"
	assert.ErrorIs(t, repos.AffiliationRepo.SaveAffiliation(ctx, aff), apperrors.ErrDuplicate)

	deleted, err := repos.AffiliationRepo.DeleteAffiliation(ctx, "f1", "HR@x.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)
	deleted, err = repos.AffiliationRepo.DeleteAffiliation(ctx, "f1", "hr@x.com")
	require.NoError(t, err)
	assert.EqualValues(t, 0, deleted)
}

func TestRepositoryContract(t *testing.T) {
	repotest.Run(t, NewRepositoryProvider(NewStore()))
}
