package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_management_app/internal/core/ports/repositories"
)

type UserRepository struct{ store *Store }

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var found *domain.User
	err := r.store.do(ctx, func(st *state) error {
		u, ok := st.users[email]
		if !ok {
			return apperrors.ErrNotFound
		}
		found = &u
		return nil
	})
	return found, err
}

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return r.store.do(ctx, func(st *state) error {
		if _, ok := st.users[user.Email]; ok {
			return apperrors.ErrDuplicate
		}
		st.users[user.Email] = user
		return nil
	})
}

func (r *UserRepository) AddPackageLimit(ctx context.Context, email string, seats int, subscription string) (*domain.User, error) {
	var updated *domain.User
	err := r.store.do(ctx, func(st *state) error {
		u, ok := st.users[email]
		if !ok {
			return apperrors.ErrNotFound
		}
		u.PackageLimit += seats
		u.Subscription = subscription
		st.users[email] = u
		updated = &u
		return nil
	})
	return updated, err
}

type PackageRepository struct{ store *Store }

var _ portsrepo.PackageRepositoryFacade = (*PackageRepository)(nil)

func (r *PackageRepository) ListPackages(ctx context.Context, opts domain.ListOptions) ([]domain.Package, error) {
	var out []domain.Package
	err := r.store.do(ctx, func(st *state) error {
		for _, p := range st.packages {
			out = append(out, p)
		}
		return nil
	})
	// Largest plan first; ties broken by name for a stable order.
	slices.SortFunc(out, func(a, b domain.Package) int {
		if a.EmployeeLimit != b.EmployeeLimit {
			return b.EmployeeLimit - a.EmployeeLimit
		}
		return strings.Compare(a.Name, b.Name)
	})
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, err
}

func (r *PackageRepository) FindPackageByName(ctx context.Context, name string) (*domain.Package, error) {
	var found *domain.Package
	err := r.store.do(ctx, func(st *state) error {
		for _, p := range st.packages {
			if strings.EqualFold(p.Name, name) {
				found = &p
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
	return found, err
}

type AssetRepository struct{ store *Store }

var _ portsrepo.AssetRepositoryFacade = (*AssetRepository)(nil)

func (r *AssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	var found *domain.Asset
	err := r.store.do(ctx, func(st *state) error {
		a, ok := st.assets[assetID]
		if !ok {
			return apperrors.ErrNotFound
		}
		found = &a
		return nil
	})
	return found, err
}

func (r *AssetRepository) ListAssets(ctx context.Context, filter domain.AssetFilter, opts domain.ListOptions) ([]domain.Asset, error) {
	var out []domain.Asset
	err := r.store.do(ctx, func(st *state) error {
		for _, a := range st.assets {
			if filter.HREmail != "" && a.HREmail != filter.HREmail {
				continue
			}
			if filter.Search != "" && !containsFold(a.ProductName, filter.Search) {
				continue
			}
			out = append(out, a)
		}
		return nil
	})
	return newestFirst(out, func(a domain.Asset) time.Time { return a.DataAdded }, opts.Limit), err
}

func (r *AssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	return r.store.do(ctx, func(st *state) error {
		for _, a := range st.assets {
			if a.ProductName == asset.ProductName {
				return apperrors.ErrDuplicate
			}
		}
		st.assets[asset.AssetID] = asset
		return nil
	})
}

func (r *AssetRepository) DecrementAvailableQuantity(ctx context.Context, assetID string) (int, error) {
	var remaining int
	err := r.store.do(ctx, func(st *state) error {
		a, ok := st.assets[assetID]
		if !ok {
			return apperrors.ErrNotFound
		}
		if a.AvailableQuantity < 1 {
			return apperrors.ErrInsufficientInventory
		}
		a.AvailableQuantity--
		st.assets[assetID] = a
		remaining = a.AvailableQuantity
		return nil
	})
	return remaining, err
}

func (r *AssetRepository) IncrementAvailableQuantity(ctx context.Context, assetID string) (int, error) {
	var quantity int
	err := r.store.do(ctx, func(st *state) error {
		a, ok := st.assets[assetID]
		if !ok {
			return apperrors.ErrNotFound
		}
		a.AvailableQuantity++
		st.assets[assetID] = a
		quantity = a.AvailableQuantity
		return nil
	})
	return quantity, err
}

type RequestRepository struct{ store *Store }

var _ portsrepo.RequestRepositoryFacade = (*RequestRepository)(nil)

func (r *RequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.Request, error) {
	var found *domain.Request
	err := r.store.do(ctx, func(st *state) error {
		req, ok := st.requests[requestID]
		if !ok {
			return apperrors.ErrNotFound
		}
		found = &req
		return nil
	})
	return found, err
}

func (r *RequestRepository) ListRequests(ctx context.Context, filter domain.RequestFilter, opts domain.ListOptions) ([]domain.Request, error) {
	var out []domain.Request
	err := r.store.do(ctx, func(st *state) error {
		for _, req := range st.requests {
			if filter.HREmail != "" && req.HREmail != filter.HREmail {
				continue
			}
			if filter.RequesterEmail != "" && req.RequesterEmail != filter.RequesterEmail {
				continue
			}
			if filter.Status != "" && req.RequestStatus != filter.Status {
				continue
			}
			out = append(out, req)
		}
		return nil
	})
	return newestFirst(out, func(r domain.Request) time.Time { return r.RequestDate }, opts.Limit), err
}

func (r *RequestRepository) SaveRequest(ctx context.Context, request domain.Request) error {
	return r.store.do(ctx, func(st *state) error {
		st.requests[request.RequestID] = request
		return nil
	})
}

func (r *RequestRepository) UpdateRequestStatus(ctx context.Context, requestID string, status domain.RequestStatus, decidedAt time.Time) (*domain.Request, error) {
	var updated *domain.Request
	err := r.store.do(ctx, func(st *state) error {
		req, ok := st.requests[requestID]
		if !ok {
			return apperrors.ErrNotFound
		}
		if req.RequestStatus != domain.RequestPending {
			return apperrors.ErrConflict
		}
		req.RequestStatus = status
		req.ApprovalDate = &decidedAt
		st.requests[requestID] = req
		updated = &req
		return nil
	})
	return updated, err
}

type PaymentRepository struct{ store *Store }

var _ portsrepo.PaymentRepositoryFacade = (*PaymentRepository)(nil)

func (r *PaymentRepository) FindPaymentByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	var found *domain.Payment
	err := r.store.do(ctx, func(st *state) error {
		p, ok := st.payments[transactionID]
		if !ok {
			return apperrors.ErrNotFound
		}
		found = &p
		return nil
	})
	return found, err
}

func (r *PaymentRepository) ListPaymentsByHR(ctx context.Context, hrEmail string, opts domain.ListOptions) ([]domain.Payment, error) {
	var out []domain.Payment
	err := r.store.do(ctx, func(st *state) error {
		for _, p := range st.payments {
			if p.HREmail == hrEmail {
				out = append(out, p)
			}
		}
		return nil
	})
	return newestFirst(out, func(p domain.Payment) time.Time { return p.PaymentDate }, opts.Limit), err
}

func (r *PaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	return r.store.do(ctx, func(st *state) error {
		if _, ok := st.payments[payment.TransactionID]; ok {
			return apperrors.ErrDuplicate
		}
		st.payments[payment.TransactionID] = payment
		return nil
	})
}

type AffiliationRepository struct{ store *Store }

var _ portsrepo.AffiliationRepositoryFacade = (*AffiliationRepository)(nil)

func (r *AffiliationRepository) FindAffiliation(ctx context.Context, employeeEmail, hrEmail string) (*domain.Affiliation, error) {
	var found *domain.Affiliation
	err := r.store.do(ctx, func(st *state) error {
		for _, a := range st.affiliations {
			if a.EmployeeEmail == employeeEmail && a.HREmail == hrEmail {
				found = &a
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
	return found, err
}

func (r *AffiliationRepository) ListAffiliations(ctx context.Context, hrEmail string, opts domain.ListOptions) ([]domain.Affiliation, error) {
	var out []domain.Affiliation
	err := r.store.do(ctx, func(st *state) error {
		for _, a := range st.affiliations {
			if hrEmail == "" || a.HREmail == hrEmail {
				out = append(out, a)
			}
		}
		return nil
	})
	return newestFirst(out, func(a domain.Affiliation) time.Time { return a.AffiliationDate }, opts.Limit), err
}

func (r *AffiliationRepository) SaveAffiliation(ctx context.Context, affiliation domain.Affiliation) error {
	return r.store.do(ctx, func(st *state) error {
		for _, a := range st.affiliations {
			if a.EmployeeEmail == affiliation.EmployeeEmail && a.HREmail == affiliation.HREmail {
				return apperrors.ErrDuplicate
			}
		}
		st.affiliations[affiliation.AffiliationID] = affiliation
		return nil
	})
}

func (r *AffiliationRepository) DeleteAffiliation(ctx context.Context, affiliationID, hrEmail string) (int64, error) {
	var deleted int64
	err := r.store.do(ctx, func(st *state) error {
		if a, ok := st.affiliations[affiliationID]; ok && domain.SameEmail(a.HREmail, hrEmail) {
			delete(st.affiliations, affiliationID)
			deleted = 1
		}
		return nil
	})
	return deleted, err
}

type AssignmentRepository struct{ store *Store }

var _ portsrepo.AssignmentRepositoryFacade = (*AssignmentRepository)(nil)

func (r *AssignmentRepository) FindAssignmentByID(ctx context.Context, assignmentID string) (*domain.AssignedAsset, error) {
	var found *domain.AssignedAsset
	err := r.store.do(ctx, func(st *state) error {
		a, ok := st.assignments[assignmentID]
		if !ok {
			return apperrors.ErrNotFound
		}
		found = &a
		return nil
	})
	return found, err
}

func (r *AssignmentRepository) ListAssignmentsByEmployee(ctx context.Context, employeeEmail string, opts domain.ListOptions) ([]domain.AssignedAsset, error) {
	var out []domain.AssignedAsset
	err := r.store.do(ctx, func(st *state) error {
		for _, a := range st.assignments {
			if a.EmployeeEmail == employeeEmail {
				out = append(out, a)
			}
		}
		return nil
	})
	return newestFirst(out, func(a domain.AssignedAsset) time.Time { return a.AssignedDate }, opts.Limit), err
}

func (r *AssignmentRepository) SaveAssignment(ctx context.Context, assignment domain.AssignedAsset) error {
	return r.store.do(ctx, func(st *state) error {
		st.assignments[assignment.AssignmentID] = assignment
		return nil
	})
}

func (r *AssignmentRepository) MarkAssignmentReturned(ctx context.Context, assignmentID string, returnedAt time.Time) (*domain.AssignedAsset, error) {
	var updated *domain.AssignedAsset
	err := r.store.do(ctx, func(st *state) error {
		a, ok := st.assignments[assignmentID]
		if !ok {
			return apperrors.ErrNotFound
		}
		if a.Status != domain.AssignmentAssigned {
			return apperrors.ErrConflict
		}
		a.Status = domain.AssignmentReturned
		a.ReturnDate = &returnedAt
		st.assignments[assignmentID] = a
		updated = &a
		return nil
	})
	return updated, err
}
