// Package memory keeps the whole domain in process memory. It backs local
// development (DB_DRIVER=memory) and the handler scenario tests.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_management_app/internal/core/ports/repositories"
)

type state struct {
	users        map[string]domain.User // by email
	packages     map[string]domain.Package
	assets       map[string]domain.Asset
	requests     map[string]domain.Request
	payments     map[string]domain.Payment // by transactionId
	affiliations map[string]domain.Affiliation
	assignments  map[string]domain.AssignedAsset
}

func newState() *state {
	return &state{
		users:        map[string]domain.User{},
		packages:     map[string]domain.Package{},
		assets:       map[string]domain.Asset{},
		requests:     map[string]domain.Request{},
		payments:     map[string]domain.Payment{},
		affiliations: map[string]domain.Affiliation{},
		assignments:  map[string]domain.AssignedAsset{},
	}
}

func (s *state) clone() *state {
	return &state{
		users:        cloneMap(s.users),
		packages:     cloneMap(s.packages),
		assets:       cloneMap(s.assets),
		requests:     cloneMap(s.requests),
		payments:     cloneMap(s.payments),
		affiliations: cloneMap(s.affiliations),
		assignments:  cloneMap(s.assignments),
	}
}

func cloneMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Store is the shared state behind every memory repository. A single mutex
// serialises access; a transaction holds it for the whole unit of work.
type Store struct {
	mu   sync.Mutex
	data *state
}

// NewStore returns a store seeded with the default package catalog.
func NewStore() *Store {
	s := &Store{data: newState()}
	for _, pkg := range domain.DefaultCatalog() {
		s.data.packages[pkg.PackageID] = pkg
	}
	return s
}

type txCtxKey struct{}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txCtxKey{}).(*Store)
	return owner == s
}

// do runs fn against the state, locking unless ctx already carries this
// store's transaction.
func (s *Store) do(ctx context.Context, fn func(st *state) error) error {
	if s.inTx(ctx) {
		return fn(s.data)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

// WithinTransaction snapshots the state and restores it when fn fails or panics.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	defer func() {
		if p := recover(); p != nil {
			s.data = snapshot
			panic(p)
		}
		if err != nil {
			s.data = snapshot
		}
	}()

	return fn(context.WithValue(ctx, txCtxKey{}, s))
}

var _ portsrepo.TransactionManager = (*Store)(nil)

// newestFirst sorts by the time key descending and applies a positive limit.
func newestFirst[T any](items []T, at func(T) time.Time, limit int) []T {
	slices.SortStableFunc(items, func(a, b T) int {
		return at(b).Compare(at(a))
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// NewRepositoryProvider wires every memory repository onto store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:       store,
		UserRepo:        &UserRepository{store: store},
		PackageRepo:     &PackageRepository{store: store},
		AssetRepo:       &AssetRepository{store: store},
		RequestRepo:     &RequestRepository{store: store},
		PaymentRepo:     &PaymentRepository{store: store},
		AffiliationRepo: &AffiliationRepository{store: store},
		AssignmentRepo:  &AssignmentRepository{store: store},
	}
}
