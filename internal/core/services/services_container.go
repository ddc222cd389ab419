package services

import (
	"github.com/SscSPs/asset_management_app/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/asset_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/asset_management_app/internal/core/ports/services"
	"github.com/SscSPs/asset_management_app/internal/platform/config"
	"github.com/SscSPs/asset_management_app/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	paymentGateway gateways.PaymentGateway,
	m *metrics.Metrics,
) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:    NewAuthService(repos.UserRepo),
		User:    NewUserService(repos.UserRepo),
		Package: NewPackageService(repos.PackageRepo),
		Asset:   NewAssetService(repos.AssetRepo),
		Request: NewRequestService(
			repos.TxManager,
			repos.RequestRepo,
			repos.AssetRepo,
			repos.AssignmentRepo,
			repos.AffiliationRepo,
			WithRequestMetrics(m),
		),
		Payment: NewPaymentService(
			repos.TxManager,
			repos.PaymentRepo,
			repos.UserRepo,
			repos.PackageRepo,
			paymentGateway,
			WithCheckoutSettings(cfg.WebsiteDomain, cfg.PaymentCurrency, cfg.PaymentAmountMultiplier),
			WithPaymentMetrics(m),
		),
		Affiliation: NewAffiliationService(repos.AffiliationRepo),
		Assignment: NewAssignmentService(
			repos.TxManager,
			repos.AssignmentRepo,
			repos.AssetRepo,
			WithAssignmentMetrics(m),
		),
	}
}
