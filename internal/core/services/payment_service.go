package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	"github.com/SscSPs/asset_management_app/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/asset_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/asset_management_app/internal/core/ports/services"
	"github.com/SscSPs/asset_management_app/internal/dto"
	"github.com/SscSPs/asset_management_app/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	checkoutSuccessPath = "dashboard/package-payment-successful?session_id={CHECKOUT_SESSION_ID}"
	checkoutCancelPath  = "dashboard/package-payment-declined"

	metadataEmployeeLimit = "employeeLimit"
	metadataPackageName   = "name"
)

// errAlreadyRecorded aborts the reconciliation transaction when a concurrent
// call recorded the same transaction first.
var errAlreadyRecorded = errors.New("payment already recorded")

type paymentService struct {
	BaseService
	txManager     portsrepo.TransactionManager
	paymentRepo   portsrepo.PaymentRepositoryFacade
	userRepo      portsrepo.UserRepositoryFacade
	packageRepo   portsrepo.PackageReader
	gateway       gateways.PaymentGateway
	websiteDomain string
	currency      string
	multiplier    decimal.Decimal
	metrics       *metrics.Metrics
}

// PaymentServiceOption is a functional option for configuring the payment service
type PaymentServiceOption func(*paymentService)

// WithCheckoutSettings sets the redirect base URL, the charge currency and the
// factor turning a catalog price into gateway minor units.
func WithCheckoutSettings(websiteDomain, currency string, amountMultiplier int64) PaymentServiceOption {
	return func(s *paymentService) {
		if websiteDomain != "" && !strings.HasSuffix(websiteDomain, "/") {
			websiteDomain += "/"
		}
		s.websiteDomain = websiteDomain
		if currency != "" {
			s.currency = strings.ToLower(currency)
		}
		if amountMultiplier > 0 {
			s.multiplier = decimal.NewFromInt(amountMultiplier)
		}
	}
}

// WithPaymentMetrics records reconciliation outcomes on m.
func WithPaymentMetrics(m *metrics.Metrics) PaymentServiceOption {
	return func(s *paymentService) {
		s.metrics = m
	}
}

// NewPaymentService creates a new payment service with the provided dependencies
func NewPaymentService(
	txManager portsrepo.TransactionManager,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	packageRepo portsrepo.PackageReader,
	gateway gateways.PaymentGateway,
	options ...PaymentServiceOption,
) portssvc.PaymentSvcFacade {
	s := &paymentService{
		txManager:   txManager,
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		packageRepo: packageRepo,
		gateway:     gateway,
		currency:    "usd",
		multiplier:  decimal.NewFromInt(100),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// CreateCheckoutSession charges the catalog price of the named package. A
// client-sent price or seat count that disagrees with the catalog is ignored.
func (s *paymentService) CreateCheckoutSession(ctx context.Context, req dto.CreateCheckoutSessionRequest) (string, error) {
	pkg, err := s.packageRepo.FindPackageByName(ctx, req.PackageName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: Unknown package", apperrors.ErrValidation)
		}
		s.LogError(ctx, err, "Failed to load package", slog.String("package", req.PackageName))
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	if !req.Price.IsZero() && !req.Price.Equal(pkg.Price) {
		s.GetLogger(ctx).Warn("Client price differs from catalog",
			slog.String("package", pkg.Name),
			slog.String("client_price", req.Price.String()),
			slog.String("catalog_price", pkg.Price.String()))
	}
	if req.EmployeeLimit != pkg.EmployeeLimit {
		s.GetLogger(ctx).Warn("Client employee limit differs from catalog",
			slog.String("package", pkg.Name),
			slog.Int("client_limit", req.EmployeeLimit),
			slog.Int("catalog_limit", pkg.EmployeeLimit))
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, gateways.CheckoutSessionInput{
		PackageName:   pkg.Name,
		EmployeeLimit: pkg.EmployeeLimit,
		CustomerEmail: domain.NormalizeEmail(req.Email),
		UnitAmount:    s.minorUnits(pkg.Price),
		Currency:      s.currency,
		SuccessURL:    s.websiteDomain + checkoutSuccessPath,
		CancelURL:     s.websiteDomain + checkoutCancelPath,
		Metadata: map[string]string{
			metadataEmployeeLimit: strconv.Itoa(pkg.EmployeeLimit),
			metadataPackageName:   pkg.Name,
		},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create checkout session", slog.String("package", pkg.Name))
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	s.LogInfo(ctx, "Checkout session created", slog.String("session_id", session.ID), slog.String("package", pkg.Name))
	return session.URL, nil
}

// ReconcilePayment is idempotent per gateway transaction: the payment row and
// the seat credit are written together or not at all.
func (s *paymentService) ReconcilePayment(ctx context.Context, sessionID string) (*domain.Reconciliation, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session_id is required", apperrors.ErrValidation)
	}

	session, err := s.gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, fmt.Errorf("%w: Invalid session data", apperrors.ErrValidation)
		}
		s.LogError(ctx, err, "Failed to retrieve checkout session", slog.String("session_id", sessionID))
		return nil, fmt.Errorf("failed to reconcile payment: %w", err)
	}

	hrEmail := domain.NormalizeEmail(session.CustomerEmail)
	seats, err := strconv.Atoi(session.Metadata[metadataEmployeeLimit])
	if err != nil || seats <= 0 || hrEmail == "" {
		s.GetLogger(ctx).Warn("Checkout session lacks reconciliation data", slog.String("session_id", sessionID))
		return nil, fmt.Errorf("%w: Invalid session data", apperrors.ErrValidation)
	}

	if session.PaymentStatus != string(domain.PaymentPaid) {
		s.metrics.PaymentReconciled(metrics.OutcomeUnpaid)
		s.LogInfo(ctx, "Checkout session not paid", slog.String("session_id", sessionID), slog.String("payment_status", session.PaymentStatus))
		return &domain.Reconciliation{Paid: false}, nil
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, hrEmail); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: User not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to reconcile payment: %w", err)
	}

	transactionID := nonEmpty(session.PaymentIntentID, session.ID)
	if _, err := s.paymentRepo.FindPaymentByTransactionID(ctx, transactionID); err == nil {
		s.metrics.PaymentReconciled(metrics.OutcomeAlreadyProcessed)
		return &domain.Reconciliation{Paid: true, AlreadyProcessed: true}, nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check payment idempotency", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to reconcile payment: %w", err)
	}

	subscription := nonEmpty(session.Metadata[metadataPackageName], domain.DefaultSubscription)
	payment := domain.Payment{
		PaymentID:     uuid.NewString(),
		HREmail:       hrEmail,
		PackageName:   subscription,
		EmployeeLimit: seats,
		Amount:        decimal.NewFromInt(session.AmountTotal).Div(s.multiplier),
		Currency:      nonEmpty(session.Currency, s.currency),
		TransactionID: transactionID,
		SessionID:     session.ID,
		PaymentDate:   time.Now().UTC(),
		Status:        domain.PaymentPaid,
	}

	var user *domain.User
	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.paymentRepo.SavePayment(txCtx, payment); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return errAlreadyRecorded
			}
			return fmt.Errorf("failed to save payment: %w", err)
		}
		updated, err := s.userRepo.AddPackageLimit(txCtx, hrEmail, seats, subscription)
		if err != nil {
			return fmt.Errorf("failed to credit package limit: %w", err)
		}
		user = updated
		return nil
	})
	if errors.Is(err, errAlreadyRecorded) {
		s.metrics.PaymentReconciled(metrics.OutcomeAlreadyProcessed)
		return &domain.Reconciliation{Paid: true, AlreadyProcessed: true}, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Payment reconciliation failed", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.metrics.PaymentReconciled(metrics.OutcomeCredited)
	s.LogInfo(ctx, "Payment reconciled",
		slog.String("transaction_id", transactionID),
		slog.Int("seats", seats),
		slog.Int("package_limit", user.PackageLimit))
	return &domain.Reconciliation{Paid: true, User: user, Payment: &payment}, nil
}

func (s *paymentService) ListPayments(ctx context.Context, hrEmail string, opts domain.ListOptions) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPaymentsByHR(ctx, hrEmail, opts)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments")
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}

// minorUnits converts a major-unit price into the integer amount the gateway charges.
func (s *paymentService) minorUnits(price decimal.Decimal) int64 {
	return price.Mul(s.multiplier).Round(0).IntPart()
}
