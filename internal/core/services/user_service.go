package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/asset_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/asset_management_app/internal/core/ports/services"
	"github.com/SscSPs/asset_management_app/internal/dto"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	email := domain.NormalizeEmail(req.Email)
	if email == "" || strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name and email are required", apperrors.ErrValidation)
	}

	role := req.Role
	if role == "" {
		role = domain.RoleEmployee
	}
	if role != domain.RoleHR && role != domain.RoleEmployee {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}

	// Pre-check gives the friendly message; the unique index settles races.
	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: User already exists", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check existing user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user := domain.User{
		UserID:      uuid.NewString(),
		Email:       email,
		Name:        strings.TrimSpace(req.Name),
		Role:        role,
		CompanyName: req.CompanyName,
		CompanyLogo: req.CompanyLogo,
		DateOfBirth: req.DateOfBirth,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: User already exists", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return &user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by email")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserRole(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil
		}
		s.LogError(ctx, err, "Failed to look up user role")
		return "", fmt.Errorf("failed to get user role: %w", err)
	}
	return string(user.Role), nil
}
