package repositories

import (
	"context"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByEmail retrieves a user by email. Returns apperrors.ErrNotFound when absent.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate on a taken email.
	SaveUser(ctx context.Context, user domain.User) error

	// AddPackageLimit atomically adds seats to the user's packageLimit and sets
	// the subscription name, returning the updated user.
	AddPackageLimit(ctx context.Context, email string, seats int, subscription string) (*domain.User, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
