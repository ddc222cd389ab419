package domain

import (
	"strings"
	"time"
)

// UserRole is the application role stored on the user record.
type UserRole string

const (
	RoleHR       UserRole = "hr"       // HR manager, owns assets and a team
	RoleEmployee UserRole = "employee" // Requests and receives assets
)

// DefaultSubscription is the plan name used when a paid session carries no package name.
const DefaultSubscription = "Basic"

// User represents a registered account. Email is the natural key.
type User struct {
	UserID       string     `json:"userId"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Role         UserRole   `json:"role"`
	CompanyName  string     `json:"companyName,omitempty"`
	CompanyLogo  string     `json:"companyLogo,omitempty"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty"`
	PackageLimit int        `json:"packageLimit"` // Accumulates across purchases
	Subscription string     `json:"subscription,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// NormalizeEmail is the stored form of an account email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SameEmail compares two emails the way accounts are matched.
func SameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
