package models

import "time"

// User is the users table row.
type User struct {
	UserID       string     `db:"user_id"`
	Email        string     `db:"email"`
	Name         string     `db:"name"`
	Role         string     `db:"role"`
	CompanyName  string     `db:"company_name"`
	CompanyLogo  string     `db:"company_logo"`
	DateOfBirth  *time.Time `db:"date_of_birth"` // Nullable
	PackageLimit int        `db:"package_limit"`
	Subscription string     `db:"subscription"`
	CreatedAt    time.Time  `db:"created_at"`
}
