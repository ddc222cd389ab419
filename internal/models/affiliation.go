package models

import "time"

// Affiliation is the affiliations table row.
type Affiliation struct {
	AffiliationID   string    `db:"affiliation_id"`
	EmployeeEmail   string    `db:"employee_email"`
	EmployeeName    string    `db:"employee_name"`
	HREmail         string    `db:"hr_email"`
	CompanyName     string    `db:"company_name"`
	CompanyLogo     string    `db:"company_logo"`
	AffiliationDate time.Time `db:"affiliation_date"`
	Status          string    `db:"status"`
}
