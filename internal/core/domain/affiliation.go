package domain

import "time"

// AffiliationActive is the only status an affiliation is created with.
const AffiliationActive = "active"

// Affiliation links an employee to an employer (HR account).
// At most one row exists per (EmployeeEmail, HREmail).
type Affiliation struct {
	AffiliationID   string    `json:"affiliationId"`
	EmployeeEmail   string    `json:"employeeEmail"`
	EmployeeName    string    `json:"employeeName,omitempty"`
	HREmail         string    `json:"hrEmail"`
	CompanyName     string    `json:"companyName,omitempty"`
	CompanyLogo     string    `json:"companyLogo,omitempty"`
	AffiliationDate time.Time `json:"affiliationDate"`
	Status          string    `json:"status"`
}
