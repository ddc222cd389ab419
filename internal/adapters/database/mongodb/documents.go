package mongodb

import (
	"strconv"
	"time"

	"github.com/SscSPs/asset_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userDocument struct {
	UserID       string     `bson:"_id"`
	Email        string     `bson:"email"`
	Name         string     `bson:"name"`
	Role         string     `bson:"role"`
	CompanyName  string     `bson:"companyName,omitempty"`
	CompanyLogo  string     `bson:"companyLogo,omitempty"`
	DateOfBirth  *time.Time `bson:"dateOfBirth,omitempty"`
	PackageLimit int        `bson:"packageLimit"`
	Subscription string     `bson:"subscription,omitempty"`
	CreatedAt    time.Time  `bson:"createdAt"`
}

func toUserDocument(d domain.User) userDocument {
	return userDocument{
		UserID:       d.UserID,
		Email:        d.Email,
		Name:         d.Name,
		Role:         string(d.Role),
		CompanyName:  d.CompanyName,
		CompanyLogo:  d.CompanyLogo,
		DateOfBirth:  d.DateOfBirth,
		PackageLimit: d.PackageLimit,
		Subscription: d.Subscription,
		CreatedAt:    d.CreatedAt,
	}
}

func (doc userDocument) toDomain() domain.User {
	return domain.User{
		UserID:       doc.UserID,
		Email:        doc.Email,
		Name:         doc.Name,
		Role:         domain.UserRole(doc.Role),
		CompanyName:  doc.CompanyName,
		CompanyLogo:  doc.CompanyLogo,
		DateOfBirth:  doc.DateOfBirth,
		PackageLimit: doc.PackageLimit,
		Subscription: doc.Subscription,
		CreatedAt:    doc.CreatedAt,
	}
}

type packageDocument struct {
	PackageID     string               `bson:"_id"`
	Name          string               `bson:"name"`
	EmployeeLimit int                  `bson:"employeeLimit"`
	Price         primitive.Decimal128 `bson:"price"`
}

func toPackageDocument(d domain.Package) packageDocument {
	return packageDocument{
		PackageID:     d.PackageID,
		Name:          d.Name,
		EmployeeLimit: d.EmployeeLimit,
		Price:         toDecimal128(d.Price),
	}
}

func (doc packageDocument) toDomain() domain.Package {
	return domain.Package{
		PackageID:     doc.PackageID,
		Name:          doc.Name,
		EmployeeLimit: doc.EmployeeLimit,
		Price:         fromDecimal128(doc.Price),
	}
}

// assetDocument keeps availableQuantity untyped: older documents stored it as a string.
type assetDocument struct {
	AssetID           string    `bson:"_id"`
	ProductName       string    `bson:"productName"`
	ProductType       string    `bson:"productType"`
	AvailableQuantity any       `bson:"availableQuantity"`
	HREmail           string    `bson:"hrEmail,omitempty"`
	CompanyName       string    `bson:"companyName,omitempty"`
	DataAdded         time.Time `bson:"dataAdded"`
}

func toAssetDocument(d domain.Asset) assetDocument {
	return assetDocument{
		AssetID:           d.AssetID,
		ProductName:       d.ProductName,
		ProductType:       string(d.ProductType),
		AvailableQuantity: d.AvailableQuantity,
		HREmail:           d.HREmail,
		CompanyName:       d.CompanyName,
		DataAdded:         d.DataAdded,
	}
}

func (doc assetDocument) toDomain() domain.Asset {
	quantity, _ := quantityValue(doc.AvailableQuantity)
	return domain.Asset{
		AssetID:           doc.AssetID,
		ProductName:       doc.ProductName,
		ProductType:       domain.ProductType(doc.ProductType),
		AvailableQuantity: quantity,
		HREmail:           doc.HREmail,
		CompanyName:       doc.CompanyName,
		DataAdded:         doc.DataAdded,
	}
}

// quantityValue reads a stored quantity. The bool is false when the value is
// not a number; numeric strings are accepted.
func quantityValue(v any) (int, bool) {
	switch q := v.(type) {
	case int32:
		return int(q), true
	case int64:
		return int(q), true
	case int:
		return q, true
	case float64:
		return int(q), q == float64(int(q))
	case string:
		n, err := strconv.Atoi(q)
		return n, err == nil
	default:
		return 0, false
	}
}

type requestDocument struct {
	RequestID      string     `bson:"_id"`
	AssetID        string     `bson:"assetId"`
	AssetName      string     `bson:"assetName,omitempty"`
	AssetType      string     `bson:"assetType,omitempty"`
	RequesterEmail string     `bson:"requesterEmail"`
	RequesterName  string     `bson:"requesterName,omitempty"`
	HREmail        string     `bson:"hrEmail,omitempty"`
	CompanyName    string     `bson:"companyName,omitempty"`
	AdditionalNote string     `bson:"additionalNote,omitempty"`
	RequestStatus  string     `bson:"requestStatus"`
	RequestDate    time.Time  `bson:"requestDate"`
	ApprovalDate   *time.Time `bson:"approvalDate"`
	Note           string     `bson:"note"`
}

func toRequestDocument(d domain.Request) requestDocument {
	return requestDocument{
		RequestID:      d.RequestID,
		AssetID:        d.AssetID,
		AssetName:      d.AssetName,
		AssetType:      string(d.AssetType),
		RequesterEmail: d.RequesterEmail,
		RequesterName:  d.RequesterName,
		HREmail:        d.HREmail,
		CompanyName:    d.CompanyName,
		AdditionalNote: d.AdditionalNote,
		RequestStatus:  string(d.RequestStatus),
		RequestDate:    d.RequestDate,
		ApprovalDate:   d.ApprovalDate,
		Note:           d.Note,
	}
}

func (doc requestDocument) toDomain() domain.Request {
	return domain.Request{
		RequestID:      doc.RequestID,
		AssetID:        doc.AssetID,
		AssetName:      doc.AssetName,
		AssetType:      domain.ProductType(doc.AssetType),
		RequesterEmail: doc.RequesterEmail,
		RequesterName:  doc.RequesterName,
		HREmail:        doc.HREmail,
		CompanyName:    doc.CompanyName,
		AdditionalNote: doc.AdditionalNote,
		RequestStatus:  domain.RequestStatus(doc.RequestStatus),
		RequestDate:    doc.RequestDate,
		ApprovalDate:   doc.ApprovalDate,
		Note:           doc.Note,
	}
}

type paymentDocument struct {
	PaymentID     string               `bson:"_id"`
	HREmail       string               `bson:"hrEmail"`
	PackageName   string               `bson:"packageName"`
	EmployeeLimit int                  `bson:"employeeLimit"`
	Amount        primitive.Decimal128 `bson:"amount"`
	Currency      string               `bson:"currency"`
	TransactionID string               `bson:"transactionId"`
	SessionID     string               `bson:"sessionId"`
	PaymentDate   time.Time            `bson:"paymentDate"`
	Status        string               `bson:"status"`
}

func toPaymentDocument(d domain.Payment) paymentDocument {
	return paymentDocument{
		PaymentID:     d.PaymentID,
		HREmail:       d.HREmail,
		PackageName:   d.PackageName,
		EmployeeLimit: d.EmployeeLimit,
		Amount:        toDecimal128(d.Amount),
		Currency:      d.Currency,
		TransactionID: d.TransactionID,
		SessionID:     d.SessionID,
		PaymentDate:   d.PaymentDate,
		Status:        string(d.Status),
	}
}

func (doc paymentDocument) toDomain() domain.Payment {
	return domain.Payment{
		PaymentID:     doc.PaymentID,
		HREmail:       doc.HREmail,
		PackageName:   doc.PackageName,
		EmployeeLimit: doc.EmployeeLimit,
		Amount:        fromDecimal128(doc.Amount),
		Currency:      doc.Currency,
		TransactionID: doc.TransactionID,
		SessionID:     doc.SessionID,
		PaymentDate:   doc.PaymentDate,
		Status:        domain.PaymentStatus(doc.Status),
	}
}

type affiliationDocument struct {
	AffiliationID   string    `bson:"_id"`
	EmployeeEmail   string    `bson:"employeeEmail"`
	EmployeeName    string    `bson:"employeeName,omitempty"`
	HREmail         string    `bson:"hrEmail"`
	CompanyName     string    `bson:"companyName,omitempty"`
	CompanyLogo     string    `bson:"companyLogo,omitempty"`
	AffiliationDate time.Time `bson:"affiliationDate"`
	Status          string    `bson:"status"`
}

func toAffiliationDocument(d domain.Affiliation) affiliationDocument {
	return affiliationDocument{
		AffiliationID:   d.AffiliationID,
		EmployeeEmail:   d.EmployeeEmail,
		EmployeeName:    d.EmployeeName,
		HREmail:         d.HREmail,
		CompanyName:     d.CompanyName,
		CompanyLogo:     d.CompanyLogo,
		AffiliationDate: d.AffiliationDate,
		Status:          d.Status,
	}
}

func (doc affiliationDocument) toDomain() domain.Affiliation {
	return domain.Affiliation{
		AffiliationID:   doc.AffiliationID,
		EmployeeEmail:   doc.EmployeeEmail,
		EmployeeName:    doc.EmployeeName,
		HREmail:         doc.HREmail,
		CompanyName:     doc.CompanyName,
		CompanyLogo:     doc.CompanyLogo,
		AffiliationDate: doc.AffiliationDate,
		Status:          doc.Status,
	}
}

type assignmentDocument struct {
	AssignmentID  string     `bson:"_id"`
	RequestID     string     `bson:"requestId,omitempty"`
	EmployeeEmail string     `bson:"employeeEmail"`
	EmployeeName  string     `bson:"employeeName,omitempty"`
	AssetID       string     `bson:"assetId"`
	AssetName     string     `bson:"assetName,omitempty"`
	AssetType     string     `bson:"assetType,omitempty"`
	HREmail       string     `bson:"hrEmail,omitempty"`
	CompanyName   string     `bson:"companyName,omitempty"`
	AssignedDate  time.Time  `bson:"assignedDate"`
	Status        string     `bson:"status"`
	ReturnDate    *time.Time `bson:"returnDate"`
}

func toAssignmentDocument(d domain.AssignedAsset) assignmentDocument {
	return assignmentDocument{
		AssignmentID:  d.AssignmentID,
		RequestID:     d.RequestID,
		EmployeeEmail: d.EmployeeEmail,
		EmployeeName:  d.EmployeeName,
		AssetID:       d.AssetID,
		AssetName:     d.AssetName,
		AssetType:     string(d.AssetType),
		HREmail:       d.HREmail,
		CompanyName:   d.CompanyName,
		AssignedDate:  d.AssignedDate,
		Status:        string(d.Status),
		ReturnDate:    d.ReturnDate,
	}
}

func (doc assignmentDocument) toDomain() domain.AssignedAsset {
	return domain.AssignedAsset{
		AssignmentID:  doc.AssignmentID,
		RequestID:     doc.RequestID,
		EmployeeEmail: doc.EmployeeEmail,
		EmployeeName:  doc.EmployeeName,
		AssetID:       doc.AssetID,
		AssetName:     doc.AssetName,
		AssetType:     domain.ProductType(doc.AssetType),
		HREmail:       doc.HREmail,
		CompanyName:   doc.CompanyName,
		AssignedDate:  doc.AssignedDate,
		Status:        domain.AssignmentStatus(doc.Status),
		ReturnDate:    doc.ReturnDate,
	}
}

func toDecimal128(d decimal.Decimal) primitive.Decimal128 {
	dec, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.NewDecimal128(0, 0)
	}
	return dec
}

func fromDecimal128(dec primitive.Decimal128) decimal.Decimal {
	d, err := decimal.NewFromString(dec.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}
