package services

// ServiceContainer holds instances of all the application services.
// Handlers receive it whole and pick what they need.
type ServiceContainer struct {
	Auth        AuthSvcFacade
	User        UserSvcFacade
	Package     PackageSvcFacade
	Asset       AssetSvcFacade
	Request     RequestSvcFacade
	Payment     PaymentSvcFacade
	Affiliation AffiliationSvcFacade
	Assignment  AssignmentSvcFacade
}
