package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Every storage backend builds one of these.
type RepositoryProvider struct {
	TxManager       TransactionManager
	UserRepo        UserRepositoryFacade
	PackageRepo     PackageRepositoryFacade
	AssetRepo       AssetRepositoryFacade
	RequestRepo     RequestRepositoryFacade
	PaymentRepo     PaymentRepositoryFacade
	AffiliationRepo AffiliationRepositoryFacade
	AssignmentRepo  AssignmentRepositoryFacade
}
