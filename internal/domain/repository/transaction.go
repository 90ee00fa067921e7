package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// Every mutation of the reconciliation core runs its read-validate-write
// sequence inside a single Execute call, so the check and the write are
// race-free within one call. This is the only concurrency control the system
// relies on; two independent calls racing on the same participant remain an
// accepted tradeoff surfaced by the always-derived totals.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so all operations within one Execute share one connection.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// MenuRepo returns a MenuRepository bound to the current transaction.
	MenuRepo() MenuRepository

	// OrderRepo returns an OrderRepository bound to the current transaction.
	OrderRepo() OrderRepository

	// OrderItemRepo returns an OrderItemRepository bound to the current transaction.
	OrderItemRepo() OrderItemRepository

	// PaymentRepo returns a PaymentRepository bound to the current transaction.
	PaymentRepo() PaymentRepository
}
