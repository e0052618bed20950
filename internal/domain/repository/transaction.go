package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// Every workflow operation that mutates user or token state runs its whole
// read-check-write sequence inside one Execute call, so the transaction's
// isolation is the sole serialization point for compare-and-set updates on a
// token's verified flag. No additional in-process locking is layered on top.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, ensuring all operations within it share one connection.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// TokenRepo returns a VerificationTokenRepository bound to the current transaction.
	TokenRepo() VerificationTokenRepository
}
