package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error or panics, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one database handle,
// either the plain connection or a running transaction.
type RepositoryFactory interface {
	// NewUserRepository returns a UserRepository instance bound to the current handle.
	NewUserRepository() UserRepository

	// NewEventRepository returns an EventRepository instance bound to the current handle.
	NewEventRepository() EventRepository

	// NewEventLocationRepository returns an EventLocationRepository instance bound to the current handle.
	NewEventLocationRepository() EventLocationRepository

	// NewTicketAllotmentRepository returns a TicketAllotmentRepository instance bound to the current handle.
	NewTicketAllotmentRepository() TicketAllotmentRepository
}
