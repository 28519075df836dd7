package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command attempt. A unit
// of work is never reused after Commit or Rollback.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories it hands out
// share its transaction once Begin has been called; before that they run
// outside any transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit fails when no transaction is active.
	Commit(ctx context.Context) error

	// Rollback fails when no transaction is active. Callers defer it right
	// after Begin; the error after a successful Commit is expected.
	Rollback(ctx context.Context) error

	PurchaseOrderRepository() PurchaseOrderRepository
	SupplierRepository() SupplierRepository
	ProductRepository() ProductRepository
	UserRepository() UserRepository
}
