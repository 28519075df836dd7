// Package commands contains the operations that modify purchase orders.
// Every command follows the same pattern: validation at construction, one
// unit of work per attempt, persistence, commit.
package commands

import (
	"context"

	"purchasing/internal/core/ports"
)

// Unit of Work interfaces give command handlers transactional access to the
// purchase order repository and the reference lookups.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PurchaseOrderRepoFactory provides the purchase order repository within a transaction.
	PurchaseOrderRepoFactory interface {
		PurchaseOrderRepository() ports.PurchaseOrderRepository
	}

	// ReferenceRepoFactory provides supplier, product and user lookups within a transaction.
	ReferenceRepoFactory interface {
		SupplierRepository() ports.SupplierRepository
		ProductRepository() ports.ProductRepository
		UserRepository() ports.UserRepository
	}

	// UoW manages a transaction over the purchase order repository and the
	// reference lookups.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   supplier, err := uow.SupplierRepository().Get(ctx, supplierID)
	//   // ... build the order
	//   err = uow.PurchaseOrderRepository().Add(ctx, po)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		PurchaseOrderRepoFactory
		ReferenceRepoFactory
	}

	// UoWFactory creates a fresh unit of work per attempt.
	UoWFactory interface {
		Create() UoW
	}
)
