package ports

import (
	"context"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/reference"
)

// SupplierRepository looks up suppliers.
type SupplierRepository interface {
	// Get returns errs.ObjectNotFoundError when the supplier does not exist.
	Get(ctx context.Context, id kernel.UUID) (reference.Supplier, error)
}

// ProductRepository looks up catalogue products.
type ProductRepository interface {
	// FindByIDs returns the products that exist among ids, in no particular
	// order. Missing ids are simply absent from the result.
	FindByIDs(ctx context.Context, ids []kernel.UUID) ([]reference.Product, error)
}

// UserRepository looks up users.
type UserRepository interface {
	// Get returns errs.ObjectNotFoundError when the user does not exist.
	Get(ctx context.Context, id kernel.UUID) (reference.User, error)

	// First returns the earliest created user, or errs.ObjectNotFoundError
	// when there are no users at all.
	First(ctx context.Context) (reference.User, error)
}
