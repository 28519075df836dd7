package postgres

import (
	"context"

	"purchasing/internal/adapters/out/postgres/purchaseorderrepo"
	"purchasing/internal/adapters/out/postgres/referencerepo"

	"gorm.io/gorm"
)

// Models lists every table this service reads or writes, references first.
func Models() []any {
	return []any{
		&referencerepo.SupplierDTO{},
		&referencerepo.ProductDTO{},
		&referencerepo.UserDTO{},
		&purchaseorderrepo.PurchaseOrderDTO{},
		&purchaseorderrepo.PurchaseOrderItemDTO{},
	}
}

// Migrate creates or updates the schema, including the unique index on
// purchase order numbers.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(Models()...)
}
