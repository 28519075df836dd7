package commands

import (
	"context"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchaseorder"
	"purchasing/internal/core/domain/model/reference"
	"purchasing/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// assembly is the verified material for creating or revising an order.
type assembly struct {
	header   purchaseorder.Header
	items    []*purchaseorder.LineItem
	supplier reference.Supplier
	user     reference.User
	products map[kernel.UUID]reference.Product
}

// assemble verifies the supplier and every referenced product, builds a
// fresh item set and snapshots product names into nameless lines. Create
// and full update both go through here so they apply identical rules.
func assemble(
	ctx context.Context,
	refs ReferenceRepoFactory,
	in PurchaseOrderInput,
	user reference.User,
	discount decimal.Decimal,
) (assembly, error) {
	supplier, err := refs.SupplierRepository().Get(ctx, in.SupplierID)
	if err != nil {
		return assembly{}, err
	}

	items, err := buildItems(in.Items)
	if err != nil {
		return assembly{}, err
	}

	products, err := verifyProducts(ctx, refs, items)
	if err != nil {
		return assembly{}, err
	}

	for _, item := range items {
		if !item.NeedsNameSnapshot() {
			continue
		}
		item.SnapshotName(products[*item.ProductID()].Name)
	}

	return assembly{
		header: purchaseorder.Header{
			SupplierID:     supplier.ID,
			UserID:         user.ID,
			IssueDate:      in.IssueDate,
			DeliveryDate:   in.DeliveryDate,
			DiscountAmount: discount,
			ShippingCost:   valueOrZero(in.ShippingCost),
			Notes:          in.Notes,
		},
		items:    items,
		supplier: supplier,
		user:     user,
		products: products,
	}, nil
}

// verifyProducts loads every product referenced by items in one batch and
// reports all missing ids together.
func verifyProducts(
	ctx context.Context,
	refs ReferenceRepoFactory,
	items []*purchaseorder.LineItem,
) (map[kernel.UUID]reference.Product, error) {
	ids := purchaseorder.DistinctProductIDs(items)
	if len(ids) == 0 {
		return map[kernel.UUID]reference.Product{}, nil
	}

	found, err := refs.ProductRepository().FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	products := reference.ProductsByID(found)

	var missing []string
	for _, id := range ids {
		if _, ok := products[id]; !ok {
			missing = append(missing, id.String())
		}
	}
	if len(missing) > 0 {
		return nil, errs.NewObjectsNotFoundError("products", missing)
	}

	return products, nil
}
