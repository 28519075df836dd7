// Package reference holds the read-only records a purchase order points at.
// Suppliers, products and users are maintained elsewhere; this service only
// looks them up to verify references and to display them next to an order.
package reference

import (
	"purchasing/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Supplier is a vendor that purchase orders are addressed to.
type Supplier struct {
	ID   kernel.UUID
	Name string
	// RegularPrice is an optional default price agreed with the supplier.
	RegularPrice *decimal.Decimal
}

// Product is a catalogue item.
type Product struct {
	ID   kernel.UUID
	Name string
	Unit string
}

// User is the staff member responsible for an order.
type User struct {
	ID   kernel.UUID
	Name string
}

// ProductsByID indexes products by identifier.
func ProductsByID(products []Product) map[kernel.UUID]Product {
	out := make(map[kernel.UUID]Product, len(products))
	for _, p := range products {
		out[p.ID] = p
	}
	return out
}
