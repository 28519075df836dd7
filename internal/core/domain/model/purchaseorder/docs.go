// Package purchaseorder models the purchase order aggregate.
//
// The package includes:
//   - PurchaseOrder: header fields, computed totals and the owned line items
//   - LineItem: a STANDARD, MANUAL or OTHER line with its rounded total
//   - Status: the DRAFT -> APPROVED -> SENT lifecycle with CANCELLED as terminal state
//   - Number: the daily order number PO{BuddhistYYYYMMDD}-P{NNN}
//
// Key business rules:
//   - a PurchaseOrder always has at least one line item
//   - a STANDARD line references a product; MANUAL and OTHER lines reference a
//     product, carry a free-text name, or both
//   - the order number is assigned once at creation and never changes
//   - status changes follow the transition table in status.go
//   - a full revision replaces the header fields and the whole item set together
package purchaseorder
