// Package services provides domain services for purchase orders.
//
// The package includes:
//   - TotalsCalculator: the monetary computation behind every order total
//
// Domain services hold logic that needs configuration (the VAT rate) or spans
// more than one value object, so it does not sit on the aggregate itself.
package services
