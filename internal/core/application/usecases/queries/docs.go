// Package queries reads purchase orders for display. Queries bypass the
// aggregate and read the tables directly, joining in supplier, user and
// product names.
package queries
