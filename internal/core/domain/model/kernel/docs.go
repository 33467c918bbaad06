// Package kernel provides the shared value objects of the warehouse domain.
//
// The package includes:
//   - UUID: identifier for products, tenants, users and ledger rows
//   - Location: the validated place a product currently sits
//
// Both types are immutable; their zero values fail Validate so that
// uninitialised fields are caught at aggregate boundaries.
package kernel
