// Package services provides domain services that span more than one domain
// object.
//
// The package includes:
//   - StatusApplier: decides and applies a product status change, producing the
//     movement, audit entry and outbox message that must be persisted with it
package services
