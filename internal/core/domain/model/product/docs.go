// Package product contains the Product aggregate and its movement ledger.
//
// A Product is a unit of stock tracked through the warehouse: received at a
// dock, inspected, stored, picked, shipped and finally delivered or disposed
// of. Its status is a lifecycle.Status and only changes along a legal edge of
// the lifecycle graph; every change leaves a Movement row behind.
//
// Movements are append-only. The first movement of a product has no previous
// status and records its registration.
package product
