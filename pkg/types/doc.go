// Package types defines the shared domain types for the bookshop backend:
// the address value object, the order and delivery status enumerations, and
// the sentinel errors surfaced by the service layer.
//
// The package is imported by both the storage layer and the services and
// carries no dependencies of its own.
package types
