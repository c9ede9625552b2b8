// Package order provides the Order aggregate root, the core of the trade
// model. An order owns a list of line items (product + volume + price) and a
// set of references to other orders, and the whole graph is persisted and
// replaced as one consistency unit.
//
// Key business rules:
//   - Orders must have a valid trade direction (buy/sell), an owning
//     organization and at least one line item
//   - An order never references itself; the check runs against ids, not
//     object graphs, so cyclic reference sets cannot cause traversal
//   - Updates replace type, references and line items wholesale; the owning
//     organization is immutable
//
// The package follows the same aggregate conventions as the rest of the
// domain model: private fields, factory constructors, Restore functions for
// rehydration from persistence, and Validate guards against zero values.
package order
