// Package kernel provides core domain primitives and utilities for the
// haulage system. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Expiry: A tagged value object for regulatory expiry dates that may be unset
//   - Document: A tagged value object for uploaded document references, present or missing
//   - ConstructorGuard: A defensive programming pattern to ensure proper object construction
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are designed to be
// immutable and thread-safe, making them suitable for concurrent use.
package kernel
