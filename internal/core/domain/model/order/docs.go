// Package order provides domain entities and business logic for shipment
// order management in the haulage system. It implements the Order aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root managing order identity, resource commitment and lifecycle
//   - Status: A state machine enforcing the forward-only order workflow
//   - PaymentStatus: The settlement state tracked alongside the lifecycle
//
// Key business rules:
//   - Order status follows the fixed workflow:
//     Created -> Assigned -> Loaded -> Enroute -> Delivered -> AwaitingPayment -> Paid -> Closed
//   - No transition may be skipped and none may run backward
//   - Driver, truck and trailer references are set only by the Assign transition
//   - Delivery requires a proof-of-delivery document reference
//   - Every successful transition stamps its dedicated timestamp and UpdatedAt
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
