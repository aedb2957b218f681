// Package services provides domain services that evaluate business rules
// spanning multiple domain entities in the haulage system.
//
// The package includes:
//   - ComplianceGate: evaluates drivers and vehicles against regulatory
//     document presence and expiry before an assignment may proceed
//   - Policy: the explicit authorization rule set consumed by command
//     handlers, decoupled from transport-layer concerns
//
// Domain services coordinate between aggregates, implementing business logic
// that doesn't naturally belong to a single aggregate root.
package services
