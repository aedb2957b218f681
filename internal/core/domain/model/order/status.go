package order

import (
	"haulage/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment order.
// It implements a strictly forward state machine with no skipping and no
// backward transitions:
//
//	Created -> Assigned -> Loaded -> Enroute -> Delivered
//	        -> AwaitingPayment -> Paid -> Closed
//
// Status is a value object: each transition method validates the current
// state and returns the next state, or an InvalidTransitionError naming the
// illegal move.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first registered.
	// Orders in this status are waiting for driver and truck assignment.
	Created

	// Assigned indicates a driver and truck have been committed to the order.
	Assigned

	// Loaded indicates the cargo has been loaded onto the truck.
	Loaded

	// Enroute indicates the truck has departed and is in transit.
	Enroute

	// Delivered indicates the cargo has reached its destination with a
	// proof-of-delivery reference recorded.
	Delivered

	// AwaitingPayment indicates the customer has been invoiced.
	AwaitingPayment

	// Paid indicates the invoice has been settled.
	Paid

	// Closed is the final state; no further transitions are allowed.
	Closed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Created:         "Created",
		Assigned:        "Assigned",
		Loaded:          "Loaded",
		Enroute:         "Enroute",
		Delivered:       "Delivered",
		AwaitingPayment: "AwaitingPayment",
		Paid:            "Paid",
		Closed:          "Closed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:         "Created",
		Assigned:        "Assigned",
		Loaded:          "Loaded",
		Enroute:         "Enroute",
		Delivered:       "Delivered",
		AwaitingPayment: "AwaitingPayment",
		Paid:            "Paid",
		Closed:          "Closed",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			errs.NewValueIsOutOfRangeError("status", int(s), int(Created), int(Closed)))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsCommitted reports whether an order in this status holds its resources.
// A truck, trailer or driver referenced by an order in a committed status may
// not be assigned to any other order.
func (s Status) IsCommitted() bool {
	return s == Assigned || s == Loaded || s == Enroute
}

// IsFinal reports whether the status permits no further transitions.
func (s Status) IsFinal() bool {
	return s == Closed
}

// ValidateCanHaveResources validates the consistency between order status and
// resource assignment. Orders in a committed or later status must carry a
// driver and a truck; orders still in Created must not.
func (s Status) ValidateCanHaveResources(hasDriver, hasTruck bool) error {
	if s == Created && (hasDriver || hasTruck) {
		return errs.NewValueIsInvalidError("created order must not have resources assigned")
	}

	if s != Created && s != Unknown && (!hasDriver || !hasTruck) {
		return errs.NewValueIsInvalidError("order past created status must have a driver and a truck")
	}

	return nil
}

// transition returns the next status when the current status matches the
// required prior status, or an InvalidTransitionError otherwise.
func (s Status) transition(from, to Status) (Status, error) {
	if s != from {
		return Unknown, errs.NewInvalidTransitionError(s.String(), to.String())
	}
	return to, nil
}

// Assign transitions Created -> Assigned.
func (s Status) Assign() (Status, error) {
	return s.transition(Created, Assigned)
}

// Load transitions Assigned -> Loaded.
func (s Status) Load() (Status, error) {
	return s.transition(Assigned, Loaded)
}

// Depart transitions Loaded -> Enroute.
func (s Status) Depart() (Status, error) {
	return s.transition(Loaded, Enroute)
}

// Deliver transitions Enroute -> Delivered.
func (s Status) Deliver() (Status, error) {
	return s.transition(Enroute, Delivered)
}

// RequestPayment transitions Delivered -> AwaitingPayment.
func (s Status) RequestPayment() (Status, error) {
	return s.transition(Delivered, AwaitingPayment)
}

// ConfirmPayment transitions AwaitingPayment -> Paid.
func (s Status) ConfirmPayment() (Status, error) {
	return s.transition(AwaitingPayment, Paid)
}

// Close transitions Paid -> Closed, the final state.
func (s Status) Close() (Status, error) {
	return s.transition(Paid, Closed)
}
