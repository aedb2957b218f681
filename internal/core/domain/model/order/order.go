package order

import (
	"errors"
	"strings"
	"time"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// PaymentStatus tracks the settlement state of an order's invoice.
type PaymentStatus string

const (
	// PaymentUnpaid is the initial payment state; no invoice has been raised.
	PaymentUnpaid PaymentStatus = "unpaid"

	// PaymentInvoiced indicates an invoice has been issued to the customer.
	PaymentInvoiced PaymentStatus = "invoiced"

	// PaymentSettled indicates the invoice has been paid in full.
	PaymentSettled PaymentStatus = "paid"
)

// GenerateWaybill produces a unique shipment document code of the form
// "WB-XXXXXXXX". The suffix is taken from a fresh UUID, which keeps waybills
// unique without a round trip to the store; the orders table additionally
// carries a unique index on the column.
func GenerateWaybill() string {
	raw := uuid.New().String()
	return "WB-" + strings.ToUpper(strings.ReplaceAll(raw, "-", "")[:8])
}

// Order is the aggregate root for a shipment order. It owns the order
// lifecycle from creation through assignment, transit and payment to closure.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and a non-empty waybill
//   - Status transitions follow the forward-only state machine in Status
//   - Resource references (driver, truck, trailer) are set exclusively by
//     the Assign transition, never by direct field edits
//   - A failed transition leaves the aggregate unmodified
//   - Can only be created through NewOrder or RestoreOrder
//
// All fields are private; state changes go through the transition methods,
// each of which stamps its dedicated timestamp and UpdatedAt.
type Order struct {
	id kernel.UUID

	customerRef        string
	pickupAddress      string
	destinationAddress string
	waybill            string

	driverID  *kernel.UUID
	truckID   *kernel.UUID
	trailerID *kernel.UUID

	status        Status
	paymentStatus PaymentStatus

	startOdometer *int
	endOdometer   *int

	invoiceAmount *int64
	podRef        *string

	// overridden records that the assignment went through despite compliance
	// failures; complianceNotes keeps the gate's reasons for audit.
	overridden      bool
	complianceNotes []string

	createdAt          time.Time
	updatedAt          time.Time
	assignedAt         *time.Time
	loadedAt           *time.Time
	departedAt         *time.Time
	deliveredAt        *time.Time
	paymentRequestedAt *time.Time
	paidAt             *time.Time
	closedAt           *time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Created status with a freshly generated
// waybill. The customer reference and both addresses are required.
func NewOrder(id kernel.UUID, customerRef, pickupAddress, destinationAddress string, now time.Time) (*Order, error) {
	o := &Order{
		status:        Created,
		paymentStatus: PaymentUnpaid,
		waybill:       GenerateWaybill(),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerRef(customerRef),
		o.setAddresses(pickupAddress, destinationAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreParams carries the persisted state of an order for rehydration.
type RestoreParams struct {
	ID                 kernel.UUID
	CustomerRef        string
	PickupAddress      string
	DestinationAddress string
	Waybill            string
	DriverID           *kernel.UUID
	TruckID            *kernel.UUID
	TrailerID          *kernel.UUID
	Status             Status
	PaymentStatus      PaymentStatus
	StartOdometer      *int
	EndOdometer        *int
	InvoiceAmount      *int64
	PodRef             *string
	Overridden         bool
	ComplianceNotes    []string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	AssignedAt         *time.Time
	LoadedAt           *time.Time
	DepartedAt         *time.Time
	DeliveredAt        *time.Time
	PaymentRequestedAt *time.Time
	PaidAt             *time.Time
	ClosedAt           *time.Time
}

// RestoreOrder reconstructs an Order from persistence. It revalidates the
// identifier, status and the status/resource consistency rules, so corrupt
// rows cannot become live aggregates.
func RestoreOrder(p RestoreParams) (*Order, error) {
	if err := p.ID.Validate(); err != nil {
		return nil, err
	}
	if err := p.Status.Validate(); err != nil {
		return nil, err
	}
	if err := p.Status.ValidateCanHaveResources(p.DriverID != nil, p.TruckID != nil); err != nil {
		return nil, err
	}
	if p.Waybill == "" {
		return nil, errs.NewValueIsRequiredError("waybill")
	}

	return &Order{
		id:                 p.ID,
		customerRef:        p.CustomerRef,
		pickupAddress:      p.PickupAddress,
		destinationAddress: p.DestinationAddress,
		waybill:            p.Waybill,
		driverID:           p.DriverID,
		truckID:            p.TruckID,
		trailerID:          p.TrailerID,
		status:             p.Status,
		paymentStatus:      p.PaymentStatus,
		startOdometer:      p.StartOdometer,
		endOdometer:        p.EndOdometer,
		invoiceAmount:      p.InvoiceAmount,
		podRef:             p.PodRef,
		overridden:         p.Overridden,
		complianceNotes:    p.ComplianceNotes,
		createdAt:          p.CreatedAt,
		updatedAt:          p.UpdatedAt,
		assignedAt:         p.AssignedAt,
		loadedAt:           p.LoadedAt,
		departedAt:         p.DepartedAt,
		deliveredAt:        p.DeliveredAt,
		paymentRequestedAt: p.PaymentRequestedAt,
		paidAt:             p.PaidAt,
		closedAt:           p.ClosedAt,
		isConstructed:      true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Call it when receiving aggregates across package
// boundaries, e.g. before persisting.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerRef returns the customer reference supplied at creation.
func (o *Order) CustomerRef() string { return o.customerRef }

// PickupAddress returns the pickup location text.
func (o *Order) PickupAddress() string { return o.pickupAddress }

// DestinationAddress returns the destination location text.
func (o *Order) DestinationAddress() string { return o.destinationAddress }

// Waybill returns the unique shipment document code.
func (o *Order) Waybill() string { return o.waybill }

// Driver returns the assigned driver's ID, or nil before assignment.
func (o *Order) Driver() *kernel.UUID { return o.driverID }

// Truck returns the assigned truck's ID, or nil before assignment.
func (o *Order) Truck() *kernel.UUID { return o.truckID }

// Trailer returns the assigned trailer's ID, or nil when none was supplied.
func (o *Order) Trailer() *kernel.UUID { return o.trailerID }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// PaymentStatus returns the current settlement state.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// StartOdometer returns the odometer reading recorded at loading, if any.
func (o *Order) StartOdometer() *int { return o.startOdometer }

// EndOdometer returns the odometer reading recorded at delivery, if any.
func (o *Order) EndOdometer() *int { return o.endOdometer }

// InvoiceAmount returns the invoiced amount in minor currency units, if invoiced.
func (o *Order) InvoiceAmount() *int64 { return o.invoiceAmount }

// PodRef returns the proof-of-delivery document reference, if recorded.
func (o *Order) PodRef() *string { return o.podRef }

// Overridden reports whether the assignment bypassed a failing compliance check.
func (o *Order) Overridden() bool { return o.overridden }

// ComplianceNotes returns the compliance gate reasons recorded at assignment.
func (o *Order) ComplianceNotes() []string { return o.complianceNotes }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the timestamp of the last successful transition.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// AssignedAt returns when the order was assigned, if it has been.
func (o *Order) AssignedAt() *time.Time { return o.assignedAt }

// LoadedAt returns when the cargo was loaded, if it has been.
func (o *Order) LoadedAt() *time.Time { return o.loadedAt }

// DepartedAt returns when the truck departed, if it has.
func (o *Order) DepartedAt() *time.Time { return o.departedAt }

// DeliveredAt returns when the cargo was delivered, if it has been.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// PaymentRequestedAt returns when the invoice was raised, if it has been.
func (o *Order) PaymentRequestedAt() *time.Time { return o.paymentRequestedAt }

// PaidAt returns when payment was confirmed, if it has been.
func (o *Order) PaidAt() *time.Time { return o.paidAt }

// ClosedAt returns when the order was closed, if it has been.
func (o *Order) ClosedAt() *time.Time { return o.closedAt }

// IsCommitted reports whether the order currently holds its resources,
// i.e. its status is Assigned, Loaded or Enroute.
func (o *Order) IsCommitted() bool {
	return o.status.IsCommitted()
}

// Assign commits a driver and truck (and optionally a trailer) to the order
// and transitions Created -> Assigned.
//
// The compliance gate's reasons are recorded on the order for audit even when
// the check was overridden. A failed assignment leaves the order unmodified.
func (o *Order) Assign(
	driverID, truckID kernel.UUID,
	trailerID *kernel.UUID,
	overridden bool,
	complianceNotes []string,
	now time.Time,
) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverID", err)
	}
	if err := truckID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("truckID", err)
	}
	if trailerID != nil {
		if err := trailerID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("trailerID", err)
		}
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	o.truckID = &truckID
	o.trailerID = trailerID
	o.overridden = overridden
	o.complianceNotes = complianceNotes
	o.assignedAt = &now
	o.updatedAt = now
	return nil
}

// Load transitions Assigned -> Loaded, optionally recording the truck's
// odometer reading at loading.
func (o *Order) Load(startOdometer *int, now time.Time) error {
	if o.driverID == nil || o.truckID == nil {
		return errs.NewInvalidTransitionErrorWithReason(
			o.status.String(), Loaded.String(), "order has no driver and truck assigned")
	}

	newStatus, err := o.status.Load()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.startOdometer = startOdometer
	o.loadedAt = &now
	o.updatedAt = now
	return nil
}

// Depart transitions Loaded -> Enroute.
func (o *Order) Depart(now time.Time) error {
	newStatus, err := o.status.Depart()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.departedAt = &now
	o.updatedAt = now
	return nil
}

// Deliver transitions Enroute -> Delivered. A proof-of-delivery document
// reference is required; the transition fails without one.
func (o *Order) Deliver(podRef string, endOdometer *int, now time.Time) error {
	if podRef == "" {
		return errs.NewInvalidTransitionErrorWithReason(
			o.status.String(), Delivered.String(), "proof of delivery reference is required")
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.podRef = &podRef
	o.endOdometer = endOdometer
	o.deliveredAt = &now
	o.updatedAt = now
	return nil
}

// RequestPayment transitions Delivered -> AwaitingPayment, recording the
// invoiced amount in minor currency units.
func (o *Order) RequestPayment(invoiceAmount int64, now time.Time) error {
	if invoiceAmount <= 0 {
		return errs.NewValueIsOutOfRangeError("invoiceAmount", invoiceAmount, 1, int64(1<<62))
	}

	newStatus, err := o.status.RequestPayment()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.invoiceAmount = &invoiceAmount
	o.paymentStatus = PaymentInvoiced
	o.paymentRequestedAt = &now
	o.updatedAt = now
	return nil
}

// ConfirmPayment transitions AwaitingPayment -> Paid.
func (o *Order) ConfirmPayment(now time.Time) error {
	newStatus, err := o.status.ConfirmPayment()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentStatus = PaymentSettled
	o.paidAt = &now
	o.updatedAt = now
	return nil
}

// Close transitions Paid -> Closed, the final state.
func (o *Order) Close(now time.Time) error {
	newStatus, err := o.status.Close()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.closedAt = &now
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerRef(customerRef string) error {
	if customerRef == "" {
		return errs.NewValueIsRequiredError("customerRef")
	}
	o.customerRef = customerRef
	return nil
}

func (o *Order) setAddresses(pickup, destination string) error {
	if pickup == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	if destination == "" {
		return errs.NewValueIsRequiredError("destinationAddress")
	}
	o.pickupAddress = pickup
	o.destinationAddress = destination
	return nil
}
