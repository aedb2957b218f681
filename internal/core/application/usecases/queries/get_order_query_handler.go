package queries

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/order"
	"haulage/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order row from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and maps the row into the response struct.
// Returns an ObjectNotFoundError when no order with the given ID exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_ref,
			pickup_address,
			destination_address,
			waybill,
			status,
			payment_status,
			driver_id,
			truck_id,
			trailer_id,
			start_odometer,
			end_odometer,
			invoice_amount,
			pod_ref,
			overridden,
			compliance_notes,
			created_at,
			updated_at,
			assigned_at,
			loaded_at,
			departed_at,
			delivered_at,
			payment_requested_at,
			paid_at,
			closed_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var (
		resp            GetOrderQueryResponse
		id              uuid.UUID
		statusInt       int
		driverID        uuid.NullUUID
		truckID         uuid.NullUUID
		trailerID       uuid.NullUUID
		startOdometer   sql.NullInt64
		endOdometer     sql.NullInt64
		invoiceAmount   sql.NullInt64
		podRef          sql.NullString
		complianceNotes string
		assignedAt      sql.NullTime
		loadedAt        sql.NullTime
		departedAt      sql.NullTime
		deliveredAt     sql.NullTime
		paymentReqAt    sql.NullTime
		paidAt          sql.NullTime
		closedAt        sql.NullTime
	)

	err := row.Scan(
		&id,
		&resp.CustomerRef,
		&resp.PickupAddress,
		&resp.DestinationAddress,
		&resp.Waybill,
		&statusInt,
		&resp.PaymentStatus,
		&driverID,
		&truckID,
		&trailerID,
		&startOdometer,
		&endOdometer,
		&invoiceAmount,
		&podRef,
		&resp.Overridden,
		&complianceNotes,
		&resp.CreatedAt,
		&resp.UpdatedAt,
		&assignedAt,
		&loadedAt,
		&departedAt,
		&deliveredAt,
		&paymentReqAt,
		&paidAt,
		&closedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ID = orderID
	resp.Status = order.Status(statusInt).String()

	resp.DriverID, err = nullableUUID(driverID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.TruckID, err = nullableUUID(truckID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.TrailerID, err = nullableUUID(trailerID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.StartOdometer = nullableInt(startOdometer)
	resp.EndOdometer = nullableInt(endOdometer)
	if invoiceAmount.Valid {
		resp.InvoiceAmount = &invoiceAmount.Int64
	}
	if podRef.Valid {
		resp.PodRef = &podRef.String
	}
	if complianceNotes != "" {
		resp.ComplianceNotes = strings.Split(complianceNotes, "\n")
	} else {
		resp.ComplianceNotes = []string{}
	}

	resp.AssignedAt = nullableTime(assignedAt)
	resp.LoadedAt = nullableTime(loadedAt)
	resp.DepartedAt = nullableTime(departedAt)
	resp.DeliveredAt = nullableTime(deliveredAt)
	resp.PaymentRequestedAt = nullableTime(paymentReqAt)
	resp.PaidAt = nullableTime(paidAt)
	resp.ClosedAt = nullableTime(closedAt)

	return resp, nil
}
