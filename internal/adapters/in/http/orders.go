package http

import (
	"net/http"
	"strings"
	"time"

	"haulage/internal/core/application/usecases/commands"
	"haulage/internal/core/application/usecases/queries"
	"haulage/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateOrderRequest is the body for POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerRef        string `json:"customer_ref"`
	PickupAddress      string `json:"pickup_address"`
	DestinationAddress string `json:"destination_address"`
}

// CreateOrderResponse returns the identifier of the registered order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// AssignOrderRequest is the body for POST /api/v1/orders/:orderID/assign.
type AssignOrderRequest struct {
	DriverID  string  `json:"driver_id"`
	TruckID   string  `json:"truck_id"`
	TrailerID *string `json:"trailer_id,omitempty"`
}

// MarkOrderLoadedRequest is the body for POST /api/v1/orders/:orderID/load.
type MarkOrderLoadedRequest struct {
	StartOdometer *int `json:"start_odometer,omitempty"`
}

// MarkOrderDeliveredRequest is the body for POST /api/v1/orders/:orderID/deliver.
type MarkOrderDeliveredRequest struct {
	PodRef      string `json:"pod_ref"`
	EndOdometer *int   `json:"end_odometer,omitempty"`
}

// RequestOrderPaymentRequest is the body for POST /api/v1/orders/:orderID/request-payment.
type RequestOrderPaymentRequest struct {
	InvoiceAmount int64 `json:"invoice_amount"`
}

// OrderResponse is the full read model of a shipment order.
type OrderResponse struct {
	ID                 string     `json:"id"`
	CustomerRef        string     `json:"customer_ref"`
	PickupAddress      string     `json:"pickup_address"`
	DestinationAddress string     `json:"destination_address"`
	Waybill            string     `json:"waybill"`
	Status             string     `json:"status"`
	PaymentStatus      string     `json:"payment_status"`
	DriverID           *string    `json:"driver_id,omitempty"`
	TruckID            *string    `json:"truck_id,omitempty"`
	TrailerID          *string    `json:"trailer_id,omitempty"`
	StartOdometer      *int       `json:"start_odometer,omitempty"`
	EndOdometer        *int       `json:"end_odometer,omitempty"`
	InvoiceAmount      *int64     `json:"invoice_amount,omitempty"`
	PodRef             *string    `json:"pod_ref,omitempty"`
	Overridden         bool       `json:"overridden"`
	ComplianceNotes    []string   `json:"compliance_notes,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	AssignedAt         *time.Time `json:"assigned_at,omitempty"`
	LoadedAt           *time.Time `json:"loaded_at,omitempty"`
	DepartedAt         *time.Time `json:"departed_at,omitempty"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`
	PaymentRequestedAt *time.Time `json:"payment_requested_at,omitempty"`
	PaidAt             *time.Time `json:"paid_at,omitempty"`
	ClosedAt           *time.Time `json:"closed_at,omitempty"`
}

// CreateOrder handles POST /api/v1/orders - registers a new shipment order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, req.CustomerRef, req.PickupAddress, req.DestinationAddress)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFrom(resp))
}

// AssignOrder handles POST /api/v1/orders/:orderID/assign - commits a driver,
// a truck and optionally a trailer to the order.
func (s *Server) AssignOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return writeError(ctx, err)
	}

	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req AssignOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return writeBadRequest(ctx, "driver_id must be a valid UUID")
	}
	truckID, err := kernel.UUIDFromString(req.TruckID)
	if err != nil {
		return writeBadRequest(ctx, "truck_id must be a valid UUID")
	}

	var trailerID *kernel.UUID
	if req.TrailerID != nil {
		id, err := kernel.UUIDFromString(*req.TrailerID)
		if err != nil {
			return writeBadRequest(ctx, "trailer_id must be a valid UUID")
		}
		trailerID = &id
	}

	override := strings.EqualFold(ctx.Request().Header.Get(headerOverride), "true")

	cmd, err := commands.NewAssignOrderCommand(orderID, driverID, truckID, trailerID, override, actor)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// MarkOrderLoaded handles POST /api/v1/orders/:orderID/load.
func (s *Server) MarkOrderLoaded(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return writeError(ctx, err)
	}

	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req MarkOrderLoadedRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewMarkOrderLoadedCommand(orderID, req.StartOdometer, actor)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err := s.markOrderLoadedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// MarkOrderEnroute handles POST /api/v1/orders/:orderID/depart.
func (s *Server) MarkOrderEnroute(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return writeError(ctx, err)
	}

	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkOrderEnrouteCommand(orderID, actor)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err := s.markOrderEnrouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// MarkOrderDelivered handles POST /api/v1/orders/:orderID/deliver.
func (s *Server) MarkOrderDelivered(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return writeError(ctx, err)
	}

	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req MarkOrderDeliveredRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewMarkOrderDeliveredCommand(orderID, req.PodRef, req.EndOdometer, actor)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err := s.markOrderDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// RequestOrderPayment handles POST /api/v1/orders/:orderID/request-payment.
func (s *Server) RequestOrderPayment(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return writeError(ctx, err)
	}

	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req RequestOrderPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRequestOrderPaymentCommand(orderID, req.InvoiceAmount, actor)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err := s.requestOrderPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// ConfirmOrderPayment handles POST /api/v1/orders/:orderID/confirm-payment.
func (s *Server) ConfirmOrderPayment(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return writeError(ctx, err)
	}

	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewConfirmOrderPaymentCommand(orderID, actor)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err := s.confirmOrderPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// CloseOrder handles POST /api/v1/orders/:orderID/close.
func (s *Server) CloseOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return writeError(ctx, err)
	}

	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCloseOrderCommand(orderID, actor)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err := s.closeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// respondWithOrder returns the order's state after a successful transition,
// so callers see the stamped timestamps without a second round trip.
func (s *Server) respondWithOrder(ctx echo.Context, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFrom(resp))
}

func orderResponseFrom(resp queries.GetOrderQueryResponse) OrderResponse {
	return OrderResponse{
		ID:                 resp.ID.String(),
		CustomerRef:        resp.CustomerRef,
		PickupAddress:      resp.PickupAddress,
		DestinationAddress: resp.DestinationAddress,
		Waybill:            resp.Waybill,
		Status:             resp.Status,
		PaymentStatus:      resp.PaymentStatus,
		DriverID:           uuidString(resp.DriverID),
		TruckID:            uuidString(resp.TruckID),
		TrailerID:          uuidString(resp.TrailerID),
		StartOdometer:      resp.StartOdometer,
		EndOdometer:        resp.EndOdometer,
		InvoiceAmount:      resp.InvoiceAmount,
		PodRef:             resp.PodRef,
		Overridden:         resp.Overridden,
		ComplianceNotes:    resp.ComplianceNotes,
		CreatedAt:          resp.CreatedAt,
		UpdatedAt:          resp.UpdatedAt,
		AssignedAt:         resp.AssignedAt,
		LoadedAt:           resp.LoadedAt,
		DepartedAt:         resp.DepartedAt,
		DeliveredAt:        resp.DeliveredAt,
		PaymentRequestedAt: resp.PaymentRequestedAt,
		PaidAt:             resp.PaidAt,
		ClosedAt:           resp.ClosedAt,
	}
}

func uuidString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
