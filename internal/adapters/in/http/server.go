// Package http exposes the assignment core over a JSON API. Handlers parse
// the request, build a command or query, and translate domain errors into the
// shared error envelope; all business rules live in the use case layer.
package http

import (
	"net/http"

	"haulage/internal/core/application/usecases/commands"
	"haulage/internal/core/application/usecases/queries"
	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/services"
	"haulage/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	headerActorID   = "X-Actor-ID"
	headerActorRole = "X-Actor-Role"

	// headerOverride requests assignment despite a failing compliance check.
	// Honored only for admin actors.
	headerOverride = "X-Compliance-Override"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler         commands.CreateOrderCommandHandler
	assignOrderHandler         commands.AssignOrderCommandHandler
	markOrderLoadedHandler     commands.MarkOrderLoadedCommandHandler
	markOrderEnrouteHandler    commands.MarkOrderEnrouteCommandHandler
	markOrderDeliveredHandler  commands.MarkOrderDeliveredCommandHandler
	requestOrderPaymentHandler commands.RequestOrderPaymentCommandHandler
	confirmOrderPaymentHandler commands.ConfirmOrderPaymentCommandHandler
	closeOrderHandler          commands.CloseOrderCommandHandler
	pairTruckTrailerHandler    commands.PairTruckTrailerCommandHandler
	unpairTruckTrailerHandler  commands.UnpairTruckTrailerCommandHandler

	getOrderHandler             queries.GetOrderQueryHandler
	getActiveAssignmentsHandler queries.GetActiveAssignmentsQueryHandler
	getAssignmentHistoryHandler queries.GetAssignmentHistoryQueryHandler
	getExpiringDocumentsHandler queries.GetExpiringDocumentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	markOrderLoadedHandler commands.MarkOrderLoadedCommandHandler,
	markOrderEnrouteHandler commands.MarkOrderEnrouteCommandHandler,
	markOrderDeliveredHandler commands.MarkOrderDeliveredCommandHandler,
	requestOrderPaymentHandler commands.RequestOrderPaymentCommandHandler,
	confirmOrderPaymentHandler commands.ConfirmOrderPaymentCommandHandler,
	closeOrderHandler commands.CloseOrderCommandHandler,
	pairTruckTrailerHandler commands.PairTruckTrailerCommandHandler,
	unpairTruckTrailerHandler commands.UnpairTruckTrailerCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActiveAssignmentsHandler queries.GetActiveAssignmentsQueryHandler,
	getAssignmentHistoryHandler queries.GetAssignmentHistoryQueryHandler,
	getExpiringDocumentsHandler queries.GetExpiringDocumentsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		assignOrderHandler:          assignOrderHandler,
		markOrderLoadedHandler:      markOrderLoadedHandler,
		markOrderEnrouteHandler:     markOrderEnrouteHandler,
		markOrderDeliveredHandler:   markOrderDeliveredHandler,
		requestOrderPaymentHandler:  requestOrderPaymentHandler,
		confirmOrderPaymentHandler:  confirmOrderPaymentHandler,
		closeOrderHandler:           closeOrderHandler,
		pairTruckTrailerHandler:     pairTruckTrailerHandler,
		unpairTruckTrailerHandler:   unpairTruckTrailerHandler,
		getOrderHandler:             getOrderHandler,
		getActiveAssignmentsHandler: getActiveAssignmentsHandler,
		getAssignmentHistoryHandler: getAssignmentHistoryHandler,
		getExpiringDocumentsHandler: getExpiringDocumentsHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderID", s.GetOrder)
	api.POST("/orders/:orderID/assign", s.AssignOrder)
	api.POST("/orders/:orderID/load", s.MarkOrderLoaded)
	api.POST("/orders/:orderID/depart", s.MarkOrderEnroute)
	api.POST("/orders/:orderID/deliver", s.MarkOrderDelivered)
	api.POST("/orders/:orderID/request-payment", s.RequestOrderPayment)
	api.POST("/orders/:orderID/confirm-payment", s.ConfirmOrderPayment)
	api.POST("/orders/:orderID/close", s.CloseOrder)

	api.POST("/assignments", s.PairTruckTrailer)
	api.POST("/assignments/:assignmentID/unpair", s.UnpairTruckTrailer)
	api.GET("/assignments/active", s.GetActivePairings)
	api.GET("/assignments/history", s.GetPairingHistory)

	api.GET("/documents/expiring", s.GetExpiringDocuments)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// actorFromRequest builds the acting user from the identity headers. Role
// validity is enforced by the command constructors; here only the ID format
// is checked.
func actorFromRequest(ctx echo.Context) (services.Actor, error) {
	rawID := ctx.Request().Header.Get(headerActorID)
	if rawID == "" {
		return services.Actor{}, errs.NewValueIsRequiredError(headerActorID)
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return services.Actor{}, errs.NewValueIsInvalidErrorWithCause(headerActorID, err)
	}

	return services.Actor{
		ID:   id,
		Role: services.Role(ctx.Request().Header.Get(headerActorRole)),
	}, nil
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
