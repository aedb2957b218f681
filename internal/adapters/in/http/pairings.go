package http

import (
	"net/http"
	"strconv"
	"time"

	"haulage/internal/core/application/usecases/commands"
	"haulage/internal/core/application/usecases/queries"
	"haulage/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// PairTruckTrailerRequest is the body for POST /api/v1/assignments.
type PairTruckTrailerRequest struct {
	TruckID   string `json:"truck_id"`
	TrailerID string `json:"trailer_id"`
}

// PairingResponse is one entry of the truck-trailer pairing ledger.
type PairingResponse struct {
	ID             string     `json:"id"`
	TruckID        string     `json:"truck_id"`
	TruckPlate     string     `json:"truck_plate"`
	TrailerID      string     `json:"trailer_id"`
	TrailerPlate   string     `json:"trailer_plate"`
	AssignedDate   time.Time  `json:"assigned_date"`
	UnassignedDate *time.Time `json:"unassigned_date,omitempty"`
}

// ExpiringDocumentResponse is one document approaching its expiry date.
type ExpiringDocumentResponse struct {
	SubjectKind string    `json:"subject_kind"`
	SubjectID   string    `json:"subject_id"`
	SubjectRef  string    `json:"subject_ref"`
	Document    string    `json:"document"`
	ExpiresOn   time.Time `json:"expires_on"`
}

// PairTruckTrailer handles POST /api/v1/assignments - records a new
// truck-trailer pairing, superseding any active entries holding either vehicle.
func (s *Server) PairTruckTrailer(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req PairTruckTrailerRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	truckID, err := kernel.UUIDFromString(req.TruckID)
	if err != nil {
		return writeBadRequest(ctx, "truck_id must be a valid UUID")
	}
	trailerID, err := kernel.UUIDFromString(req.TrailerID)
	if err != nil {
		return writeBadRequest(ctx, "trailer_id must be a valid UUID")
	}

	cmd, err := commands.NewPairTruckTrailerCommand(truckID, trailerID, actor)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err := s.pairTruckTrailerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UnpairTruckTrailer handles POST /api/v1/assignments/:assignmentID/unpair -
// closes an active ledger entry.
func (s *Server) UnpairTruckTrailer(ctx echo.Context) error {
	assignmentID, err := pathUUID(ctx, "assignmentID")
	if err != nil {
		return writeError(ctx, err)
	}

	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUnpairTruckTrailerCommand(assignmentID, actor)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err := s.unpairTruckTrailerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActivePairings handles GET /api/v1/assignments/active.
func (s *Server) GetActivePairings(ctx echo.Context) error {
	query := queries.NewGetActiveAssignmentsQuery()

	entries, err := s.getActiveAssignmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]PairingResponse, len(entries))
	for i, entry := range entries {
		response[i] = PairingResponse{
			ID:           entry.ID.String(),
			TruckID:      entry.TruckID.String(),
			TruckPlate:   entry.TruckPlate,
			TrailerID:    entry.TrailerID.String(),
			TrailerPlate: entry.TrailerPlate,
			AssignedDate: entry.AssignedDate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPairingHistory handles GET /api/v1/assignments/history. An optional
// truck_id query parameter narrows the history to one truck.
func (s *Server) GetPairingHistory(ctx echo.Context) error {
	var truckID *kernel.UUID
	if raw := ctx.QueryParam("truck_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeBadRequest(ctx, "truck_id must be a valid UUID")
		}
		truckID = &id
	}

	query, err := queries.NewGetAssignmentHistoryQuery(truckID)
	if err != nil {
		return writeError(ctx, err)
	}

	entries, err := s.getAssignmentHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]PairingResponse, len(entries))
	for i, entry := range entries {
		response[i] = PairingResponse{
			ID:             entry.ID.String(),
			TruckID:        entry.TruckID.String(),
			TruckPlate:     entry.TruckPlate,
			TrailerID:      entry.TrailerID.String(),
			TrailerPlate:   entry.TrailerPlate,
			AssignedDate:   entry.AssignedDate,
			UnassignedDate: entry.UnassignedDate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// defaultExpiryWindowDays is used when the within_days query parameter is absent.
const defaultExpiryWindowDays = 30

// GetExpiringDocuments handles GET /api/v1/documents/expiring.
func (s *Server) GetExpiringDocuments(ctx echo.Context) error {
	withinDays := defaultExpiryWindowDays
	if raw := ctx.QueryParam("within_days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return writeBadRequest(ctx, "within_days must be an integer")
		}
		withinDays = parsed
	}

	query, err := queries.NewGetExpiringDocumentsQuery(withinDays)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	documents, err := s.getExpiringDocumentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ExpiringDocumentResponse, len(documents))
	for i, doc := range documents {
		response[i] = ExpiringDocumentResponse{
			SubjectKind: doc.SubjectKind,
			SubjectID:   doc.SubjectID.String(),
			SubjectRef:  doc.SubjectRef,
			Document:    doc.Document,
			ExpiresOn:   doc.ExpiresOn,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
