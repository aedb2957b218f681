package http

import (
	"errors"
	"net/http"

	"haulage/internal/core/domain/model/assignment"
	"haulage/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the error envelope returned by every endpoint.
type ErrorResponse struct {
	Code       int      `json:"code"`
	Kind       string   `json:"kind"`
	Message    string   `json:"message"`
	Reasons    []string `json:"reasons,omitempty"`
	ResourceID string   `json:"resource_id,omitempty"`
}

// writeError maps a use case error onto an HTTP status and the error envelope.
// Unknown errors become a generic 500 so internals never leak to callers.
func writeError(ctx echo.Context, err error) error {
	var complianceErr *errs.ComplianceDeniedError
	if errors.As(err, &complianceErr) {
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Kind:    "compliance_failure",
			Message: complianceErr.Error(),
			Reasons: complianceErr.Reasons,
		})
	}

	var conflictErr *errs.ResourceConflictError
	if errors.As(err, &conflictErr) {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:       http.StatusConflict,
			Kind:       "conflict",
			Message:    conflictErr.Error(),
			ResourceID: conflictErr.ResourceID,
		})
	}

	switch {
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, assignment.ErrAssignmentAlreadyClosed):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Kind:    "state_error",
			Message: err.Error(),
		})

	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Kind:    "not_found",
			Message: err.Error(),
		})

	case errors.Is(err, errs.ErrActionNotAllowed):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Kind:    "authorization",
			Message: err.Error(),
		})

	case isValidationError(err):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Kind:    "validation",
			Message: err.Error(),
		})

	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Kind:    "internal",
			Message: "internal server error",
		})
	}
}

// isValidationError reports whether the error stems from malformed input.
func isValidationError(err error) bool {
	return errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}

// writeBadRequest reports a malformed request that never reached a command
// constructor, such as an unparseable body.
func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Kind:    "validation",
		Message: message,
	})
}
