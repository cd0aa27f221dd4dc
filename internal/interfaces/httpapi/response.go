package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/oversteer/fantasy-gp/internal/domain/team"
	"github.com/oversteer/fantasy-gp/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "fantasy-gp"
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	writeJSON(ctx, w, mapped.HTTPStatus, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: err.Error(),
			Status:  mapped.Status,
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  mapped.Reason,
					Message: err.Error(),
				},
			},
		},
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	const msg = "internal server error"

	writeJSON(ctx, w, http.StatusInternalServerError, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    http.StatusInternalServerError,
			Message: msg,
			Status:  "INTERNAL",
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  "internalError",
					Message: msg,
				},
			},
		},
	})
}

// mapError translates errors into HTTP responses. The Reason strings for
// market, lineup, and sync rejections are part of the API contract; clients
// branch on them, so they never change spelling.
func mapError(ctx context.Context, err error) mappedError {
	ctx, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrTeamNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Reason:     "team_not_found",
			Status:     "NOT_FOUND",
		}
	case errors.Is(err, usecase.ErrRaceNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Reason:     "race_not_found",
			Status:     "NOT_FOUND",
		}
	case errors.Is(err, usecase.ErrLineupLocked):
		return mappedError{
			HTTPStatus: http.StatusConflict,
			Reason:     "lineup_locked",
			Status:     "FAILED_PRECONDITION",
		}
	case errors.Is(err, usecase.ErrRaceAlreadyScored):
		return mappedError{
			HTTPStatus: http.StatusConflict,
			Reason:     "race_already_scored",
			Status:     "FAILED_PRECONDITION",
		}
	case errors.Is(err, usecase.ErrNoClassificationData):
		return mappedError{
			HTTPStatus: http.StatusConflict,
			Reason:     "no_classification_data",
			Status:     "FAILED_PRECONDITION",
		}
	case errors.Is(err, team.ErrNotOwned):
		return mappedError{
			HTTPStatus: http.StatusConflict,
			Reason:     "not_owned",
			Status:     "FAILED_PRECONDITION",
		}
	case errors.Is(err, team.ErrAlreadyOwned):
		return mappedError{
			HTTPStatus: http.StatusConflict,
			Reason:     "already_owned",
			Status:     "FAILED_PRECONDITION",
		}
	case errors.Is(err, team.ErrUnknownDriverIn):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "invalid_driver_in",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, team.ErrUnknownDriverOut):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "invalid_driver_out",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, team.ErrTeamFull):
		return mappedError{
			HTTPStatus: http.StatusConflict,
			Reason:     "team_full",
			Status:     "FAILED_PRECONDITION",
		}
	case errors.Is(err, team.ErrInsufficientBudget):
		return mappedError{
			HTTPStatus: http.StatusConflict,
			Reason:     "insufficient_budget",
			Status:     "FAILED_PRECONDITION",
		}
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "invalidInput",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Reason:     "notFound",
			Status:     "NOT_FOUND",
		}
	case errors.Is(err, usecase.ErrUnauthorized):
		return mappedError{
			HTTPStatus: http.StatusUnauthorized,
			Reason:     "unauthorized",
			Status:     "UNAUTHENTICATED",
		}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{
			HTTPStatus: http.StatusServiceUnavailable,
			Reason:     "dependencyUnavailable",
			Status:     "UNAVAILABLE",
		}
	default:
		return mappedError{
			HTTPStatus: http.StatusInternalServerError,
			Reason:     "internalError",
			Status:     "INTERNAL",
		}
	}
}
