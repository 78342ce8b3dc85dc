package httpx

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	apperrors "orientalgroup/internal/errors"
)

type errorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

func WriteJSON(logger *zap.Logger, w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// WriteError maps the typed error taxonomy onto HTTP statuses. Anything
// untyped is a store or programming failure: it is logged with its cause and
// surfaced as an opaque 500.
func WriteError(logger *zap.Logger, w http.ResponseWriter, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		WriteJSON(logger, w, http.StatusBadRequest, errorResponse{
			Error:   "VALIDATION_ERROR",
			Message: ve.Message,
			Details: ve.Details,
		})
		return
	}

	if ise, ok := apperrors.IsInvalidStatusError(err); ok {
		WriteJSON(logger, w, http.StatusBadRequest, errorResponse{
			Error:   "INVALID_STATUS",
			Message: ise.Error(),
		})
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		WriteJSON(logger, w, http.StatusNotFound, errorResponse{
			Error:   "NOT_FOUND",
			Message: nfe.Message,
		})
		return
	}

	if ce, ok := apperrors.IsConflictError(err); ok {
		WriteJSON(logger, w, http.StatusConflict, errorResponse{
			Error:   "CONFLICT",
			Message: ce.Message,
		})
		return
	}

	if ue, ok := apperrors.IsUnauthorizedError(err); ok {
		WriteJSON(logger, w, http.StatusUnauthorized, errorResponse{
			Error:   "UNAUTHORIZED",
			Message: ue.Message,
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	WriteJSON(logger, w, http.StatusInternalServerError, errorResponse{
		Error:   "INTERNAL_ERROR",
		Message: "an unexpected error occurred",
	})
}
