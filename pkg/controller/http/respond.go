package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/atrium-hq/atrium/pkg/domain/model"
	"github.com/atrium-hq/atrium/pkg/usecase"
	"github.com/atrium-hq/atrium/pkg/utils/errutil"
)

func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data) //nolint:errcheck // header already committed
}

// respondError maps use case and validation errors to HTTP statuses
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	errutil.HandleHTTP(r.Context(), w, err, statusOf(err))
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, usecase.ErrMeetingNotFound),
		errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrTaskNotFound),
		errors.Is(err, usecase.ErrAttendanceNotFound):
		return http.StatusNotFound

	case errors.Is(err, usecase.ErrMeetingAlreadyActive),
		errors.Is(err, usecase.ErrMeetingNotScheduled),
		errors.Is(err, usecase.ErrActiveMeetingDeletion),
		errors.Is(err, usecase.ErrInvalidTransition):
		return http.StatusConflict

	case errors.Is(err, usecase.ErrNoActiveMeeting):
		return http.StatusNotFound

	case isValidationError(err):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		model.ErrMissingTitle,
		model.ErrInvalidDate,
		model.ErrInvalidTime,
		model.ErrInvalidDuration,
		model.ErrInvalidAttendee,
		model.ErrDuplicateAttendee,
		model.ErrInvalidStatus,
		model.ErrInvalidRecurrence,
		model.ErrMissingName,
		model.ErrInvalidEmail,
		model.ErrMissingAssignee,
		model.ErrInvalidPriority,
		model.ErrInvalidState,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(err, "invalid request body")
	}
	return nil
}
