// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Kpacaychuk/type-quiz-bot/middleware"
	"github.com/Kpacaychuk/type-quiz-bot/polls"
)

// statusFor maps service errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, polls.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, polls.ErrPollClosed),
		errors.Is(err, polls.ErrFull),
		errors.Is(err, polls.ErrAlreadyJoined),
		errors.Is(err, polls.ErrSelectionLimitReached),
		errors.Is(err, polls.ErrSelectionLocked):
		return http.StatusConflict
	case errors.Is(err, polls.ErrPollActive):
		return http.StatusForbidden
	case errors.Is(err, polls.ErrInvalidOption),
		errors.Is(err, polls.ErrInvalidOptions),
		errors.Is(err, polls.ErrInvalidName),
		errors.Is(err, polls.ErrInvalidParticipant):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// serviceError writes err as a JSON error. Unexpected errors are logged and
// hidden from the client.
func serviceError(w http.ResponseWriter, err error, msg string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error(msg, "error", err)
		middleware.ErrorResponse(w, status, msg)
		return
	}
	middleware.ErrorResponse(w, status, err.Error())
}
