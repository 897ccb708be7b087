// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/Kpacaychuk/type-quiz-bot/middleware"
)

// GetReport handles GET /polls/{id}/report
// Reports are sealed until the poll is finalized (403)
func (h *PollHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	pollID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	report, err := h.svc.GetReport(r.Context(), pollID)
	if err != nil {
		serviceError(w, err, "Failed to load report")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, report)
}
