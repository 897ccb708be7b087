// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/Kpacaychuk/type-quiz-bot/cliparse"
	"github.com/Kpacaychuk/type-quiz-bot/middleware"
	"github.com/Kpacaychuk/type-quiz-bot/models"
	"github.com/Kpacaychuk/type-quiz-bot/polls"
)

type ParticipantHandler struct {
	svc *polls.Service
	cfg cliparse.Config
}

func NewParticipantHandler(svc *polls.Service, cfg cliparse.Config) *ParticipantHandler {
	return &ParticipantHandler{svc: svc, cfg: cfg}
}

// SetName handles PUT /participants/{id}/name
func (h *ParticipantHandler) SetName(w http.ResponseWriter, r *http.Request) {
	participantID := r.PathValue("id")

	var req models.SetNameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	ident, err := h.svc.SetName(r.Context(), participantID, req.FirstName, req.LastName)
	if err != nil {
		serviceError(w, err, "Failed to save name")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.NameResponse{
		ParticipantID: participantID,
		FirstName:     ident.FirstName,
		LastName:      ident.LastName,
	})
}

// GetName handles GET /participants/{id}/name
func (h *ParticipantHandler) GetName(w http.ResponseWriter, r *http.Request) {
	participantID := r.PathValue("id")

	ident, ok, err := h.svc.GetName(r.Context(), participantID)
	if err != nil {
		serviceError(w, err, "Failed to load name")
		return
	}
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Name not set")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.NameResponse{
		ParticipantID: participantID,
		FirstName:     ident.FirstName,
		LastName:      ident.LastName,
	})
}

// GetMyPolls handles GET /participants/{id}/polls
// Lists polls the participant created or answered, newest first
func (h *ParticipantHandler) GetMyPolls(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.ListParticipantPolls(r.Context(), r.PathValue("id"))
	if err != nil {
		serviceError(w, err, "Failed to list polls")
		return
	}

	if summaries == nil {
		summaries = []models.PollSummary{}
	}

	middleware.JSONResponse(w, http.StatusOK, models.ParticipantPollsResponse{Polls: summaries})
}
