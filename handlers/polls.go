// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/Kpacaychuk/type-quiz-bot/auth"
	"github.com/Kpacaychuk/type-quiz-bot/cliparse"
	"github.com/Kpacaychuk/type-quiz-bot/middleware"
	"github.com/Kpacaychuk/type-quiz-bot/models"
	"github.com/Kpacaychuk/type-quiz-bot/polls"
)

type PollHandler struct {
	svc *polls.Service
	cfg cliparse.Config
}

func NewPollHandler(svc *polls.Service, cfg cliparse.Config) *PollHandler {
	return &PollHandler{svc: svc, cfg: cfg}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.CreatorID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "creator_id is required")
		return
	}

	poll, err := h.svc.CreatePoll(r.Context(), req.CreatorID, req.Options)
	if err != nil {
		serviceError(w, err, "Failed to create poll")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		PollID:   poll.ID,
		AdminKey: auth.GenerateAdminKey(poll.ID, h.cfg.AdminKeySalt),
		Options:  poll.Options,
	})
}

// GetPoll handles GET /polls/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	poll, err := h.svc.GetPoll(r.Context(), r.PathValue("id"))
	if err != nil {
		serviceError(w, err, "Failed to load poll")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.svc.View(poll))
}

// JoinPoll handles POST /polls/{id}/join
func (h *PollHandler) JoinPoll(w http.ResponseWriter, r *http.Request) {
	var req models.JoinPollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	poll, err := h.svc.JoinPoll(r.Context(), r.PathValue("id"), req.ParticipantID)
	if err != nil && !errors.Is(err, polls.ErrAlreadyJoined) {
		serviceError(w, err, "Failed to join poll")
		return
	}

	// Rejoining an open poll is harmless: the participant just gets the
	// options again. A full poll answers 409 for everybody.
	middleware.JSONResponse(w, http.StatusOK, models.JoinPollResponse{
		PollID:  poll.ID,
		Options: poll.Options,
	})
}

// FinalizePoll handles POST /polls/{id}/finalize
// Closes the poll when it is complete. finalized reports whether the poll is
// closed after the call; an already closed poll returns its stored report.
func (h *PollHandler) FinalizePoll(w http.ResponseWriter, r *http.Request) {
	pollID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	report, err := h.svc.CheckFinalize(r.Context(), pollID)
	if err != nil {
		serviceError(w, err, "Failed to finalize poll")
		return
	}

	finalized := true
	if report == nil {
		report, err = h.svc.GetReport(r.Context(), pollID)
		switch {
		case errors.Is(err, polls.ErrPollActive):
			finalized = false
		case errors.Is(err, polls.ErrNotFound):
			// Closed before reports were stored
		case err != nil:
			serviceError(w, err, "Failed to load report")
			return
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.FinalizeResponse{
		Finalized: finalized,
		Report:    report,
	})
}

// authorize validates the X-Admin-Key header against the normalized poll id
func (h *PollHandler) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	pollID := auth.NormalizePollCode(r.PathValue("id"))
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return "", false
	}

	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(pollID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return "", false
	}
	return pollID, true
}
