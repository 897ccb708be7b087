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

type VotingHandler struct {
	svc *polls.Service
	cfg cliparse.Config
}

func NewVotingHandler(svc *polls.Service, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{svc: svc, cfg: cfg}
}

// ToggleVote handles POST /polls/{id}/votes
// Adds the option when absent, removes it when present
func (h *VotingHandler) ToggleVote(w http.ResponseWriter, r *http.Request) {
	var req models.ToggleVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ParticipantID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "participant_id is required")
		return
	}

	res, err := h.svc.ToggleVote(r.Context(), r.PathValue("id"), req.ParticipantID, req.Option)
	if err != nil {
		serviceError(w, err, "Failed to record vote")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Action:    res.Action,
		Option:    res.Option,
		Label:     res.OptionLabel,
		Answers:   res.Answers,
		Complete:  res.Complete,
		Finalized: res.Finalized,
	})
}
