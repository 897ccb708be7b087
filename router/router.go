// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/Kpacaychuk/type-quiz-bot/cliparse"
	"github.com/Kpacaychuk/type-quiz-bot/handlers"
	"github.com/Kpacaychuk/type-quiz-bot/middleware"
	"github.com/Kpacaychuk/type-quiz-bot/polls"
	"github.com/Kpacaychuk/type-quiz-bot/telegram"
)

// NewRouter registers the API. bot may be nil when the chat bot is disabled.
func NewRouter(svc *polls.Service, cfg cliparse.Config, bot *telegram.Bot) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(svc, cfg)
	votingHandler := handlers.NewVotingHandler(svc, cfg)
	participantHandler := handlers.NewParticipantHandler(svc, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Poll registry
	mux.HandleFunc("POST /polls", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("POST /polls/{id}/join", middleware.WithLogging(pollHandler.JoinPoll))

	// Voting
	mux.HandleFunc("POST /polls/{id}/votes", middleware.WithLogging(votingHandler.ToggleVote))

	// Finalization and reports (admin, requires X-Admin-Key)
	mux.HandleFunc("POST /polls/{id}/finalize", middleware.WithLogging(pollHandler.FinalizePoll))
	mux.HandleFunc("GET /polls/{id}/report", middleware.WithLogging(pollHandler.GetReport))

	// Participants
	mux.HandleFunc("PUT /participants/{id}/name", middleware.WithLogging(participantHandler.SetName))
	mux.HandleFunc("GET /participants/{id}/name", middleware.WithLogging(participantHandler.GetName))
	mux.HandleFunc("GET /participants/{id}/polls", middleware.WithLogging(participantHandler.GetMyPolls))

	// Chat bot
	if bot != nil {
		mux.HandleFunc("POST /telegram/webhook", middleware.WithLogging(bot.WebhookHandler))
	}

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("type-quiz-bot API v1"))
	})

	return mux
}
