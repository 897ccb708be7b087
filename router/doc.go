// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the type-quiz-bot API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc, cfg, bot)

bot may be nil, in which case the webhook route is not registered.

# Endpoints

Health:

	GET /health

Polls:

	POST /polls              - Create poll (returns the admin key)
	GET  /polls/{id}         - Options, status and participant count
	POST /polls/{id}/join    - Check a participant may answer
	POST /polls/{id}/votes   - Toggle one option

Admin (requires X-Admin-Key):

	POST /polls/{id}/finalize - Run the finalization check
	GET  /polls/{id}/report   - Grouping report (finalized polls only)

Participants:

	PUT /participants/{id}/name  - Set display name
	GET /participants/{id}/name  - Get display name
	GET /participants/{id}/polls - Polls created or answered

Chat bot:

	POST /telegram/webhook - Bot API updates (X-Telegram-Bot-Api-Secret-Token)

All handlers share one polls.Service.
*/
package router
