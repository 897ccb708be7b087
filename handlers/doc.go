// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the poll API.

# Handler Types

Each handler is a struct with service and config dependencies:

  - PollHandler: Poll registry, finalization and reports
  - VotingHandler: Option toggles
  - ParticipantHandler: Display names and poll history

Handlers are created via constructor functions that accept the service and Config:

	pollHandler := handlers.NewPollHandler(svc, cfg)

# Poll Lifecycle

Polls are active until full and complete, then closed for good:

	POST /polls               → CreatePoll (returns admin_key)
	GET  /polls/{id}          → GetPoll
	POST /polls/{id}/join     → JoinPoll
	POST /polls/{id}/votes    → ToggleVote
	POST /polls/{id}/finalize → FinalizePoll (admin)
	GET  /polls/{id}/report   → GetReport (admin, 403 while active)

Admin operations require the X-Admin-Key header.

# Participants

	PUT /participants/{id}/name  → SetName
	GET /participants/{id}/name  → GetName
	GET /participants/{id}/polls → GetMyPolls

# Errors

Service errors map onto status codes: unknown polls are 404, state
conflicts (closed, full, selection limit) are 409, bad input is 400 and a
report requested before finalization is 403.
*/
package handlers
