// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types shared by the
HTTP API, the chat bot and the storage backends.

# Request Types

  - CreatePollRequest: creator_id, options (optional, exactly 5)
  - JoinPollRequest: participant_id
  - ToggleVoteRequest: participant_id, option (1..5)
  - SetNameRequest: first_name, last_name

# Response Types

  - CreatePollResponse: poll_id, admin_key, options
  - JoinPollResponse: poll_id, options
  - PollView: public poll state with counts
  - VoteResponse: action, option, answers, complete, finalized
  - FinalizeResponse: finalized, report
  - NameResponse, ParticipantPollsResponse
  - ErrorResponse: error, message

# Domain Types

  - Poll: code, creator, active flag, 5 options, participant answers
  - ParticipantAnswer: selected option indices (1-based)
  - Identity: participant display name
  - Report: finalized groups with resolved names
  - State: the persisted document (identities, polls, reports)

# Constants

Vote actions:

	VoteAdded   = "added"
	VoteRemoved = "removed"

Completion policies:

	CompletionRevise = "revise"
	CompletionLock   = "lock"
*/
package models
