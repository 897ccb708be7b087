// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package telegram is the chat front end of the poll service.

# Client

Client is a thin Bot API wrapper over net/http. NewClientWithURL points it
at a local Bot API server or a test double.

# Updates

UpdateHandler dispatches messages and callback queries:

	/start                       greet, or ask for a name
	/change_my_name              ask for a new name
	/create_poll [o1 .. o5]      alias /create_quiz
	/join_poll CODE              alias /join_to_quiz

Options containing spaces go in double quotes. Joining sends an inline
keyboard whose buttons carry vote:<poll>:<option>. Name entry is the only
conversation state and lives in memory.

# Bot

Bot receives updates through WebhookHandler or, without a public URL,
through Poll. It also implements polls.ReportDeliverer:

	svc.SetDeliverer(bot)

so finalized reports are sent to the creator's private chat, split into
chunks of at most MaxMessageLength bytes.
*/
package telegram
