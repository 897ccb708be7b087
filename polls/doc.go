// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package polls runs the poll lifecycle on top of a store.Store.

# Lifecycle

A creator opens a poll and shares its 6 character code. Participants join
with the code and toggle options until each holds a full selection:

	svc, err := polls.NewService(st, polls.RulesFromConfig(cfg), rng)
	poll, err := svc.CreatePoll(ctx, creatorID, nil)
	_, err = svc.JoinPoll(ctx, poll.ID, participantID)
	res, err := svc.ToggleVote(ctx, poll.ID, participantID, 2)

The toggle that makes the poll full and complete closes it, groups the
participants and stores a Report. The report is then handed to the
configured ReportDeliverer:

	svc.SetDeliverer(bot)

GetReport reads it back later; it returns ErrPollActive while the poll is
still open. CheckFinalize runs the same check on demand and does nothing for
incomplete or closed polls.

# Rules

	Capacity          participants needed to close a poll (35)
	GroupSize         target group size (5)
	SelectionLimit    options each participant picks (3)
	CompletionPolicy  "revise" keeps full selections editable, "lock" freezes them

# Concurrency

Mutations of one poll are serialized by a per-poll lock. Writes go through a
short store-wide commit that reloads the document and replaces only the
records the mutation touched, so different polls proceed in parallel without
losing each other's updates. Delivery happens after the lock is released.

# Names

SetName stores the display name shown in reports. Names are resolved when the
report is built, so a participant who never set one shows up as unknown.
*/
package polls
