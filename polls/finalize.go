// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Kpacaychuk/type-quiz-bot/auth"
	"github.com/Kpacaychuk/type-quiz-bot/grouping"
	"github.com/Kpacaychuk/type-quiz-bot/models"
)

// isComplete reports whether an active poll is full and every participant
// holds a full selection
func (s *Service) isComplete(poll *models.Poll) bool {
	if !poll.Active || len(poll.Participants) != s.rules.Capacity {
		return false
	}
	for _, a := range poll.Participants {
		if len(a.Answers) != s.rules.SelectionLimit {
			return false
		}
	}
	return true
}

// closePoll deactivates the poll and groups its participants. Names are
// filled in later, from the state the report is committed against.
func (s *Service) closePoll(poll *models.Poll) (*models.Report, error) {
	answers := make(map[string][]int, len(poll.Participants))
	for id, a := range poll.Participants {
		answers[id] = a.Answers
	}

	s.rngMu.Lock()
	groups, err := grouping.MakeGroups(answers, s.rules.GroupSize, s.rng)
	s.rngMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("group participants: %w", err)
	}

	now := s.now()
	poll.Active = false
	poll.FinalizedAt = &now

	report := buildReport(poll, groups, now)
	slog.Info("poll finalized", "poll_id", poll.ID, "participants", len(poll.Participants), "groups", len(groups))
	return report, nil
}

// CheckFinalize closes the poll when it is complete. It returns the new
// report, or nil when the poll is incomplete or already closed.
func (s *Service) CheckFinalize(ctx context.Context, pollID string) (*models.Report, error) {
	pollID = auth.NormalizePollCode(pollID)
	if !auth.IsValidPollCode(pollID) {
		return nil, ErrNotFound
	}

	unlock := s.locks.Lock(pollID)
	report, err := s.finalizeLocked(ctx, pollID)
	unlock()
	if err != nil || report == nil {
		return nil, err
	}

	s.deliver(ctx, report)
	return report, nil
}

func (s *Service) finalizeLocked(ctx context.Context, pollID string) (*models.Report, error) {
	_, current, err := s.loadPoll(ctx, pollID)
	if err != nil {
		return nil, err
	}
	if !s.isComplete(current) {
		return nil, nil
	}

	poll := current.Clone()
	report, err := s.closePoll(poll)
	if err != nil {
		return nil, err
	}

	err = s.commit(ctx, func(state *models.State) error {
		state.Polls[pollID] = poll
		s.resolveNames(state, report)
		state.Reports[pollID] = report
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// GetReport returns the stored report of a finalized poll
func (s *Service) GetReport(ctx context.Context, pollID string) (*models.Report, error) {
	pollID = auth.NormalizePollCode(pollID)
	if !auth.IsValidPollCode(pollID) {
		return nil, ErrNotFound
	}
	state, poll, err := s.loadPoll(ctx, pollID)
	if err != nil {
		return nil, err
	}
	if poll.Active {
		return nil, ErrPollActive
	}
	report, ok := state.Reports[pollID]
	if !ok {
		return nil, fmt.Errorf("report for closed poll %s is missing: %w", pollID, ErrNotFound)
	}
	return report, nil
}
