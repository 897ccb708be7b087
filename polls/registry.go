// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/Kpacaychuk/type-quiz-bot/auth"
	"github.com/Kpacaychuk/type-quiz-bot/models"
)

// MaxOptionLength caps an option label (Telegram button text limit)
const MaxOptionLength = 64

// codeAttempts bounds retries when a generated code is already taken
const codeAttempts = 8

// Poll roles in a participant's poll list
const (
	RoleCreator     = "creator"
	RoleParticipant = "participant"
)

// NormalizeOptions validates user-supplied options. Nil or empty input
// selects the default labels.
func NormalizeOptions(options []string) ([]string, error) {
	if len(options) == 0 {
		return models.DefaultOptionLabels(), nil
	}
	if len(options) != models.OptionCount {
		return nil, ErrInvalidOptions
	}

	out := make([]string, 0, models.OptionCount)
	for _, opt := range options {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			return nil, ErrInvalidOptions
		}
		out = append(out, truncateRunes(opt, MaxOptionLength))
	}
	return out, nil
}

func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// CreatePoll registers a new active poll owned by creatorID
func (s *Service) CreatePoll(ctx context.Context, creatorID string, options []string) (*models.Poll, error) {
	if creatorID == "" {
		return nil, ErrInvalidParticipant
	}
	opts, err := NormalizeOptions(options)
	if err != nil {
		return nil, err
	}

	var poll *models.Poll
	err = s.commit(ctx, func(state *models.State) error {
		for attempt := 0; attempt < codeAttempts; attempt++ {
			code, err := s.newCode()
			if err != nil {
				return err
			}
			if _, taken := state.Polls[code]; taken {
				slog.Warn("poll code collision", "poll_id", code, "attempt", attempt+1)
				continue
			}
			if _, taken := state.Reports[code]; taken {
				continue
			}

			poll = &models.Poll{
				ID:           code,
				CreatorID:    creatorID,
				Active:       true,
				Options:      opts,
				Participants: make(map[string]*models.ParticipantAnswer),
				CreatedAt:    s.now(),
			}
			state.Polls[code] = poll
			return nil
		}
		return ErrIDExhausted
	})
	if err != nil {
		return nil, err
	}

	slog.Info("poll created", "poll_id", poll.ID, "creator_id", creatorID)
	return poll, nil
}

// GetPoll looks a poll up by code, case-insensitively
func (s *Service) GetPoll(ctx context.Context, id string) (*models.Poll, error) {
	id = auth.NormalizePollCode(id)
	if !auth.IsValidPollCode(id) {
		return nil, ErrNotFound
	}
	_, poll, err := s.loadPoll(ctx, id)
	return poll, err
}

// JoinPoll checks that participantID may start answering the poll. The
// answer record itself is created by the first vote. Checks run in order:
// not found, closed, full, already joined. ErrAlreadyJoined comes back
// together with the poll so callers can show it again.
func (s *Service) JoinPoll(ctx context.Context, id, participantID string) (*models.Poll, error) {
	if participantID == "" {
		return nil, ErrInvalidParticipant
	}
	poll, err := s.GetPoll(ctx, id)
	if err != nil {
		return nil, err
	}

	if !poll.Active {
		return nil, ErrPollClosed
	}
	// A full poll is full for everybody, members included
	if len(poll.Participants) >= s.rules.Capacity {
		return nil, ErrFull
	}
	if _, ok := poll.Participants[participantID]; ok {
		return poll, ErrAlreadyJoined
	}

	slog.Info("participant joined", "poll_id", poll.ID, "participant_id", participantID)
	return poll, nil
}

// ListParticipantPolls returns the polls a participant created or answered,
// newest first
func (s *Service) ListParticipantPolls(ctx context.Context, participantID string) ([]models.PollSummary, error) {
	if participantID == "" {
		return nil, ErrInvalidParticipant
	}
	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	type entry struct {
		summary models.PollSummary
		poll    *models.Poll
	}
	var entries []entry
	for _, poll := range state.Polls {
		summary := models.PollSummary{
			PollID:    poll.ID,
			Active:    poll.Active,
			Responses: len(poll.Participants),
		}
		answer, answered := poll.Participants[participantID]
		switch {
		case poll.CreatorID == participantID:
			summary.Role = RoleCreator
		case answered:
			summary.Role = RoleParticipant
		default:
			continue
		}
		if answered {
			summary.Answers = append([]int(nil), answer.Answers...)
		}
		entries = append(entries, entry{summary: summary, poll: poll})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].poll, entries[j].poll
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	out := make([]models.PollSummary, len(entries))
	for i, e := range entries {
		out[i] = e.summary
	}
	return out, nil
}

// View builds the public representation of a poll
func (s *Service) View(poll *models.Poll) models.PollView {
	completed := 0
	for _, a := range poll.Participants {
		if len(a.Answers) == s.rules.SelectionLimit {
			completed++
		}
	}
	return models.PollView{
		ID:               poll.ID,
		CreatorID:        poll.CreatorID,
		Active:           poll.Active,
		Options:          append([]string(nil), poll.Options...),
		ParticipantCount: len(poll.Participants),
		CompletedCount:   completed,
		Capacity:         s.rules.Capacity,
		CreatedAt:        poll.CreatedAt,
		FinalizedAt:      poll.FinalizedAt,
	}
}
