// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"log/slog"
	"sort"

	"github.com/Kpacaychuk/type-quiz-bot/auth"
	"github.com/Kpacaychuk/type-quiz-bot/models"
)

// VoteResult describes what a toggle did
type VoteResult struct {
	Action      string
	Option      int
	OptionLabel string
	Answers     []int
	Complete    bool // participant holds a full selection
	Finalized   bool // this toggle closed the poll
	Report      *models.Report
}

// ToggleVote adds option to the participant's selection, or removes it when
// already selected. The answer record is created on the first toggle.
func (s *Service) ToggleVote(ctx context.Context, pollID, participantID string, option int) (VoteResult, error) {
	if option < 1 || option > models.OptionCount {
		return VoteResult{}, ErrInvalidOption
	}
	if participantID == "" {
		return VoteResult{}, ErrInvalidParticipant
	}
	pollID = auth.NormalizePollCode(pollID)
	if !auth.IsValidPollCode(pollID) {
		return VoteResult{}, ErrNotFound
	}

	unlock := s.locks.Lock(pollID)
	result, err := s.toggleLocked(ctx, pollID, participantID, option)
	unlock()
	if err != nil {
		return VoteResult{}, err
	}

	if result.Report != nil {
		s.deliver(ctx, result.Report)
	}
	return result, nil
}

func (s *Service) toggleLocked(ctx context.Context, pollID, participantID string, option int) (VoteResult, error) {
	_, current, err := s.loadPoll(ctx, pollID)
	if err != nil {
		return VoteResult{}, err
	}
	if !current.Active {
		return VoteResult{}, ErrPollClosed
	}

	poll := current.Clone()
	answer, ok := poll.Participants[participantID]
	if !ok {
		if len(poll.Participants) >= s.rules.Capacity {
			return VoteResult{}, ErrFull
		}
		answer = &models.ParticipantAnswer{Answers: []int{}}
		poll.Participants[participantID] = answer
	}

	result := VoteResult{Option: option, OptionLabel: poll.Options[option-1]}
	locked := s.rules.CompletionPolicy == models.CompletionLock && len(answer.Answers) >= s.rules.SelectionLimit

	if i := indexOf(answer.Answers, option); i >= 0 {
		if locked {
			return VoteResult{}, ErrSelectionLocked
		}
		answer.Answers = append(answer.Answers[:i], answer.Answers[i+1:]...)
		result.Action = models.VoteRemoved
	} else {
		if locked {
			return VoteResult{}, ErrSelectionLocked
		}
		if len(answer.Answers) >= s.rules.SelectionLimit {
			return VoteResult{}, ErrSelectionLimitReached
		}
		answer.Answers = append(answer.Answers, option)
		sort.Ints(answer.Answers)
		result.Action = models.VoteAdded
	}
	answer.UpdatedAt = s.now()

	result.Answers = append([]int(nil), answer.Answers...)
	result.Complete = len(answer.Answers) == s.rules.SelectionLimit

	var report *models.Report
	if s.isComplete(poll) {
		if report, err = s.closePoll(poll); err != nil {
			return VoteResult{}, err
		}
	}

	err = s.commit(ctx, func(state *models.State) error {
		state.Polls[pollID] = poll
		if report != nil {
			s.resolveNames(state, report)
			state.Reports[pollID] = report
		}
		return nil
	})
	if err != nil {
		return VoteResult{}, err
	}

	slog.Info("vote recorded",
		"poll_id", pollID,
		"participant_id", participantID,
		"action", result.Action,
		"option", option,
		"answers", len(result.Answers),
	)

	if report != nil {
		result.Finalized = true
		result.Report = report
	}
	return result, nil
}

func indexOf(values []int, v int) int {
	for i, x := range values {
		if x == v {
			return i
		}
	}
	return -1
}
