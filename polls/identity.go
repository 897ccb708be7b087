// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/Kpacaychuk/type-quiz-bot/models"
)

// MaxNameLength bounds first and last names, in characters
const MaxNameLength = 50

// GetName returns the stored display name, if any
func (s *Service) GetName(ctx context.Context, participantID string) (models.Identity, bool, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return models.Identity{}, false, fmt.Errorf("load state: %w", err)
	}
	ident, ok := state.Identities[participantID]
	return ident, ok, nil
}

// SetName stores or replaces a participant's display name
func (s *Service) SetName(ctx context.Context, participantID, first, last string) (models.Identity, error) {
	if participantID == "" {
		return models.Identity{}, ErrInvalidParticipant
	}
	first, last = strings.TrimSpace(first), strings.TrimSpace(last)
	if !validNamePart(first) || !validNamePart(last) {
		return models.Identity{}, ErrInvalidName
	}

	ident := models.Identity{FirstName: first, LastName: last, UpdatedAt: s.now()}
	err := s.commit(ctx, func(state *models.State) error {
		state.Identities[participantID] = ident
		return nil
	})
	if err != nil {
		return models.Identity{}, err
	}

	slog.Info("name updated", "participant_id", participantID)
	return ident, nil
}

func validNamePart(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= 1 && n <= MaxNameLength
}

// ParseFullName splits "First Last" on the first run of whitespace. Any
// further words belong to the last name.
func ParseFullName(text string) (first, last string, err error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return "", "", ErrInvalidName
	}
	first = fields[0]
	last = strings.Join(fields[1:], " ")
	if !validNamePart(first) || !validNamePart(last) {
		return "", "", ErrInvalidName
	}
	return first, last, nil
}

// RememberUsername caches a chat handle on every active poll the
// participant answers. Closed polls are left as they were.
func (s *Service) RememberUsername(ctx context.Context, participantID, username string) error {
	if participantID == "" || username == "" {
		return nil
	}
	state, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	for id, poll := range state.Polls {
		a, ok := poll.Participants[participantID]
		if !ok || !poll.Active || a.Username == username {
			continue
		}
		if err := s.setUsername(ctx, id, participantID, username); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) setUsername(ctx context.Context, pollID, participantID, username string) error {
	unlock := s.locks.Lock(pollID)
	defer unlock()

	_, current, err := s.loadPoll(ctx, pollID)
	if err != nil {
		return err
	}
	if _, ok := current.Participants[participantID]; !ok || !current.Active {
		return nil
	}

	poll := current.Clone()
	poll.Participants[participantID].Username = username
	return s.commit(ctx, func(state *models.State) error {
		state.Polls[pollID] = poll
		return nil
	})
}
