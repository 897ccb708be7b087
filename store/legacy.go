// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/Kpacaychuk/type-quiz-bot/models"
)

// The legacy document kept identities under "users" and every poll as a
// top-level key next to it.

const legacyUsersKey = "users"

type legacyUser struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type legacyParticipant struct {
	Answers  []int  `json:"answers"`
	Username string `json:"username"`
}

type legacyPoll struct {
	Creator      json.Number                  `json:"creator"`
	Active       bool                         `json:"active"`
	Participants map[string]legacyParticipant `json:"participants"`
	Options      []string                     `json:"options"`
}

func isLegacy(doc map[string]json.RawMessage) bool {
	_, hasPolls := doc["polls"]
	_, hasIdentities := doc["identities"]
	return !hasPolls && !hasIdentities
}

func decodeLegacy(doc map[string]json.RawMessage) (*models.State, error) {
	state := models.NewState()

	if raw, ok := doc[legacyUsersKey]; ok {
		var users map[string]legacyUser
		if err := json.Unmarshal(raw, &users); err != nil {
			return nil, fmt.Errorf("failed to decode legacy users: %w", err)
		}
		for id, u := range users {
			state.Identities[id] = models.Identity{FirstName: u.FirstName, LastName: u.LastName}
		}
	}

	for key, raw := range doc {
		if key == legacyUsersKey {
			continue
		}
		var lp legacyPoll
		if err := json.Unmarshal(raw, &lp); err != nil || lp.Participants == nil {
			// Not a poll record
			continue
		}

		poll := &models.Poll{
			ID:           key,
			CreatorID:    lp.Creator.String(),
			Active:       lp.Active,
			Options:      lp.Options,
			Participants: make(map[string]*models.ParticipantAnswer, len(lp.Participants)),
		}
		if len(poll.Options) != models.OptionCount {
			poll.Options = models.DefaultOptionLabels()
		}
		for uid, p := range lp.Participants {
			answers := append([]int(nil), p.Answers...)
			sort.Ints(answers)
			poll.Participants[uid] = &models.ParticipantAnswer{Answers: answers, Username: p.Username}
		}
		state.Polls[key] = poll
	}

	return state, nil
}
