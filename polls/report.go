// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"time"

	"github.com/google/uuid"

	"github.com/Kpacaychuk/type-quiz-bot/grouping"
	"github.com/Kpacaychuk/type-quiz-bot/models"
)

func buildReport(poll *models.Poll, groups [][]string, now time.Time) *models.Report {
	report := &models.Report{
		ID:        uuid.NewString(),
		PollID:    poll.ID,
		CreatorID: poll.CreatorID,
		Options:   append([]string(nil), poll.Options...),
		Groups:    make([]models.ReportGroup, 0, len(groups)),
		CreatedAt: now,
	}

	answers := make(map[string][]int, len(poll.Participants))
	for id, a := range poll.Participants {
		answers[id] = a.Answers
	}

	for i, group := range groups {
		rg := models.ReportGroup{
			Number:  i + 1,
			Overlap: grouping.GroupScore(answers, group),
			Members: make([]models.ReportMember, 0, len(group)),
		}
		for _, id := range group {
			rg.Members = append(rg.Members, models.ReportMember{
				ParticipantID: id,
				Answers:       append([]int(nil), answers[id]...),
			})
		}
		report.Groups = append(report.Groups, rg)
	}
	return report
}

// resolveNames fills member names from the identities in state
func (s *Service) resolveNames(state *models.State, report *models.Report) {
	for gi := range report.Groups {
		members := report.Groups[gi].Members
		for mi := range members {
			ident, ok := state.Identities[members[mi].ParticipantID]
			if !ok {
				continue
			}
			members[mi].FirstName = ident.FirstName
			members[mi].LastName = ident.LastName
			members[mi].Known = true
		}
	}
}
