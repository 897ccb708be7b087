// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"strconv"
	"time"
)

// OptionCount is the fixed number of options every poll carries.
const OptionCount = 5

// DefaultOptionLabels returns the generic labels of a poll created without options
func DefaultOptionLabels() []string {
	labels := make([]string, OptionCount)
	for i := range labels {
		labels[i] = "Option " + strconv.Itoa(i+1)
	}
	return labels
}

// Vote actions
const (
	VoteAdded   = "added"
	VoteRemoved = "removed"
)

// Completion policies
const (
	CompletionRevise = "revise"
	CompletionLock   = "lock"
)

// Request types

type CreatePollRequest struct {
	CreatorID string   `json:"creator_id"`
	Options   []string `json:"options,omitempty"`
}

type JoinPollRequest struct {
	ParticipantID string `json:"participant_id"`
}

type ToggleVoteRequest struct {
	ParticipantID string `json:"participant_id"`
	Option        int    `json:"option"`
}

type SetNameRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Response types

type CreatePollResponse struct {
	PollID   string   `json:"poll_id"`
	AdminKey string   `json:"admin_key"`
	Options  []string `json:"options"`
}

type JoinPollResponse struct {
	PollID  string   `json:"poll_id"`
	Options []string `json:"options"`
}

type PollView struct {
	ID               string     `json:"id"`
	CreatorID        string     `json:"creator_id"`
	Active           bool       `json:"active"`
	Options          []string   `json:"options"`
	ParticipantCount int        `json:"participant_count"`
	CompletedCount   int        `json:"completed_count"`
	Capacity         int        `json:"capacity"`
	CreatedAt        time.Time  `json:"created_at"`
	FinalizedAt      *time.Time `json:"finalized_at,omitempty"`
}

type VoteResponse struct {
	Action    string `json:"action"`
	Option    int    `json:"option"`
	Label     string `json:"label"`
	Answers   []int  `json:"answers"`
	Complete  bool   `json:"complete"`
	Finalized bool   `json:"finalized"`
}

type FinalizeResponse struct {
	Finalized bool    `json:"finalized"`
	Report    *Report `json:"report,omitempty"`
}

type NameResponse struct {
	ParticipantID string `json:"participant_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
}

type ParticipantPollsResponse struct {
	Polls []PollSummary `json:"polls"`
}

// Domain types

type Poll struct {
	ID           string                        `json:"id"`
	CreatorID    string                        `json:"creator_id"`
	Active       bool                          `json:"active"`
	Options      []string                      `json:"options"`
	Participants map[string]*ParticipantAnswer `json:"participants"`
	CreatedAt    time.Time                     `json:"created_at"`
	FinalizedAt  *time.Time                    `json:"finalized_at,omitempty"`
}

// ParticipantAnswer holds the option indices (1-based, sorted, no duplicates)
// a participant currently has selected.
type ParticipantAnswer struct {
	Answers   []int     `json:"answers"`
	Username  string    `json:"username,omitempty"` // cached chat handle, display only
	UpdatedAt time.Time `json:"updated_at"`
}

type Identity struct {
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PollSummary struct {
	PollID    string `json:"poll_id"`
	Active    bool   `json:"active"`
	Role      string `json:"role"` // "creator" or "participant"
	Answers   []int  `json:"answers,omitempty"`
	Responses int    `json:"responses"`
}

// Report is the finalized grouping delivered to the poll creator.
type Report struct {
	ID        string        `json:"id"`
	PollID    string        `json:"poll_id"`
	CreatorID string        `json:"creator_id"`
	Options   []string      `json:"options"`
	Groups    []ReportGroup `json:"groups"`
	CreatedAt time.Time     `json:"created_at"`
}

type ReportGroup struct {
	Number  int            `json:"number"`  // 1-indexed
	Overlap int            `json:"overlap"` // summed pairwise similarity
	Members []ReportMember `json:"members"`
}

type ReportMember struct {
	ParticipantID string `json:"participant_id"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	Known         bool   `json:"known"`
	Answers       []int  `json:"answers"`
}

// State is the whole persisted document. Identities, polls and reports live
// in separate tables so a poll id can never collide with another record.
type State struct {
	Identities map[string]Identity `json:"identities"`
	Polls      map[string]*Poll    `json:"polls"`
	Reports    map[string]*Report  `json:"reports"`
}

// NewState returns an empty state with all tables allocated.
func NewState() *State {
	return &State{
		Identities: make(map[string]Identity),
		Polls:      make(map[string]*Poll),
		Reports:    make(map[string]*Report),
	}
}

// Normalize allocates any table left nil by a decoder.
func (s *State) Normalize() {
	if s.Identities == nil {
		s.Identities = make(map[string]Identity)
	}
	if s.Polls == nil {
		s.Polls = make(map[string]*Poll)
	}
	if s.Reports == nil {
		s.Reports = make(map[string]*Report)
	}
	for _, p := range s.Polls {
		if p.Participants == nil {
			p.Participants = make(map[string]*ParticipantAnswer)
		}
	}
}

// Clone returns a deep copy of the poll.
func (p *Poll) Clone() *Poll {
	cp := *p
	cp.Options = append([]string(nil), p.Options...)
	cp.Participants = make(map[string]*ParticipantAnswer, len(p.Participants))
	for id, a := range p.Participants {
		ac := *a
		ac.Answers = append([]int(nil), a.Answers...)
		cp.Participants[id] = &ac
	}
	if p.FinalizedAt != nil {
		t := *p.FinalizedAt
		cp.FinalizedAt = &t
	}
	return &cp
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
