// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Kpacaychuk/type-quiz-bot/auth"
	"github.com/Kpacaychuk/type-quiz-bot/cliparse"
	"github.com/Kpacaychuk/type-quiz-bot/models"
	"github.com/Kpacaychuk/type-quiz-bot/store"
)

// Rules are the poll parameters shared by every poll of a service
type Rules struct {
	Capacity         int
	GroupSize        int
	SelectionLimit   int
	CompletionPolicy string
}

// RulesFromConfig copies the poll rules out of the parsed configuration
func RulesFromConfig(cfg cliparse.Config) Rules {
	return Rules{
		Capacity:         cfg.Capacity,
		GroupSize:        cfg.GroupSize,
		SelectionLimit:   cfg.SelectionLimit,
		CompletionPolicy: cfg.CompletionPolicy,
	}
}

// DefaultRules returns 35 participants, groups of 5, 3 selections, revisable
func DefaultRules() Rules {
	return Rules{
		Capacity:         cliparse.DefaultCapacity,
		GroupSize:        cliparse.DefaultGroupSize,
		SelectionLimit:   cliparse.DefaultSelectionLimit,
		CompletionPolicy: models.CompletionRevise,
	}
}

func (r Rules) validate() error {
	if r.Capacity < 1 {
		return errors.New("capacity must be at least 1")
	}
	if r.GroupSize < 1 {
		return errors.New("group size must be at least 1")
	}
	if r.SelectionLimit < 1 || r.SelectionLimit > models.OptionCount {
		return fmt.Errorf("selection limit must be between 1 and %d", models.OptionCount)
	}
	if r.CompletionPolicy != models.CompletionRevise && r.CompletionPolicy != models.CompletionLock {
		return fmt.Errorf("unknown completion policy %q", r.CompletionPolicy)
	}
	return nil
}

// ReportDeliverer sends a finalized report to the poll creator
type ReportDeliverer interface {
	DeliverReport(ctx context.Context, creatorID string, report *models.Report) error
}

// Service owns the poll lifecycle: registry, votes, finalization and names.
//
// Every mutation of a poll runs under that poll's lock. The write itself
// goes through commit, which reloads the latest document and replaces only
// the records the mutation touched, so polls can be mutated in parallel
// without overwriting each other.
type Service struct {
	store store.Store
	rules Rules

	locks    *keyedMutex
	commitMu sync.Mutex

	rngMu sync.Mutex
	rng   *rand.Rand

	deliverer ReportDeliverer
	now       func() time.Time
	newCode   func() (string, error)
}

// NewService validates the rules and wires the store and random source.
// rng drives grouping; pass a seeded generator for reproducible groups.
func NewService(s store.Store, rules Rules, rng *rand.Rand) (*Service, error) {
	if err := rules.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Service{
		store: s,
		rules: rules,
		locks: newKeyedMutex(),
		rng:   rng,
		now:   time.Now,
		newCode: func() (string, error) {
			return auth.GeneratePollCode(auth.PollCodeLength)
		},
	}, nil
}

// SetDeliverer registers where finalized reports go. Call before serving.
func (s *Service) SetDeliverer(d ReportDeliverer) {
	s.deliverer = d
}

// Rules returns the active poll rules
func (s *Service) Rules() Rules {
	return s.rules
}

// commit reloads the latest state, applies fn and saves the result
func (s *Service) commit(ctx context.Context, fn func(state *models.State) error) error {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	state, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	if err := fn(state); err != nil {
		return err
	}
	if err := s.store.Save(ctx, state); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// loadPoll reads the current copy of a poll and the state it came from
func (s *Service) loadPoll(ctx context.Context, id string) (*models.State, *models.Poll, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load state: %w", err)
	}
	poll, ok := state.Polls[id]
	if !ok {
		return nil, nil, ErrNotFound
	}
	return state, poll, nil
}

// deliver hands a report to the deliverer; failures are logged, the poll
// stays finalized and the report remains readable through GetReport
func (s *Service) deliver(ctx context.Context, report *models.Report) {
	if s.deliverer == nil {
		slog.Info("report ready, no deliverer configured", "poll_id", report.PollID)
		return
	}
	if err := s.deliverer.DeliverReport(ctx, report.CreatorID, report); err != nil {
		slog.Error("failed to deliver report", "error", err, "poll_id", report.PollID, "creator_id", report.CreatorID)
		return
	}
	slog.Info("report delivered", "poll_id", report.PollID, "creator_id", report.CreatorID)
}
