// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kpacaychuk/type-quiz-bot/cliparse"
	"github.com/Kpacaychuk/type-quiz-bot/polls"
	"github.com/Kpacaychuk/type-quiz-bot/store"
)

// TestSeed makes grouping reproducible across test runs
const TestSeed = 20251016

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:             3318,
		StoreType:        cliparse.StoreMemory,
		AdminKeySalt:     "test-admin-salt",
		Capacity:         cliparse.DefaultCapacity,
		GroupSize:        cliparse.DefaultGroupSize,
		SelectionLimit:   cliparse.DefaultSelectionLimit,
		CompletionPolicy: "revise",
		GroupingSeed:     TestSeed,
	}
}

// NewTestService builds a service over a fresh memory store
func NewTestService(t *testing.T, cfg cliparse.Config) *polls.Service {
	t.Helper()

	svc, err := polls.NewService(store.NewMemoryStore(), polls.RulesFromConfig(cfg), rand.New(rand.NewPCG(cfg.GroupingSeed, cfg.GroupingSeed)))
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	return svc
}

// CreateTestPoll creates a poll with default options and returns its ID
func CreateTestPoll(t *testing.T, svc *polls.Service, creatorID string) string {
	t.Helper()

	poll, err := svc.CreatePoll(context.Background(), creatorID, nil)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}
	return poll.ID
}

// AnswerTestPoll gives participantID the selection options
func AnswerTestPoll(t *testing.T, svc *polls.Service, pollID, participantID string, options ...int) polls.VoteResult {
	t.Helper()

	var res polls.VoteResult
	for _, opt := range options {
		var err error
		res, err = svc.ToggleVote(context.Background(), pollID, participantID, opt)
		if err != nil {
			t.Fatalf("Failed to vote %d for %s: %v", opt, participantID, err)
		}
	}
	return res
}

// FillTestPoll answers the poll with n participants named p000, p001, ...
func FillTestPoll(t *testing.T, svc *polls.Service, pollID string, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		a := i % 5
		AnswerTestPoll(t, svc, pollID, fmt.Sprintf("p%03d", i), a+1, (a+1)%5+1, (a+2)%5+1)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
