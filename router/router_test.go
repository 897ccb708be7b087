// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kpacaychuk/type-quiz-bot/auth"
	"github.com/Kpacaychuk/type-quiz-bot/telegram"
	"github.com/Kpacaychuk/type-quiz-bot/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	cfg := testutil.GetTestConfig()
	mux := NewRouter(testutil.NewTestService(t, cfg), cfg, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	cfg := testutil.GetTestConfig()
	mux := NewRouter(testutil.NewTestService(t, cfg), cfg, nil)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "type-quiz-bot API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	cfg := testutil.GetTestConfig()
	mux := NewRouter(testutil.NewTestService(t, cfg), cfg, nil)

	// 400, 401, 403 and 404 are all valid handler responses here
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},

		{"POST", "/polls"},
		{"GET", "/polls/ABC123"},
		{"POST", "/polls/ABC123/join"},
		{"POST", "/polls/ABC123/votes"},
		{"POST", "/polls/ABC123/finalize"},
		{"GET", "/polls/ABC123/report"},

		{"PUT", "/participants/42/name"},
		{"GET", "/participants/42/name"},
		{"GET", "/participants/42/polls"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	cfg := testutil.GetTestConfig()
	mux := NewRouter(testutil.NewTestService(t, cfg), cfg, nil)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/polls/ABC123/report"},
		{"POST", "/participants/42/name"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	cfg := testutil.GetTestConfig()
	svc := testutil.NewTestService(t, cfg)
	pollID := testutil.CreateTestPoll(t, svc, "creator")
	mux := NewRouter(svc, cfg, nil)

	t.Run("poll ID extraction", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/polls/"+pollID, nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200 for an existing poll, got %d. Body: %s", w.Code, w.Body.String())
		}
	})

	t.Run("report is sealed while active", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/polls/"+pollID+"/report", nil)
		req.Header.Set("X-Admin-Key", auth.GenerateAdminKey(pollID, cfg.AdminKeySalt))
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("Expected 403 for an active poll, got %d. Body: %s", w.Code, w.Body.String())
		}
	})
}

func TestWebhookRoute(t *testing.T) {
	cfg := testutil.GetTestConfig()
	svc := testutil.NewTestService(t, cfg)

	t.Run("disabled without a bot", func(t *testing.T) {
		mux := NewRouter(svc, cfg, nil)
		req := httptest.NewRequest("POST", "/telegram/webhook", nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusMethodNotAllowed && w.Code != http.StatusNotFound {
			t.Errorf("Expected the webhook to be unrouted, got %d", w.Code)
		}
	})

	t.Run("registered with a bot", func(t *testing.T) {
		bot := telegram.NewBot(telegram.NewClientWithURL("http://127.0.0.1:0", "token"), svc, "s3cret")
		mux := NewRouter(svc, cfg, bot)
		req := httptest.NewRequest("POST", "/telegram/webhook", nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401 without the secret, got %d", w.Code)
		}
	})
}
