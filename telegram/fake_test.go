// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package telegram

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

type sentMessage struct {
	ChatID int64
	Text   string
	Markup interface{}
}

type callbackAnswer struct {
	ID    string
	Text  string
	Alert bool
}

type editedMessage struct {
	ChatID    int64
	MessageID int64
	Text      string
}

// fakeMessenger records what the handler would send
type fakeMessenger struct {
	mu      sync.Mutex
	sent    []sentMessage
	answers []callbackAnswer
	edits   []editedMessage
}

func (f *fakeMessenger) SendMessage(ctx context.Context, chatID int64, text, parseMode string, replyMarkup interface{}) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMessage{ChatID: chatID, Text: text, Markup: replyMarkup})
	return int64(len(f.sent)), nil
}

func (f *fakeMessenger) EditMessageText(ctx context.Context, chatID, messageID int64, text, parseMode string, replyMarkup interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edits = append(f.edits, editedMessage{ChatID: chatID, MessageID: messageID, Text: text})
	return nil
}

func (f *fakeMessenger) AnswerCallbackQuery(ctx context.Context, callbackID, text string, showAlert bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answers = append(f.answers, callbackAnswer{ID: callbackID, Text: text, Alert: showAlert})
	return nil
}

func (f *fakeMessenger) lastSent(t *testing.T) sentMessage {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		t.Fatal("no message sent")
	}
	return f.sent[len(f.sent)-1]
}

func (f *fakeMessenger) lastAnswer(t *testing.T) callbackAnswer {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.answers) == 0 {
		t.Fatal("no callback answered")
	}
	return f.answers[len(f.answers)-1]
}

type apiCall struct {
	Method  string
	Payload map[string]interface{}
}

// fakeAPI is a Bot API double served over HTTP
type fakeAPI struct {
	mu      sync.Mutex
	calls   []apiCall
	updates string
	fail    string
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	api := &fakeAPI{updates: "[]"}
	srv := httptest.NewServer(http.HandlerFunc(api.serve))
	t.Cleanup(srv.Close)
	return api, srv
}

func (a *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
	body, _ := io.ReadAll(r.Body)
	payload := map[string]interface{}{}
	_ = json.Unmarshal(body, &payload)

	a.mu.Lock()
	a.calls = append(a.calls, apiCall{Method: method, Payload: payload})
	n := len(a.calls)
	fail := a.fail
	updates := a.updates
	a.updates = "[]"
	a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case method == fail:
		w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
	case method == "sendMessage":
		w.Write([]byte(`{"ok":true,"result":{"message_id":` + itoa(n) + `}}`))
	case method == "getUpdates":
		w.Write([]byte(`{"ok":true,"result":` + updates + `}`))
	default:
		w.Write([]byte(`{"ok":true,"result":true}`))
	}
}

func (a *fakeAPI) methodCalls(method string) []apiCall {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []apiCall
	for _, c := range a.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

func itoa(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}
