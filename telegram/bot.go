// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Kpacaychuk/type-quiz-bot/auth"
	"github.com/Kpacaychuk/type-quiz-bot/middleware"
	"github.com/Kpacaychuk/type-quiz-bot/models"
)

// SecretHeader carries the webhook secret on every update Telegram posts
const SecretHeader = "X-Telegram-Bot-Api-Secret-Token"

// pollTimeout is the long-poll wait per getUpdates call
const pollTimeout = 50 * time.Second

// Bot wires the API client, conversation state and update handling together.
// It also delivers finalized reports to poll creators.
type Bot struct {
	client  *Client
	handler *UpdateHandler
	secret  string
}

func NewBot(client *Client, svc PollService, secret string) *Bot {
	return &Bot{
		client:  client,
		handler: NewUpdateHandler(client, NewStateManager(), svc),
		secret:  secret,
	}
}

// DeliverReport sends the rendered report to the creator's private chat
func (b *Bot) DeliverReport(ctx context.Context, creatorID string, report *models.Report) error {
	chatID, err := strconv.ParseInt(creatorID, 10, 64)
	if err != nil {
		return fmt.Errorf("creator %q is not a chat id: %w", creatorID, err)
	}

	for _, chunk := range SplitMessage(RenderReport(report), MaxMessageLength) {
		if _, err := b.client.SendMessage(ctx, chatID, chunk, "", nil); err != nil {
			return fmt.Errorf("send report: %w", err)
		}
	}
	return nil
}

// WebhookHandler handles POST /telegram/webhook
func (b *Bot) WebhookHandler(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateWebhookSecret(b.secret, r.Header.Get(SecretHeader)); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid webhook secret")
		return
	}

	var upd Update
	if err := middleware.ParseJSONBody(r, &upd); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Telegram retries non-2xx responses, so failures are logged, not returned
	b.handler.Handle(r.Context(), upd)
	w.WriteHeader(http.StatusOK)
}

// RegisterWebhook points Telegram at url
func (b *Bot) RegisterWebhook(ctx context.Context, url string) error {
	if err := b.client.SetWebhook(ctx, url, b.secret); err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}
	slog.Info("telegram webhook registered", "url", url)
	return nil
}

// Poll fetches updates with getUpdates until ctx is done. Use it when no
// public webhook URL is available.
func (b *Bot) Poll(ctx context.Context) error {
	if err := b.client.DeleteWebhook(ctx); err != nil {
		return fmt.Errorf("delete webhook: %w", err)
	}
	slog.Info("telegram long polling started")

	var offset int64
	for {
		updates, err := b.client.GetUpdates(ctx, offset, pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			slog.Error("failed to fetch updates", "error", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(3 * time.Second):
			}
			continue
		}

		for _, upd := range updates {
			b.handler.Handle(ctx, upd)
			offset = upd.UpdateID + 1
		}

		if ctx.Err() != nil {
			return nil
		}
	}
}
