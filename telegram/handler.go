// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Kpacaychuk/type-quiz-bot/models"
	"github.com/Kpacaychuk/type-quiz-bot/polls"
)

// PollService is the part of polls.Service the bot drives
type PollService interface {
	GetName(ctx context.Context, participantID string) (models.Identity, bool, error)
	SetName(ctx context.Context, participantID, first, last string) (models.Identity, error)
	RememberUsername(ctx context.Context, participantID, username string) error
	CreatePoll(ctx context.Context, creatorID string, options []string) (*models.Poll, error)
	JoinPoll(ctx context.Context, id, participantID string) (*models.Poll, error)
	ToggleVote(ctx context.Context, pollID, participantID string, option int) (polls.VoteResult, error)
	Rules() polls.Rules
}

// Messenger is the part of the Bot API the handler needs
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text, parseMode string, replyMarkup interface{}) (int64, error)
	EditMessageText(ctx context.Context, chatID, messageID int64, text, parseMode string, replyMarkup interface{}) error
	AnswerCallbackQuery(ctx context.Context, callbackID, text string, showAlert bool) error
}

// UpdateHandler turns chat updates into poll operations
type UpdateHandler struct {
	client Messenger
	state  *StateManager
	svc    PollService
}

func NewUpdateHandler(client Messenger, state *StateManager, svc PollService) *UpdateHandler {
	return &UpdateHandler{client: client, state: state, svc: svc}
}

func (h *UpdateHandler) Handle(ctx context.Context, upd Update) {
	if upd.CallbackQuery != nil {
		h.handleCallback(ctx, upd.CallbackQuery)
		return
	}
	if upd.Message != nil {
		h.handleMessage(ctx, upd.Message)
	}
}

func (h *UpdateHandler) send(ctx context.Context, chatID int64, text, parseMode string, markup interface{}) {
	if _, err := h.client.SendMessage(ctx, chatID, text, parseMode, markup); err != nil {
		slog.Error("failed to send message", "error", err, "chat_id", chatID)
	}
}

func (h *UpdateHandler) handleMessage(ctx context.Context, msg *Message) {
	if msg.From == nil {
		return
	}
	userID := msg.From.ID
	chatID := msg.Chat.ID

	if cmd, args, ok := ParseCommand(msg.Text); ok {
		switch cmd {
		case "start":
			h.cmdStart(ctx, userID, chatID)
		case "change_my_name":
			h.state.Set(userID, &UserState{State: StateEnterName})
			h.send(ctx, chatID, askNameText, "", nil)
		case "create_poll", "create_quiz":
			h.cmdCreate(ctx, userID, chatID, args)
		case "join_poll", "join_to_quiz":
			h.cmdJoin(ctx, userID, chatID, args)
		default:
			h.send(ctx, chatID, "Unknown command.\n\n"+helpText(), "", nil)
		}
		return
	}

	if h.state.Get(userID).State == StateEnterName {
		h.onName(ctx, userID, chatID, msg.Text)
		return
	}

	// Plain chatter only refreshes the cached handle
	if err := h.svc.RememberUsername(ctx, participantID(userID), msg.From.Username); err != nil {
		slog.Error("failed to cache username", "error", err, "participant_id", userID)
	}
}

func (h *UpdateHandler) cmdStart(ctx context.Context, userID, chatID int64) {
	h.state.Clear(userID)

	ident, ok, err := h.svc.GetName(ctx, participantID(userID))
	if err != nil {
		slog.Error("failed to load name", "error", err, "participant_id", userID)
		h.send(ctx, chatID, "Something went wrong, try again later.", "", nil)
		return
	}

	if !ok {
		h.state.Set(userID, &UserState{State: StateEnterName})
		h.send(ctx, chatID, "👋 Hi! I need your first and last name.\n"+askNameText, "", nil)
		return
	}

	h.send(ctx, chatID, fmt.Sprintf("👋 Hi, %s %s!\n\n%s", ident.FirstName, ident.LastName, helpText()), "", nil)
}

func (h *UpdateHandler) onName(ctx context.Context, userID, chatID int64, text string) {
	first, last, err := polls.ParseFullName(text)
	if err != nil {
		h.send(ctx, chatID, fmt.Sprintf("❗ First and last name must each be 1-%d characters.\n%s", polls.MaxNameLength, askNameText), "", nil)
		return
	}

	if _, err := h.svc.SetName(ctx, participantID(userID), first, last); err != nil {
		slog.Error("failed to save name", "error", err, "participant_id", userID)
		h.send(ctx, chatID, "Something went wrong, try again later.", "", nil)
		return
	}

	h.state.Clear(userID)
	h.send(ctx, chatID, fmt.Sprintf("✅ Thanks, %s %s! Your name is saved.\n\n%s", first, last, helpText()), "", nil)
}

func (h *UpdateHandler) cmdCreate(ctx context.Context, userID, chatID int64, args string) {
	var options []string
	if fields := SplitArgs(args); len(fields) > 0 {
		if len(fields) < models.OptionCount {
			h.send(ctx, chatID, "❗ Give exactly 5 options.\n"+
				"Format: /create_poll option1 option2 option3 option4 option5\n"+
				"Or: /create_poll (no arguments for the default options)\n\n"+
				"Options with spaces go in quotes:\n"+
				"/create_poll \"Option one\" \"Option two\" three four five", "", nil)
			return
		}
		// Extra words past the fifth option are ignored
		options = fields[:models.OptionCount]
	}

	poll, err := h.svc.CreatePoll(ctx, participantID(userID), options)
	if errors.Is(err, polls.ErrInvalidOptions) {
		h.send(ctx, chatID, "❗ Options must not be empty.", "", nil)
		return
	}
	if err != nil {
		slog.Error("failed to create poll", "error", err, "creator_id", userID)
		h.send(ctx, chatID, "Could not create the poll, try again later.", "", nil)
		return
	}

	h.send(ctx, chatID, pollCreatedText(poll.ID, poll.Options), "HTML", nil)
}

func (h *UpdateHandler) cmdJoin(ctx context.Context, userID, chatID int64, args string) {
	fields := SplitArgs(args)
	if len(fields) != 1 {
		h.send(ctx, chatID, "❗ Give the poll ID: /join_poll ABC123", "", nil)
		return
	}

	rules := h.svc.Rules()
	poll, err := h.svc.JoinPoll(ctx, fields[0], participantID(userID))
	switch {
	case err == nil:
		h.sendVoteKeyboard(ctx, chatID, poll, rules, "")
	case errors.Is(err, polls.ErrAlreadyJoined):
		h.sendVoteKeyboard(ctx, chatID, poll, rules, "You are already in this poll.\n")
	case errors.Is(err, polls.ErrNotFound):
		h.send(ctx, chatID, "❌ That poll does not exist.", "", nil)
	case errors.Is(err, polls.ErrPollClosed):
		h.send(ctx, chatID, "⚠️ This poll has already finished.", "", nil)
	case errors.Is(err, polls.ErrFull):
		h.send(ctx, chatID, fmt.Sprintf("⚠️ The poll already has %d participants.", rules.Capacity), "", nil)
	default:
		slog.Error("failed to join poll", "error", err, "participant_id", userID)
		h.send(ctx, chatID, "Something went wrong, try again later.", "", nil)
	}
}

func (h *UpdateHandler) sendVoteKeyboard(ctx context.Context, chatID int64, poll *models.Poll, rules polls.Rules, prefix string) {
	text := fmt.Sprintf("%sPick %d of %d options:", prefix, rules.SelectionLimit, len(poll.Options))
	h.send(ctx, chatID, text, "", VoteKeyboard(poll.ID, poll.Options))
}

func (h *UpdateHandler) handleCallback(ctx context.Context, cb *CallbackQuery) {
	answer := func(text string, alert bool) {
		if err := h.client.AnswerCallbackQuery(ctx, cb.ID, text, alert); err != nil {
			slog.Error("failed to answer callback", "error", err, "callback_id", cb.ID)
		}
	}

	pollID, option, err := ParseVoteCallback(cb.Data)
	if err != nil {
		answer("Invalid button.", true)
		return
	}

	rules := h.svc.Rules()
	res, err := h.svc.ToggleVote(ctx, pollID, participantID(cb.From.ID), option)
	switch {
	case err == nil:
	case errors.Is(err, polls.ErrSelectionLimitReached):
		answer(fmt.Sprintf("⚠️ You can pick only %d options.", rules.SelectionLimit), false)
		return
	case errors.Is(err, polls.ErrSelectionLocked):
		answer("Your answers are already saved.", false)
		return
	case errors.Is(err, polls.ErrNotFound), errors.Is(err, polls.ErrPollClosed):
		answer("Poll not found or already finished.", true)
		return
	case errors.Is(err, polls.ErrFull):
		answer(fmt.Sprintf("The poll already has %d participants.", rules.Capacity), true)
		return
	case errors.Is(err, polls.ErrInvalidOption):
		answer("Invalid button.", true)
		return
	default:
		slog.Error("failed to record vote", "error", err, "poll_id", pollID, "participant_id", cb.From.ID)
		answer("Something went wrong, try again.", true)
		return
	}

	if res.Action == models.VoteRemoved {
		answer("❌ Removed: "+res.OptionLabel, false)
	} else {
		answer("✅ Added: "+res.OptionLabel, false)
	}

	if res.Complete && cb.Message != nil {
		err := h.client.EditMessageText(ctx, cb.Message.Chat.ID, cb.Message.MessageID,
			"✅ Your answers are saved. Thanks for taking part!", "", nil)
		if err != nil {
			slog.Error("failed to edit vote message", "error", err, "poll_id", pollID)
		}
	}
}

func participantID(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
