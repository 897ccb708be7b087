// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// buttonsPerRow lays the vote keyboard out in rows of three
const buttonsPerRow = 3

const votePrefix = "vote"

var errBadCallback = errors.New("malformed callback data")

// VoteKeyboard builds one button per option; the callback carries the
// poll id and the 1-based option index
func VoteKeyboard(pollID string, options []string) *InlineKeyboardMarkup {
	var rows [][]InlineKeyboardButton
	var row []InlineKeyboardButton
	for i, opt := range options {
		row = append(row, InlineKeyboardButton{
			Text:         opt,
			CallbackData: VoteCallbackData(pollID, i+1),
		})
		if len(row) == buttonsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return &InlineKeyboardMarkup{InlineKeyboard: rows}
}

// VoteCallbackData encodes a vote button as vote:<poll>:<option>
func VoteCallbackData(pollID string, option int) string {
	return fmt.Sprintf("%s:%s:%d", votePrefix, pollID, option)
}

// ParseVoteCallback decodes VoteCallbackData
func ParseVoteCallback(data string) (pollID string, option int, err error) {
	parts := strings.Split(data, ":")
	if len(parts) != 3 || parts[0] != votePrefix || parts[1] == "" {
		return "", 0, errBadCallback
	}
	option, err = strconv.Atoi(parts[2])
	if err != nil {
		return "", 0, errBadCallback
	}
	return parts[1], option, nil
}
