// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import "errors"

var (
	ErrNotFound              = errors.New("poll not found")
	ErrPollClosed            = errors.New("poll is closed")
	ErrPollActive            = errors.New("poll is still active")
	ErrFull                  = errors.New("poll is full")
	ErrAlreadyJoined         = errors.New("participant already joined")
	ErrInvalidOption         = errors.New("option index out of range")
	ErrSelectionLimitReached = errors.New("selection limit reached")
	ErrSelectionLocked       = errors.New("selection is complete and locked")
	ErrInvalidOptions        = errors.New("a poll needs exactly 5 non-empty options")
	ErrInvalidName           = errors.New("first and last name must be 1-50 characters")
	ErrInvalidParticipant    = errors.New("participant id is required")
	ErrIDExhausted           = errors.New("could not allocate a unique poll id")
)
