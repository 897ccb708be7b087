// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// PollCodeAlphabet holds the 36 symbols a poll code is drawn from
const PollCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// PollCodeLength is the length of every poll code
const PollCodeLength = 6

var (
	ErrInvalidAdminKey      = errors.New("invalid admin key")
	ErrInvalidWebhookSecret = errors.New("invalid webhook secret")
)

// GeneratePollCode draws a code of the given length uniformly over PollCodeAlphabet
func GeneratePollCode(length int) (string, error) {
	// 252 is the largest multiple of 36 below 256; larger bytes are rejected
	// so every symbol stays equally likely.
	const limit = 252

	out := make([]byte, 0, length)
	buf := make([]byte, length*2)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to generate poll code: %w", err)
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, PollCodeAlphabet[int(b)%len(PollCodeAlphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}

// NormalizePollCode trims and uppercases a user-supplied poll code
func NormalizePollCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValidPollCode reports whether code is a well-formed, normalized poll code
func IsValidPollCode(code string) bool {
	if len(code) != PollCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(PollCodeAlphabet, rune(code[i])) {
			return false
		}
	}
	return true
}

// GenerateAdminKey creates an HMAC-based key that lets a poll creator read
// the report over HTTP. It is deterministic, so nothing needs storing.
func GenerateAdminKey(pollID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(pollID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks if the provided admin key is valid for the poll
func ValidateAdminKey(pollID, adminKey, salt string) error {
	expected := GenerateAdminKey(pollID, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// ValidateWebhookSecret compares the secret token a chat platform sends with
// every webhook call. An empty expected secret disables the check.
func ValidateWebhookSecret(expected, got string) error {
	if expected == "" {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(expected), []byte(got)) != 1 {
		return ErrInvalidWebhookSecret
	}
	return nil
}
