// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides poll codes, admin keys and webhook secret checks.

# Poll Codes

Poll codes are 6 symbols drawn uniformly from A-Z and 0-9 using crypto/rand:

	code, err := auth.GeneratePollCode(auth.PollCodeLength)

User input is normalized before lookup:

	code = auth.NormalizePollCode(" abc123 ") // "ABC123"

# Admin Keys

Admin keys use HMAC-SHA256 to create deterministic, verifiable keys:

	adminKey := auth.GenerateAdminKey(pollID, salt)
	err := auth.ValidateAdminKey(pollID, adminKey, salt)

The creator receives the key when the poll is created and presents it in
the X-Admin-Key header to read the report. Since it's deterministic, it
never needs storing.

# Webhook Secrets

The chat platform echoes a configured secret on every webhook call:

	err := auth.ValidateWebhookSecret(cfg.TelegramSecret, header)

An empty configured secret disables the check.
*/
package auth
