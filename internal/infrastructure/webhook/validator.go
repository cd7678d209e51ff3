// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

// Package webhook validates incoming WebinarGeek webhook requests.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain"
)

// Validator handles validation of WebinarGeek webhook signatures.
// The signature is the hex-encoded HMAC-SHA256 of the raw request body.
type Validator struct {
	secret string
}

// NewValidator creates a new webhook validator.
func NewValidator(secret string) *Validator {
	return &Validator{
		secret: secret,
	}
}

// Ensure that Validator implements the domain interface
var _ domain.WebhookValidator = (*Validator)(nil)

// ValidateSignature validates the webhook signature against the raw body.
// A missing secret or signature is rejected the same way as a mismatch so
// that an unconfigured deployment never accepts unauthenticated payloads.
func (v *Validator) ValidateSignature(body []byte, signature string) error {
	if v.secret == "" {
		return domain.NewAuthError("webhook secret not configured")
	}

	if signature == "" {
		return domain.NewAuthError("missing webhook signature")
	}

	h := hmac.New(sha256.New, []byte(v.secret))
	h.Write(body)
	expected := hex.EncodeToString(h.Sum(nil))

	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return domain.NewAuthError("invalid webhook signature")
	}

	return nil
}
