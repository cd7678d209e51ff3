// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain/models"
)

// WebinarAPI defines the interface to the remote webinar platform.
type WebinarAPI interface {
	// ListWebinars fetches the full remote webinar catalog.
	ListWebinars(ctx context.Context) ([]*models.WebinarRecord, error)

	// GetWebinar fetches a single webinar by its remote identifier.
	GetWebinar(ctx context.Context, webinarID string) (*models.WebinarRecord, error)

	// GetRegistrationFields fetches the extra registration form fields a
	// webinar declares. A webinar without extra fields yields an empty list.
	GetRegistrationFields(ctx context.Context, webinarID string) ([]models.RegistrationField, error)

	// RegisterParticipant registers a participant for a webinar.
	RegisterParticipant(ctx context.Context, webinarID string, registration *models.ParticipantRegistration) (models.RegistrationConfirmation, error)
}

// WebhookSignatureHeader is the request header carrying the webhook signature.
const WebhookSignatureHeader = "X-WebinarGeek-Signature"

// WebhookValidator validates the authenticity of incoming webhook requests.
type WebhookValidator interface {
	// ValidateSignature checks the signature header against the raw request body.
	ValidateSignature(body []byte, signature string) error
}
