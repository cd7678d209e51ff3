// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package models

import (
	"encoding/json"
	"errors"
)

// Webhook event types sent by the remote platform.
const (
	WebhookEventWebinarCreated = "webinar.created"
	WebhookEventWebinarUpdated = "webinar.updated"
	WebhookEventWebinarDeleted = "webinar.deleted"
)

// WebhookEvent is the envelope of an incoming webhook notification.
type WebhookEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Valid reports whether the envelope carries the fields every event needs.
func (e *WebhookEvent) Valid() bool {
	return e != nil && e.Type != "" && len(e.Data) > 0
}

// WebinarRecord decodes the event payload as a full webinar record.
func (e *WebhookEvent) WebinarRecord() (*WebinarRecord, error) {
	var record WebinarRecord
	if err := json.Unmarshal(e.Data, &record); err != nil {
		return nil, err
	}
	if record.ID == "" {
		return nil, errors.New("webhook payload missing webinar id")
	}
	return &record, nil
}

// DeletedWebinarID extracts the webinar identifier from a deletion payload.
func (e *WebhookEvent) DeletedWebinarID() (string, error) {
	var payload struct {
		ID FlexString `json:"id"`
	}
	if err := json.Unmarshal(e.Data, &payload); err != nil {
		return "", err
	}
	if payload.ID == "" {
		return "", errors.New("webhook payload missing webinar id")
	}
	return payload.ID.String(), nil
}
