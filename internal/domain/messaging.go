// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain/models"
)

// WebinarIndexSender handles indexing operations for webinars.
type WebinarIndexSender interface {
	SendIndexWebinar(ctx context.Context, action models.MessageAction, data *models.Webinar) error
	SendDeleteIndexWebinar(ctx context.Context, webinarUID string) error
}

// WebinarEventSender handles webinar lifecycle events.
type WebinarEventSender interface {
	SendWebinarDeleted(ctx context.Context, data models.WebinarDeletedMessage) error
	SendSyncCompleted(ctx context.Context, data models.SyncCompletedMessage) error
}

// MessageBuilder composes all messaging capabilities of the service.
type MessageBuilder interface {
	WebinarIndexSender
	WebinarEventSender
}
