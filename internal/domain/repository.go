// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain/models"
)

// WebinarRepository defines the interface for local webinar storage operations.
// This interface can be implemented by different storage backends (NATS, PostgreSQL, etc.)
type WebinarRepository interface {
	Create(ctx context.Context, webinar *models.Webinar) error
	Exists(ctx context.Context, webinarID string) (bool, error)
	Delete(ctx context.Context, webinarID string, revision uint64) error

	// Lookups are keyed by the remote webinar identifier, which the store
	// guarantees maps to at most one local webinar.
	Get(ctx context.Context, webinarID string) (*models.Webinar, error)
	GetWithRevision(ctx context.Context, webinarID string) (*models.Webinar, uint64, error)
	Update(ctx context.Context, webinar *models.Webinar, revision uint64) error

	// Bulk operations
	ListAll(ctx context.Context) ([]*models.Webinar, error)
}
