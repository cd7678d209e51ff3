// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

// Package service contains the business logic of the sync service.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain/models"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/logging"
	"github.com/webinargeek-labs/webinargeek-sync-service/pkg/concurrent"
)

// syncWorkerCount bounds how many records a sync run reconciles at once.
const syncWorkerCount = 4

// SyncService reconciles the local webinar store with the remote catalog.
type SyncService struct {
	WebinarRepository domain.WebinarRepository
	WebinarAPI        domain.WebinarAPI
	MessageBuilder    domain.MessageBuilder
}

// NewSyncService creates a new SyncService.
func NewSyncService(
	webinarRepository domain.WebinarRepository,
	webinarAPI domain.WebinarAPI,
	messageBuilder domain.MessageBuilder,
) *SyncService {
	return &SyncService{
		WebinarRepository: webinarRepository,
		WebinarAPI:        webinarAPI,
		MessageBuilder:    messageBuilder,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *SyncService) ServiceReady() bool {
	return s.WebinarRepository != nil &&
		s.WebinarAPI != nil &&
		s.MessageBuilder != nil
}

// SyncAll fetches the full remote catalog and reconciles every record into
// the local store. A catalog fetch failure aborts the run; a failure on an
// individual record only counts against that record.
func (s *SyncService) SyncAll(ctx context.Context) (models.SyncStats, error) {
	stats := models.SyncStats{RunID: uuid.New().String()}

	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return stats, domain.ErrServiceUnavailable
	}

	ctx = logging.AppendCtx(ctx, slog.String("sync_run_id", stats.RunID))
	slog.InfoContext(ctx, "starting webinar sync run")

	records, err := s.WebinarAPI.ListWebinars(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch webinar catalog, aborting sync run",
			logging.ErrKey, err, logging.PriorityCritical())
		return stats, err
	}

	actions := make([]models.SyncAction, len(records))
	tasks := make([]func() error, len(records))
	for i, record := range records {
		i, record := i, record
		tasks[i] = func() error {
			action, _, err := s.upsertRecord(ctx, record)
			if err != nil {
				slog.ErrorContext(ctx, "failed to sync webinar record",
					logging.ErrKey, err, "webinar_id", record.ID.String())
				actions[i] = models.SyncActionFailed
				return err
			}
			actions[i] = action
			return nil
		}
	}
	concurrent.NewWorkerPool(syncWorkerCount).RunAll(ctx, tasks...)

	for _, action := range actions {
		// A record skipped by context cancellation counts as failed.
		if action == "" {
			action = models.SyncActionFailed
		}
		stats.Record(action)
	}

	slog.InfoContext(ctx, "webinar sync run completed",
		"created", stats.Created,
		"updated", stats.Updated,
		"failed", stats.Failed,
		"total", stats.Total(),
	)

	// Downstream consumers are told about the run. A publish failure never
	// fails a run that already updated the store.
	if err := s.MessageBuilder.SendSyncCompleted(ctx, models.SyncCompletedMessage{Stats: stats}); err != nil {
		slog.ErrorContext(ctx, "failed to publish sync completion message", logging.ErrKey, err)
	}

	return stats, nil
}

// UpsertOne reconciles a single remote record into the local store. It is
// used by the webhook path where the remote system pushes one webinar.
func (s *SyncService) UpsertOne(ctx context.Context, record *models.WebinarRecord) (models.SyncAction, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return models.SyncActionFailed, domain.ErrServiceUnavailable
	}

	action, _, err := s.upsertRecord(ctx, record)
	if err != nil {
		return models.SyncActionFailed, err
	}
	return action, nil
}

// DeleteOne removes the local webinar for a remote identifier. Deleting a
// webinar that was never synced is a no-op.
func (s *SyncService) DeleteOne(ctx context.Context, webinarID string) error {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return domain.ErrServiceUnavailable
	}

	webinar, revision, err := s.WebinarRepository.GetWithRevision(ctx, webinarID)
	if err != nil {
		if errors.Is(err, domain.ErrWebinarNotFound) {
			slog.DebugContext(ctx, "delete for unknown webinar, nothing to do", "webinar_id", webinarID)
			return nil
		}
		return err
	}

	if err := s.WebinarRepository.Delete(ctx, webinarID, revision); err != nil {
		return err
	}

	slog.InfoContext(ctx, "deleted local webinar", "webinar_id", webinarID, "webinar_uid", webinar.UID)

	if err := s.MessageBuilder.SendDeleteIndexWebinar(ctx, webinar.UID); err != nil {
		slog.ErrorContext(ctx, "failed to publish webinar index deletion", logging.ErrKey, err)
	}
	if err := s.MessageBuilder.SendWebinarDeleted(ctx, models.WebinarDeletedMessage{
		WebinarUID: webinar.UID,
		WebinarID:  webinar.WebinarID,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish webinar deletion event", logging.ErrKey, err)
	}

	return nil
}

// upsertRecord creates or updates the local webinar for a remote record.
func (s *SyncService) upsertRecord(ctx context.Context, record *models.WebinarRecord) (models.SyncAction, *models.Webinar, error) {
	if record == nil || record.ID == "" || record.Title == "" {
		return models.SyncActionFailed, nil,
			domain.NewValidationError("webinar record requires id and title")
	}

	webinarID := record.ID.String()
	now := time.Now().UTC()

	existing, revision, err := s.WebinarRepository.GetWithRevision(ctx, webinarID)
	if err != nil && !errors.Is(err, domain.ErrWebinarNotFound) {
		return models.SyncActionFailed, nil, err
	}

	if existing == nil {
		webinar := &models.Webinar{
			UID:       uuid.New().String(),
			CreatedAt: &now,
			UpdatedAt: &now,
		}
		if err := webinar.ApplyRecord(record); err != nil {
			return models.SyncActionFailed, nil, domain.NewMappingError("failed to map webinar record", err)
		}

		if err := s.WebinarRepository.Create(ctx, webinar); err != nil {
			return models.SyncActionFailed, nil, err
		}

		slog.InfoContext(ctx, "created local webinar", "webinar_id", webinarID, "webinar_uid", webinar.UID)
		s.sendIndexMessage(ctx, models.ActionCreated, webinar)
		return models.SyncActionCreated, webinar, nil
	}

	if err := existing.ApplyRecord(record); err != nil {
		return models.SyncActionFailed, nil, domain.NewMappingError("failed to map webinar record", err)
	}
	existing.UpdatedAt = &now

	if err := s.WebinarRepository.Update(ctx, existing, revision); err != nil {
		return models.SyncActionFailed, nil, err
	}

	slog.DebugContext(ctx, "updated local webinar", "webinar_id", webinarID, "webinar_uid", existing.UID)
	s.sendIndexMessage(ctx, models.ActionUpdated, existing)
	return models.SyncActionUpdated, existing, nil
}

// sendIndexMessage publishes an indexer message for a webinar. Failures are
// logged but never fail the sync that produced them.
func (s *SyncService) sendIndexMessage(ctx context.Context, action models.MessageAction, webinar *models.Webinar) {
	if err := s.MessageBuilder.SendIndexWebinar(ctx, action, webinar); err != nil {
		slog.ErrorContext(ctx, "failed to publish webinar index message",
			logging.ErrKey, err, "webinar_uid", webinar.UID, "action", action)
	}
}
