// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain/models"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/logging"
)

// NATS Key-Value store bucket names.
const (
	// KVStoreNameWebinars is the name of the KV store for webinars.
	KVStoreNameWebinars = "webinars"
)

// NatsWebinarRepository is the NATS KV store repository for webinars.
// Entries are keyed by the remote webinar identifier, so a remote webinar
// maps to at most one local record and a concurrent create degrades into
// an overwrite of the same key instead of a duplicate.
type NatsWebinarRepository struct {
	Webinars INatsKeyValue
}

// NewNatsWebinarRepository creates a new NATS KV store repository for webinars.
func NewNatsWebinarRepository(webinars INatsKeyValue) *NatsWebinarRepository {
	return &NatsWebinarRepository{
		Webinars: webinars,
	}
}

func (s *NatsWebinarRepository) get(ctx context.Context, webinarID string) (jetstream.KeyValueEntry, error) {
	if s.Webinars == nil {
		return nil, domain.ErrServiceUnavailable
	}
	return s.Webinars.Get(ctx, webinarID)
}

func (s *NatsWebinarRepository) unmarshal(ctx context.Context, entry jetstream.KeyValueEntry) (*models.Webinar, error) {
	var webinar models.Webinar
	err := json.Unmarshal(entry.Value(), &webinar)
	if err != nil {
		slog.ErrorContext(ctx, "error unmarshaling webinar", logging.ErrKey, err)
		return nil, domain.ErrUnmarshal
	}

	return &webinar, nil
}

func (s *NatsWebinarRepository) Get(ctx context.Context, webinarID string) (*models.Webinar, error) {
	webinar, _, err := s.GetWithRevision(ctx, webinarID)
	if err != nil {
		return nil, err
	}
	return webinar, nil
}

func (s *NatsWebinarRepository) GetWithRevision(ctx context.Context, webinarID string) (*models.Webinar, uint64, error) {
	entry, err := s.get(ctx, webinarID)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			slog.WarnContext(ctx, "webinar not found", logging.ErrKey, domain.ErrWebinarNotFound, "webinar_id", webinarID)
			return nil, 0, domain.ErrWebinarNotFound
		}
		slog.ErrorContext(ctx, "error getting webinar from NATS KV", logging.ErrKey, err)
		return nil, 0, err
	}

	webinar, err := s.unmarshal(ctx, entry)
	if err != nil {
		return nil, 0, err
	}

	return webinar, entry.Revision(), nil
}

func (s *NatsWebinarRepository) Exists(ctx context.Context, webinarID string) (bool, error) {
	_, err := s.get(ctx, webinarID)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *NatsWebinarRepository) ListAll(ctx context.Context) ([]*models.Webinar, error) {
	if s.Webinars == nil {
		return nil, domain.ErrServiceUnavailable
	}

	keysLister, err := s.Webinars.ListKeys(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "error listing webinar keys from NATS KV store", logging.ErrKey, err)
		return nil, domain.ErrInternal
	}

	webinars := []*models.Webinar{}
	for key := range keysLister.Keys() {
		entry, err := s.get(ctx, key)
		if err != nil {
			slog.ErrorContext(ctx, "error getting webinar from NATS KV store", logging.ErrKey, err, "webinar_id", key)
			return nil, domain.ErrInternal
		}

		webinar, err := s.unmarshal(ctx, entry)
		if err != nil {
			slog.ErrorContext(ctx, "error unmarshaling webinar from NATS KV store", logging.ErrKey, err, "webinar_id", key)
			return nil, domain.ErrUnmarshal
		}

		webinars = append(webinars, webinar)
	}

	return webinars, nil
}

func (s *NatsWebinarRepository) put(ctx context.Context, webinar *models.Webinar) (uint64, error) {
	if s.Webinars == nil {
		return 0, domain.ErrServiceUnavailable
	}

	jsonData, err := json.Marshal(webinar)
	if err != nil {
		slog.ErrorContext(ctx, "error marshaling webinar", logging.ErrKey, err)
		return 0, domain.ErrInternal
	}

	revision, err := s.Webinars.Put(ctx, webinar.WebinarID, jsonData)
	if err != nil {
		slog.ErrorContext(ctx, "error putting webinar into NATS KV store", logging.ErrKey, err)
		return 0, domain.ErrInternal
	}

	return revision, nil
}

func (s *NatsWebinarRepository) Create(ctx context.Context, webinar *models.Webinar) error {
	_, err := s.put(ctx, webinar)
	if err != nil {
		return err
	}

	return nil
}

func (s *NatsWebinarRepository) Update(ctx context.Context, webinar *models.Webinar, revision uint64) error {
	if s.Webinars == nil {
		return domain.ErrServiceUnavailable
	}

	jsonData, err := json.Marshal(webinar)
	if err != nil {
		slog.ErrorContext(ctx, "error marshaling webinar", logging.ErrKey, err)
		return domain.ErrInternal
	}

	_, err = s.Webinars.Update(ctx, webinar.WebinarID, jsonData, revision)
	if err != nil {
		if strings.Contains(err.Error(), "wrong last sequence") {
			slog.WarnContext(ctx, "revision mismatch", logging.ErrKey, err)
			return domain.ErrRevisionMismatch
		}
		slog.ErrorContext(ctx, "error updating webinar in NATS KV store", logging.ErrKey, err)
		return domain.ErrInternal
	}

	return nil
}

func (s *NatsWebinarRepository) Delete(ctx context.Context, webinarID string, revision uint64) error {
	if s.Webinars == nil {
		return domain.ErrServiceUnavailable
	}

	err := s.Webinars.Delete(ctx, webinarID, jetstream.LastRevision(revision))
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return domain.ErrWebinarNotFound
		}
		if strings.Contains(err.Error(), "wrong last sequence") {
			slog.WarnContext(ctx, "revision mismatch", logging.ErrKey, err)
			return domain.ErrRevisionMismatch
		}
		slog.ErrorContext(ctx, "error deleting webinar from NATS KV store", logging.ErrKey, err)
		return domain.ErrInternal
	}

	return nil
}
