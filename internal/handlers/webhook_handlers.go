// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain/models"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/logging"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/middleware"
)

// WebhookHandler handles WebinarGeek webhook events.
type WebhookHandler struct {
	sync      SyncEngine
	validator domain.WebhookValidator
}

func NewWebhookHandler(sync SyncEngine, validator domain.WebhookValidator) *WebhookHandler {
	return &WebhookHandler{
		sync:      sync,
		validator: validator,
	}
}

func (h *WebhookHandler) HandlerReady() bool {
	return h.sync != nil && h.sync.ServiceReady() && h.validator != nil
}

// HandleWebhook processes a WebinarGeek push notification. The signature
// is verified against the raw request bytes before any parsing happens.
// Processed events always answer 200 so WebinarGeek does not retry
// deliveries whose per-record handling failed on our side.
func (h *WebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.HandlerReady() {
		writeDomainError(ctx, w, domain.ErrServiceUnavailable)
		return
	}

	body, ok := middleware.GetRawBodyFromContext(ctx)
	if !ok {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			slog.ErrorContext(ctx, "error reading webhook body", logging.ErrKey, err)
			writeJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid_payload"})
			return
		}
		body = raw
	}

	signature := r.Header.Get(domain.WebhookSignatureHeader)
	if err := h.validator.ValidateSignature(body, signature); err != nil {
		slog.WarnContext(ctx, "rejected webhook delivery", logging.ErrKey, err)
		writeJSON(ctx, w, http.StatusUnauthorized, map[string]string{"error": "invalid_signature"})
		return
	}

	var event models.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil || !event.Valid() {
		slog.WarnContext(ctx, "received malformed webhook payload", logging.ErrKey, err)
		writeJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid_payload"})
		return
	}

	ctx = logging.AppendCtx(ctx, slog.String("event_type", event.Type))

	switch event.Type {
	case models.WebhookEventWebinarCreated, models.WebhookEventWebinarUpdated:
		h.handleWebinarUpsert(ctx, event)
	case models.WebhookEventWebinarDeleted:
		h.handleWebinarDeleted(ctx, event)
	default:
		slog.DebugContext(ctx, "ignoring webhook event of unknown type")
	}

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "success"})
}

func (h *WebhookHandler) handleWebinarUpsert(ctx context.Context, event models.WebhookEvent) {
	record, err := event.WebinarRecord()
	if err != nil {
		slog.ErrorContext(ctx, "error decoding webhook webinar record", logging.ErrKey, err)
		return
	}

	action, err := h.sync.UpsertOne(ctx, record)
	if err != nil {
		slog.ErrorContext(ctx, "error applying webhook webinar event", logging.ErrKey, err)
		return
	}

	slog.InfoContext(ctx, "processed webhook webinar event", "action", string(action))
}

func (h *WebhookHandler) handleWebinarDeleted(ctx context.Context, event models.WebhookEvent) {
	webinarID, err := event.DeletedWebinarID()
	if err != nil {
		slog.ErrorContext(ctx, "error decoding webhook deletion payload", logging.ErrKey, err)
		return
	}

	if err := h.sync.DeleteOne(ctx, webinarID); err != nil {
		slog.ErrorContext(ctx, "error deleting webinar from webhook event", logging.ErrKey, err)
		return
	}

	slog.InfoContext(ctx, "processed webhook webinar deletion", "webinar_id", webinarID)
}
