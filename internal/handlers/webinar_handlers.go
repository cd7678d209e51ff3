// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/logging"
)

// WebinarHandler serves the locally synchronized webinar catalog.
type WebinarHandler struct {
	repository domain.WebinarRepository
}

func NewWebinarHandler(repository domain.WebinarRepository) *WebinarHandler {
	return &WebinarHandler{repository: repository}
}

func (h *WebinarHandler) HandlerReady() bool {
	return h.repository != nil
}

// HandleListWebinars returns every locally stored webinar.
func (h *WebinarHandler) HandleListWebinars(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.HandlerReady() {
		writeDomainError(ctx, w, domain.ErrServiceUnavailable)
		return
	}

	webinars, err := h.repository.ListAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "error listing webinars", logging.ErrKey, err)
		writeDomainError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, webinars)
}

// HandleGetWebinar returns one locally stored webinar by its remote identifier.
func (h *WebinarHandler) HandleGetWebinar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.HandlerReady() {
		writeDomainError(ctx, w, domain.ErrServiceUnavailable)
		return
	}

	webinarID := chi.URLParam(r, "id")
	ctx = logging.AppendCtx(ctx, slog.String("webinar_id", webinarID))

	webinar, err := h.repository.Get(ctx, webinarID)
	if err != nil {
		slog.ErrorContext(ctx, "error getting webinar", logging.ErrKey, err)
		writeDomainError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, webinar)
}
