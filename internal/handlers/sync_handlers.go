// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package handlers

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/logging"
)

// SyncHandler exposes the manual full-sync trigger.
type SyncHandler struct {
	sync SyncEngine
}

func NewSyncHandler(sync SyncEngine) *SyncHandler {
	return &SyncHandler{sync: sync}
}

func (h *SyncHandler) HandlerReady() bool {
	return h.sync != nil && h.sync.ServiceReady()
}

// HandleTriggerSync runs a full synchronization pass and reports the
// resulting stats. When the caller supplies a redirect target the
// response is a 303 back to that target with sync-status appended, so
// browser-driven admin panels land on a confirmation banner.
func (h *SyncHandler) HandleTriggerSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.HandlerReady() {
		writeDomainError(ctx, w, domain.ErrServiceUnavailable)
		return
	}

	stats, err := h.sync.SyncAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "manual sync run failed", logging.ErrKey, err)
		writeDomainError(ctx, w, err)
		return
	}

	if target := r.URL.Query().Get("redirect"); target != "" {
		if redirectURL, parseErr := url.Parse(target); parseErr == nil {
			query := redirectURL.Query()
			query.Set("sync-status", "completed")
			redirectURL.RawQuery = query.Encode()
			http.Redirect(w, r, redirectURL.String(), http.StatusSeeOther)
			return
		}
		slog.WarnContext(ctx, "ignoring unparsable sync redirect target", "redirect", target)
	}

	writeJSON(ctx, w, http.StatusOK, stats)
}
