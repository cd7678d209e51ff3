// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain/models"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/logging"
)

// SyncEngine is the subset of the sync service the HTTP layer depends on.
type SyncEngine interface {
	ServiceReady() bool
	SyncAll(ctx context.Context) (models.SyncStats, error)
	UpsertOne(ctx context.Context, record *models.WebinarRecord) (models.SyncAction, error)
	DeleteOne(ctx context.Context, webinarID string) error
}

// RegistrationSubmitter is the subset of the registration service the
// HTTP layer depends on.
type RegistrationSubmitter interface {
	ServiceReady() bool
	Register(ctx context.Context, webinarID string, form map[string]string) (models.RegistrationConfirmation, error)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.ErrorContext(ctx, "error encoding HTTP response", logging.ErrKey, err)
	}
}

func writeDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	writeJSON(ctx, w, httpStatusFromError(err), map[string]string{"error": err.Error()})
}

// httpStatusFromError maps the domain error taxonomy onto HTTP status
// codes. Remote-side failures surface as 502 since the service acted as
// a gateway to the WebinarGeek API.
func httpStatusFromError(err error) int {
	switch domain.GetErrorType(err) {
	case domain.ErrorTypeValidation:
		return http.StatusBadRequest
	case domain.ErrorTypeAuth:
		return http.StatusUnauthorized
	case domain.ErrorTypeNotFound:
		return http.StatusNotFound
	case domain.ErrorTypeConflict:
		return http.StatusConflict
	case domain.ErrorTypeTransport, domain.ErrorTypeRemoteStatus, domain.ErrorTypeParse, domain.ErrorTypeMapping:
		return http.StatusBadGateway
	case domain.ErrorTypeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
