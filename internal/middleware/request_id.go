// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package middleware

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/logging"
)

// RequestIDHeader is the header used to propagate a request identifier.
const RequestIDHeader = "X-Request-Id"

// RequestIDMiddleware assigns each request an identifier, reusing the
// caller's X-Request-Id header when present. The identifier is echoed
// back in the response and attached to the request's log context.
func RequestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			w.Header().Set(RequestIDHeader, requestID)

			ctx := logging.AppendCtx(r.Context(), slog.String("request_id", requestID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
