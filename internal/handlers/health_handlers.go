// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package handlers

import (
	"net/http"
)

// HealthHandler serves the Kubernetes-style health probes.
type HealthHandler struct {
	readiness func() bool
}

// NewHealthHandler builds a health handler; readiness reports whether
// every dependency needed to serve traffic is available.
func NewHealthHandler(readiness func() bool) *HealthHandler {
	return &HealthHandler{readiness: readiness}
}

// HandleLivez reports process liveness.
func (h *HealthHandler) HandleLivez(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK\n"))
}

// HandleReadyz reports whether the service can handle requests.
func (h *HealthHandler) HandleReadyz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if h.readiness == nil || !h.readiness() {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("Service Unavailable\n"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK\n"))
}
