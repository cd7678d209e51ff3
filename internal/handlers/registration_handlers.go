// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/logging"
)

// Form fields with routing meaning; everything else is treated as a
// registration field value.
const (
	registrationFieldBroadcastID     = "broadcast_id"
	registrationFieldSuccessRedirect = "success_redirect"
)

// RegistrationHandler accepts participant registration form posts and
// forwards them to the registration service.
type RegistrationHandler struct {
	registrations RegistrationSubmitter
}

func NewRegistrationHandler(registrations RegistrationSubmitter) *RegistrationHandler {
	return &RegistrationHandler{registrations: registrations}
}

func (h *RegistrationHandler) HandlerReady() bool {
	return h.registrations != nil && h.registrations.ServiceReady()
}

type registrationResponseBody struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type registrationResponse struct {
	Success bool                     `json:"success"`
	Data    registrationResponseBody `json:"data"`
}

// HandleRegister processes a registration form submission. The form
// carries broadcast_id plus the participant's answers; unknown keys are
// passed along and filtered against the webinar's declared fields by
// the registration service.
func (h *RegistrationHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.HandlerReady() {
		writeDomainError(ctx, w, domain.ErrServiceUnavailable)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.writeFailure(ctx, w, domain.NewValidationError("invalid form submission", err))
		return
	}

	webinarID := r.PostForm.Get(registrationFieldBroadcastID)
	ctx = logging.AppendCtx(ctx, slog.String("webinar_id", webinarID))

	form := make(map[string]string, len(r.PostForm))
	for key, values := range r.PostForm {
		if key == registrationFieldBroadcastID || key == registrationFieldSuccessRedirect {
			continue
		}
		if len(values) > 0 {
			form[key] = values[0]
		}
	}

	confirmation, err := h.registrations.Register(ctx, webinarID, form)
	if err != nil {
		h.writeFailure(ctx, w, err)
		return
	}

	if target := r.PostForm.Get(registrationFieldSuccessRedirect); target != "" {
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	writeJSON(ctx, w, http.StatusOK, registrationResponse{
		Success: true,
		Data: registrationResponseBody{
			Message: "Registration successful",
			Data:    confirmation,
		},
	})
}

func (h *RegistrationHandler) writeFailure(ctx context.Context, w http.ResponseWriter, err error) {
	slog.WarnContext(ctx, "registration submission failed", logging.ErrKey, err)
	writeJSON(ctx, w, httpStatusFromError(err), registrationResponse{
		Success: false,
		Data: registrationResponseBody{
			Message: err.Error(),
		},
	})
}
