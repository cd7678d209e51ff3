// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain/models"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/logging"
)

// RegistrationService registers participants for webinars through the
// remote API, constrained to the fields each webinar declares.
type RegistrationService struct {
	WebinarAPI domain.WebinarAPI
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(webinarAPI domain.WebinarAPI) *RegistrationService {
	return &RegistrationService{
		WebinarAPI: webinarAPI,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *RegistrationService) ServiceReady() bool {
	return s.WebinarAPI != nil
}

// Register validates the submitted form values and registers the participant.
// Only email, name, and fields the webinar's registration form declares are
// forwarded to the remote API; anything else in the submission is dropped.
func (s *RegistrationService) Register(ctx context.Context, webinarID string, form map[string]string) (models.RegistrationConfirmation, error) {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return nil, domain.ErrServiceUnavailable
	}

	if webinarID == "" {
		return nil, domain.NewValidationError("webinar id is required")
	}

	email := strings.TrimSpace(form["email"])
	name := strings.TrimSpace(form["name"])
	if email == "" {
		return nil, domain.NewValidationError("email is required")
	}
	if name == "" {
		return nil, domain.NewValidationError("name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.NewValidationError("invalid email address", err)
	}

	declaredFields, err := s.WebinarAPI.GetRegistrationFields(ctx, webinarID)
	if err != nil {
		return nil, err
	}

	registration := &models.ParticipantRegistration{
		Email: email,
		Name:  name,
		Extra: make(map[string]string),
	}
	for _, field := range declaredFields {
		if value, ok := form[field.Name]; ok {
			registration.Extra[field.Name] = strings.TrimSpace(value)
		}
	}

	confirmation, err := s.WebinarAPI.RegisterParticipant(ctx, webinarID, registration)
	if err != nil {
		slog.ErrorContext(ctx, "failed to register participant",
			logging.ErrKey, err, "webinar_id", webinarID)
		return nil, err
	}

	slog.InfoContext(ctx, "registered participant", "webinar_id", webinarID)
	return confirmation, nil
}
