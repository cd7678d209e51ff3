// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package webinargeek

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain/models"
)

// webinarsCollectionKey is the key under which the list endpoint nests the catalog.
const webinarsCollectionKey = "webinars"

// ListWebinars fetches the full webinar catalog.
// This is a pure API call with no business logic.
func (c *Client) ListWebinars(ctx context.Context) ([]*models.WebinarRecord, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/webinars", nil)
	if err != nil {
		return nil, err
	}

	var response map[string]json.RawMessage
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, domain.NewParseError("failed to decode webinars response", err)
	}

	collection, ok := response[webinarsCollectionKey]
	if !ok {
		return nil, domain.NewParseError(
			fmt.Sprintf("webinars response missing %q collection", webinarsCollectionKey))
	}

	var webinars []*models.WebinarRecord
	if err := json.Unmarshal(collection, &webinars); err != nil {
		return nil, domain.NewParseError("failed to decode webinars collection", err)
	}

	return webinars, nil
}

// GetWebinar fetches a single webinar by its remote identifier.
func (c *Client) GetWebinar(ctx context.Context, webinarID string) (*models.WebinarRecord, error) {
	path := fmt.Sprintf("/webinars/%s", url.PathEscape(webinarID))
	body, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var webinar models.WebinarRecord
	if err := json.Unmarshal(body, &webinar); err != nil {
		return nil, domain.NewParseError("failed to decode webinar response", err)
	}

	return &webinar, nil
}

// GetRegistrationFields fetches the extra registration form fields a webinar
// declares. A webinar without extra fields, or an unknown webinar, yields an
// empty list rather than an error.
func (c *Client) GetRegistrationFields(ctx context.Context, webinarID string) ([]models.RegistrationField, error) {
	webinar, err := c.GetWebinar(ctx, webinarID)
	if err != nil {
		if domain.GetErrorType(err) == domain.ErrorTypeNotFound {
			return []models.RegistrationField{}, nil
		}
		return nil, err
	}

	if webinar.RegistrationFields == nil {
		return []models.RegistrationField{}, nil
	}
	return webinar.RegistrationFields, nil
}

// RegisterParticipant registers a participant for a webinar.
func (c *Client) RegisterParticipant(ctx context.Context, webinarID string, registration *models.ParticipantRegistration) (models.RegistrationConfirmation, error) {
	if registration == nil || registration.Email == "" || registration.Name == "" {
		return nil, domain.NewValidationError("registration requires email and name")
	}

	path := fmt.Sprintf("/webinars/%s/registrations", url.PathEscape(webinarID))
	body, err := c.doRequest(ctx, http.MethodPost, path, registration.Payload())
	if err != nil {
		return nil, err
	}

	var confirmation models.RegistrationConfirmation
	if err := json.Unmarshal(body, &confirmation); err != nil {
		return nil, domain.NewParseError("failed to decode registration response", err)
	}

	return confirmation, nil
}
