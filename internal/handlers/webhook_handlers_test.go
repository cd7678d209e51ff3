// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain/models"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/infrastructure/webhook"
)

const testWebhookSecret = "test-webhook-secret"

func signBody(secret, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

func postWebhook(t *testing.T, handler *WebhookHandler, body, signature string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/webinargeek/v1/webhook", strings.NewReader(body))
	if signature != "" {
		req.Header.Set(domain.WebhookSignatureHeader, signature)
	}
	rec := httptest.NewRecorder()
	handler.HandleWebhook(rec, req)
	return rec
}

func TestWebhookHandler_HandleWebhook_Created(t *testing.T) {
	engine := &mockSyncEngine{}
	engine.On("ServiceReady").Return(true)
	handler := NewWebhookHandler(engine, webhook.NewValidator(testWebhookSecret))

	body := `{"type":"webinar.created","data":{"id":123,"title":"Launch webinar"}}`
	engine.On("UpsertOne", mock.Anything, mock.MatchedBy(func(r *models.WebinarRecord) bool {
		return r.ID.String() == "123" && r.Title == "Launch webinar"
	})).Return(models.SyncActionCreated, nil)

	rec := postWebhook(t, handler, body, signBody(testWebhookSecret, body))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success"}`, rec.Body.String())
	engine.AssertExpectations(t)
}

func TestWebhookHandler_HandleWebhook_Deleted(t *testing.T) {
	engine := &mockSyncEngine{}
	engine.On("ServiceReady").Return(true)
	handler := NewWebhookHandler(engine, webhook.NewValidator(testWebhookSecret))

	body := `{"type":"webinar.deleted","data":{"id":"456"}}`
	engine.On("DeleteOne", mock.Anything, "456").Return(nil)

	rec := postWebhook(t, handler, body, signBody(testWebhookSecret, body))

	assert.Equal(t, http.StatusOK, rec.Code)
	engine.AssertExpectations(t)
}

func TestWebhookHandler_HandleWebhook_UnknownTypeIsAccepted(t *testing.T) {
	engine := &mockSyncEngine{}
	engine.On("ServiceReady").Return(true)
	handler := NewWebhookHandler(engine, webhook.NewValidator(testWebhookSecret))

	body := `{"type":"webinar.started","data":{"id":"1"}}`
	rec := postWebhook(t, handler, body, signBody(testWebhookSecret, body))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success"}`, rec.Body.String())
	engine.AssertNotCalled(t, "UpsertOne", mock.Anything, mock.Anything)
	engine.AssertNotCalled(t, "DeleteOne", mock.Anything, mock.Anything)
}

func TestWebhookHandler_HandleWebhook_ProcessingFailureStillAnswersOK(t *testing.T) {
	engine := &mockSyncEngine{}
	engine.On("ServiceReady").Return(true)
	handler := NewWebhookHandler(engine, webhook.NewValidator(testWebhookSecret))

	body := `{"type":"webinar.updated","data":{"id":"9","title":"Updated"}}`
	engine.On("UpsertOne", mock.Anything, mock.Anything).
		Return(models.SyncActionFailed, domain.NewInternalError("store write failed"))

	rec := postWebhook(t, handler, body, signBody(testWebhookSecret, body))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success"}`, rec.Body.String())
}

func TestWebhookHandler_HandleWebhook_SignatureRejections(t *testing.T) {
	body := `{"type":"webinar.created","data":{"id":"1","title":"t"}}`

	tests := []struct {
		name      string
		secret    string
		signature string
	}{
		{
			name:      "missing signature",
			secret:    testWebhookSecret,
			signature: "",
		},
		{
			name:      "wrong signature",
			secret:    testWebhookSecret,
			signature: signBody("other-secret", body),
		},
		{
			name:      "secret not configured",
			secret:    "",
			signature: signBody(testWebhookSecret, body),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &mockSyncEngine{}
			engine.On("ServiceReady").Return(true)
			handler := NewWebhookHandler(engine, webhook.NewValidator(tt.secret))

			rec := postWebhook(t, handler, body, tt.signature)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"invalid_signature"}`, rec.Body.String())
			engine.AssertNotCalled(t, "UpsertOne", mock.Anything, mock.Anything)
		})
	}
}

func TestWebhookHandler_HandleWebhook_InvalidPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "not json at all"},
		{name: "missing type", body: `{"data":{"id":"1"}}`},
		{name: "missing data", body: `{"type":"webinar.created"}`},
		{name: "empty object", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &mockSyncEngine{}
			engine.On("ServiceReady").Return(true)
			handler := NewWebhookHandler(engine, webhook.NewValidator(testWebhookSecret))

			rec := postWebhook(t, handler, tt.body, signBody(testWebhookSecret, tt.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"invalid_payload"}`, rec.Body.String())
		})
	}
}

func TestWebhookHandler_HandleWebhook_NotReady(t *testing.T) {
	engine := &mockSyncEngine{}
	engine.On("ServiceReady").Return(false)
	handler := NewWebhookHandler(engine, webhook.NewValidator(testWebhookSecret))

	rec := postWebhook(t, handler, "{}", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
