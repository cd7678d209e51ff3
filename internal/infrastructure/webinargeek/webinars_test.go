// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package webinargeek

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain/models"
)

func newTestClient(server *httptest.Server) *Client {
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
}

func TestClient_ListWebinars(t *testing.T) {
	tests := []struct {
		name          string
		mockResponse  string
		mockStatus    int
		expectedError bool
		errorType     domain.ErrorType
		expectedCount int
	}{
		{
			name: "successful list",
			mockResponse: `{
				"webinars": [
					{"id": 1, "title": "First", "status": "scheduled"},
					{"id": "2", "title": "Second", "status": "ended"}
				]
			}`,
			mockStatus:    http.StatusOK,
			expectedCount: 2,
		},
		{
			name:          "empty catalog",
			mockResponse:  `{"webinars": []}`,
			mockStatus:    http.StatusOK,
			expectedCount: 0,
		},
		{
			name:          "missing collection key",
			mockResponse:  `{"data": []}`,
			mockStatus:    http.StatusOK,
			expectedError: true,
			errorType:     domain.ErrorTypeParse,
		},
		{
			name:          "malformed body",
			mockResponse:  `not json`,
			mockStatus:    http.StatusOK,
			expectedError: true,
			errorType:     domain.ErrorTypeParse,
		},
		{
			name:          "unauthorized",
			mockResponse:  `{"error": "invalid api token"}`,
			mockStatus:    http.StatusUnauthorized,
			expectedError: true,
			errorType:     domain.ErrorTypeRemoteStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/webinars" {
					t.Errorf("expected path /webinars, got %s", r.URL.Path)
				}
				if r.Method != http.MethodGet {
					t.Errorf("expected GET, got %s", r.Method)
				}
				if got := r.Header.Get("Api-Token"); got != "test-key" {
					t.Errorf("expected Api-Token header 'test-key', got %q", got)
				}
				if got := r.Header.Get("Accept"); got != "application/json" {
					t.Errorf("expected Accept application/json, got %q", got)
				}
				w.WriteHeader(tt.mockStatus)
				_, _ = w.Write([]byte(tt.mockResponse))
			}))
			defer server.Close()

			client := newTestClient(server)
			webinars, err := client.ListWebinars(context.Background())

			if tt.expectedError {
				if err == nil {
					t.Fatal("expected error")
				}
				if got := domain.GetErrorType(err); got != tt.errorType {
					t.Errorf("expected error type %d, got %d", tt.errorType, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(webinars) != tt.expectedCount {
				t.Errorf("expected %d webinars, got %d", tt.expectedCount, len(webinars))
			}
		})
	}
}

func TestClient_GetWebinar(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/webinars/42" {
			t.Errorf("expected path /webinars/42, got %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id": 42, "title": "Launch", "duration": "90"}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	webinar, err := client.GetWebinar(context.Background(), "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if webinar.ID.String() != "42" {
		t.Errorf("expected id '42', got %q", webinar.ID.String())
	}
	if webinar.Duration.Int() != 90 {
		t.Errorf("expected duration 90, got %d", webinar.Duration.Int())
	}
}

func TestClient_GetWebinar_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "webinar not found"}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.GetWebinar(context.Background(), "99")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := domain.GetErrorType(err); got != domain.ErrorTypeNotFound {
		t.Errorf("expected not found error type, got %d", got)
	}
}

func TestClient_GetRegistrationFields(t *testing.T) {
	tests := []struct {
		name          string
		mockResponse  string
		expectedCount int
	}{
		{
			name:          "webinar with fields",
			mockResponse:  `{"id": 1, "registration_fields": [{"name": "company", "label": "Company"}]}`,
			expectedCount: 1,
		},
		{
			name:          "webinar without fields",
			mockResponse:  `{"id": 1, "title": "No fields"}`,
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(tt.mockResponse))
			}))
			defer server.Close()

			client := newTestClient(server)
			fields, err := client.GetRegistrationFields(context.Background(), "1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if fields == nil {
				t.Fatal("expected non-nil field list")
			}
			if len(fields) != tt.expectedCount {
				t.Errorf("expected %d fields, got %d", tt.expectedCount, len(fields))
			}
		})
	}
}

func TestClient_GetRegistrationFields_UnknownWebinar(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "not found"}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	fields, err := client.GetRegistrationFields(context.Background(), "999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields == nil || len(fields) != 0 {
		t.Errorf("expected empty field list, got %v", fields)
	}
}

func TestClient_RegisterParticipant(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/webinars/42/registrations" {
			t.Errorf("expected path /webinars/42/registrations, got %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}

		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode payload: %v", err)
		}
		if payload["email"] != "jan@example.com" {
			t.Errorf("expected email in payload, got %q", payload["email"])
		}
		if payload["company"] != "Acme" {
			t.Errorf("expected extra field in payload, got %q", payload["company"])
		}

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 1001, "watch_url": "https://example.com/watch"}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	confirmation, err := client.RegisterParticipant(context.Background(), "42", &models.ParticipantRegistration{
		Email: "jan@example.com",
		Name:  "Jan",
		Extra: map[string]string{"company": "Acme"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if confirmation["watch_url"] != "https://example.com/watch" {
		t.Errorf("unexpected confirmation: %v", confirmation)
	}
}

func TestClient_RegisterParticipant_RequiresEmailAndName(t *testing.T) {
	client := NewClient(Config{APIKey: "test-key"})

	_, err := client.RegisterParticipant(context.Background(), "42", &models.ParticipantRegistration{Email: "jan@example.com"})
	if err == nil {
		t.Fatal("expected error for missing name")
	}
	if got := domain.GetErrorType(err); got != domain.ErrorTypeValidation {
		t.Errorf("expected validation error type, got %d", got)
	}
}

func TestClient_ServerErrorSurfacesImmediately(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "internal"}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.RegisterParticipant(context.Background(), "42", &models.ParticipantRegistration{
		Email: "jan@example.com",
		Name:  "Jan",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := domain.GetErrorType(err); got != domain.ErrorTypeRemoteStatus {
		t.Errorf("expected remote status error type, got %d", got)
	}
	if attempts != 1 {
		t.Errorf("registration POST was sent %d times, want 1", attempts)
	}
}

func TestClient_ClientErrorSurfacesImmediately(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "bad request"}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.ListWebinars(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}

	var domainErr *domain.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatal("expected a domain error")
	}
}

func TestClient_LogsResponseBodyAtDebugLevel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"webinars": [{"id": 7, "title": "Debug Me"}]}`))
	}))
	defer server.Close()

	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(previous)

	client := newTestClient(server)
	if _, err := client.ListWebinars(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logged := buf.String()
	if !strings.Contains(logged, "Debug Me") {
		t.Errorf("expected debug log to carry the raw response body, got:\n%s", logged)
	}

	// At info level the raw body stays out of the logs.
	buf.Reset()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if _, err := client.ListWebinars(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "Debug Me") {
		t.Error("raw response body should not be logged above debug level")
	}
}
