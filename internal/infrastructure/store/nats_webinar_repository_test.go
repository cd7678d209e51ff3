// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain"
	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain/models"
)

func TestNewNatsWebinarRepository(t *testing.T) {
	webinars := newMockNatsKeyValue()

	repo := NewNatsWebinarRepository(webinars)

	if repo == nil {
		t.Fatal("expected repository to be created")
	}
	if repo.Webinars != webinars {
		t.Error("expected Webinars to be set correctly")
	}
}

func TestNatsWebinarRepository_Create(t *testing.T) {
	webinars := newMockNatsKeyValue()
	repo := NewNatsWebinarRepository(webinars)

	now := time.Now()
	webinar := &models.Webinar{
		UID:       "uid-1",
		WebinarID: "123",
		Title:     "Launch Webinar",
		CreatedAt: &now,
		UpdatedAt: &now,
	}

	err := repo.Create(context.Background(), webinar)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	// Entries are keyed by the remote identifier, not the local UID
	storedData, exists := webinars.data[webinar.WebinarID]
	if !exists {
		t.Fatal("expected webinar to be stored under its webinar_id")
	}

	var storedWebinar models.Webinar
	if err := json.Unmarshal(storedData, &storedWebinar); err != nil {
		t.Errorf("failed to unmarshal stored webinar: %v", err)
	}

	if storedWebinar.UID != webinar.UID {
		t.Errorf("expected UID %s, got %s", webinar.UID, storedWebinar.UID)
	}
	if storedWebinar.Title != webinar.Title {
		t.Errorf("expected Title %s, got %s", webinar.Title, storedWebinar.Title)
	}
}

func TestNatsWebinarRepository_Create_Error(t *testing.T) {
	webinars := &mockNatsKeyValue{putError: errors.New("put failed")}
	repo := NewNatsWebinarRepository(webinars)

	webinar := &models.Webinar{UID: "uid-1", WebinarID: "123", Title: "Launch Webinar"}

	err := repo.Create(context.Background(), webinar)
	if err == nil {
		t.Error("expected error but got nil")
	}
	if err != domain.ErrInternal {
		t.Errorf("expected ErrInternal, got %v", err)
	}
}

func TestNatsWebinarRepository_Exists(t *testing.T) {
	webinars := newMockNatsKeyValue()
	repo := NewNatsWebinarRepository(webinars)

	exists, err := repo.Exists(context.Background(), "non-existent")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected webinar to not exist")
	}

	webinars.data["123"] = []byte(`{"uid":"uid-1","webinar_id":"123","title":"Launch"}`)

	exists, err = repo.Exists(context.Background(), "123")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected webinar to exist")
	}
}

func TestNatsWebinarRepository_Get(t *testing.T) {
	webinars := newMockNatsKeyValue()
	repo := NewNatsWebinarRepository(webinars)

	webinar := &models.Webinar{
		UID:       "uid-1",
		WebinarID: "123",
		Title:     "Launch Webinar",
		Fields: map[string]string{
			models.FieldWebinarStatus: "scheduled",
		},
	}

	webinarData, _ := json.Marshal(webinar)
	webinars.data["123"] = webinarData
	webinars.revisions["123"] = 4

	result, err := repo.Get(context.Background(), "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.UID != webinar.UID {
		t.Errorf("expected UID %s, got %s", webinar.UID, result.UID)
	}
	if result.Fields[models.FieldWebinarStatus] != "scheduled" {
		t.Errorf("expected status field preserved, got %v", result.Fields)
	}
}

func TestNatsWebinarRepository_Get_NotFound(t *testing.T) {
	repo := NewNatsWebinarRepository(newMockNatsKeyValue())

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrWebinarNotFound) {
		t.Errorf("expected ErrWebinarNotFound, got %v", err)
	}
}

func TestNatsWebinarRepository_GetWithRevision(t *testing.T) {
	webinars := newMockNatsKeyValue()
	repo := NewNatsWebinarRepository(webinars)

	webinarData, _ := json.Marshal(&models.Webinar{UID: "uid-1", WebinarID: "123"})
	webinars.data["123"] = webinarData
	webinars.revisions["123"] = 7

	webinar, revision, err := repo.GetWithRevision(context.Background(), "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if revision != 7 {
		t.Errorf("expected revision 7, got %d", revision)
	}
	if webinar.WebinarID != "123" {
		t.Errorf("expected webinar_id '123', got %q", webinar.WebinarID)
	}
}

func TestNatsWebinarRepository_Get_Unmarshal_Error(t *testing.T) {
	webinars := newMockNatsKeyValue()
	repo := NewNatsWebinarRepository(webinars)

	webinars.data["123"] = []byte("not json")

	_, err := repo.Get(context.Background(), "123")
	if !errors.Is(err, domain.ErrUnmarshal) {
		t.Errorf("expected ErrUnmarshal, got %v", err)
	}
}

func TestNatsWebinarRepository_Update(t *testing.T) {
	webinars := newMockNatsKeyValue()
	repo := NewNatsWebinarRepository(webinars)

	webinar := &models.Webinar{UID: "uid-1", WebinarID: "123", Title: "Original"}
	if err := repo.Create(context.Background(), webinar); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	webinar.Title = "Updated"
	if err := repo.Update(context.Background(), webinar, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _, err := repo.GetWithRevision(context.Background(), "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Title != "Updated" {
		t.Errorf("expected title 'Updated', got %q", stored.Title)
	}
}

func TestNatsWebinarRepository_Update_RevisionMismatch(t *testing.T) {
	webinars := newMockNatsKeyValue()
	repo := NewNatsWebinarRepository(webinars)

	webinar := &models.Webinar{UID: "uid-1", WebinarID: "123"}
	if err := repo.Create(context.Background(), webinar); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := repo.Update(context.Background(), webinar, 99)
	if !errors.Is(err, domain.ErrRevisionMismatch) {
		t.Errorf("expected ErrRevisionMismatch, got %v", err)
	}
}

func TestNatsWebinarRepository_Delete(t *testing.T) {
	webinars := newMockNatsKeyValue()
	repo := NewNatsWebinarRepository(webinars)

	webinar := &models.Webinar{UID: "uid-1", WebinarID: "123"}
	if err := repo.Create(context.Background(), webinar); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.Delete(context.Background(), "123", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exists, err := repo.Exists(context.Background(), "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected webinar to be deleted")
	}
}

func TestNatsWebinarRepository_Delete_NotFound(t *testing.T) {
	repo := NewNatsWebinarRepository(newMockNatsKeyValue())

	err := repo.Delete(context.Background(), "missing", 1)
	if !errors.Is(err, domain.ErrWebinarNotFound) {
		t.Errorf("expected ErrWebinarNotFound, got %v", err)
	}
}

func TestNatsWebinarRepository_ListAll(t *testing.T) {
	webinars := newMockNatsKeyValue()
	repo := NewNatsWebinarRepository(webinars)

	for _, id := range []string{"1", "2", "3"} {
		data, _ := json.Marshal(&models.Webinar{UID: "uid-" + id, WebinarID: id})
		webinars.data[id] = data
	}

	result, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 3 {
		t.Errorf("expected 3 webinars, got %d", len(result))
	}
}

func TestNatsWebinarRepository_NotReady(t *testing.T) {
	repo := NewNatsWebinarRepository(nil)

	if _, err := repo.Get(context.Background(), "123"); !errors.Is(err, domain.ErrServiceUnavailable) {
		t.Errorf("expected ErrServiceUnavailable, got %v", err)
	}
	if _, err := repo.ListAll(context.Background()); !errors.Is(err, domain.ErrServiceUnavailable) {
		t.Errorf("expected ErrServiceUnavailable, got %v", err)
	}
	if err := repo.Create(context.Background(), &models.Webinar{}); !errors.Is(err, domain.ErrServiceUnavailable) {
		t.Errorf("expected ErrServiceUnavailable, got %v", err)
	}
}
