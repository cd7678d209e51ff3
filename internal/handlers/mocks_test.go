// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain/models"
)

type mockSyncEngine struct {
	mock.Mock
}

func (m *mockSyncEngine) ServiceReady() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *mockSyncEngine) SyncAll(ctx context.Context) (models.SyncStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(models.SyncStats)
	return stats, args.Error(1)
}

func (m *mockSyncEngine) UpsertOne(ctx context.Context, record *models.WebinarRecord) (models.SyncAction, error) {
	args := m.Called(ctx, record)
	action, _ := args.Get(0).(models.SyncAction)
	return action, args.Error(1)
}

func (m *mockSyncEngine) DeleteOne(ctx context.Context, webinarID string) error {
	args := m.Called(ctx, webinarID)
	return args.Error(0)
}

type mockRegistrationSubmitter struct {
	mock.Mock
}

func (m *mockRegistrationSubmitter) ServiceReady() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *mockRegistrationSubmitter) Register(ctx context.Context, webinarID string, form map[string]string) (models.RegistrationConfirmation, error) {
	args := m.Called(ctx, webinarID, form)
	confirmation, _ := args.Get(0).(models.RegistrationConfirmation)
	return confirmation, args.Error(1)
}
