// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain/models"
)

// MockMessageBuilder implements MessageBuilder for testing
type MockMessageBuilder struct {
	mock.Mock
}

func (m *MockMessageBuilder) SendIndexWebinar(ctx context.Context, action models.MessageAction, data *models.Webinar) error {
	args := m.Called(ctx, action, data)
	return args.Error(0)
}

func (m *MockMessageBuilder) SendDeleteIndexWebinar(ctx context.Context, webinarUID string) error {
	args := m.Called(ctx, webinarUID)
	return args.Error(0)
}

func (m *MockMessageBuilder) SendWebinarDeleted(ctx context.Context, data models.WebinarDeletedMessage) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockMessageBuilder) SendSyncCompleted(ctx context.Context, data models.SyncCompletedMessage) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}
