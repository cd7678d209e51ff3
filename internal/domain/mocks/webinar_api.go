// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain/models"
)

// MockWebinarAPI implements WebinarAPI for testing
type MockWebinarAPI struct {
	mock.Mock
}

func (m *MockWebinarAPI) ListWebinars(ctx context.Context) ([]*models.WebinarRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.WebinarRecord), args.Error(1)
}

func (m *MockWebinarAPI) GetWebinar(ctx context.Context, webinarID string) (*models.WebinarRecord, error) {
	args := m.Called(ctx, webinarID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WebinarRecord), args.Error(1)
}

func (m *MockWebinarAPI) GetRegistrationFields(ctx context.Context, webinarID string) ([]models.RegistrationField, error) {
	args := m.Called(ctx, webinarID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RegistrationField), args.Error(1)
}

func (m *MockWebinarAPI) RegisterParticipant(ctx context.Context, webinarID string, registration *models.ParticipantRegistration) (models.RegistrationConfirmation, error) {
	args := m.Called(ctx, webinarID, registration)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.RegistrationConfirmation), args.Error(1)
}
