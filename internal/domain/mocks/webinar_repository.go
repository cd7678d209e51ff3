// Copyright The WebinarGeek Sync Service contributors.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/webinargeek-labs/webinargeek-sync-service/internal/domain/models"
)

// MockWebinarRepository implements WebinarRepository for testing
type MockWebinarRepository struct {
	mock.Mock
}

func (m *MockWebinarRepository) Create(ctx context.Context, webinar *models.Webinar) error {
	args := m.Called(ctx, webinar)
	return args.Error(0)
}

func (m *MockWebinarRepository) Exists(ctx context.Context, webinarID string) (bool, error) {
	args := m.Called(ctx, webinarID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWebinarRepository) Delete(ctx context.Context, webinarID string, revision uint64) error {
	args := m.Called(ctx, webinarID, revision)
	return args.Error(0)
}

func (m *MockWebinarRepository) Get(ctx context.Context, webinarID string) (*models.Webinar, error) {
	args := m.Called(ctx, webinarID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Webinar), args.Error(1)
}

func (m *MockWebinarRepository) GetWithRevision(ctx context.Context, webinarID string) (*models.Webinar, uint64, error) {
	args := m.Called(ctx, webinarID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(uint64), args.Error(2)
	}
	return args.Get(0).(*models.Webinar), args.Get(1).(uint64), args.Error(2)
}

func (m *MockWebinarRepository) Update(ctx context.Context, webinar *models.Webinar, revision uint64) error {
	args := m.Called(ctx, webinar, revision)
	return args.Error(0)
}

func (m *MockWebinarRepository) ListAll(ctx context.Context) ([]*models.Webinar, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Webinar), args.Error(1)
}
