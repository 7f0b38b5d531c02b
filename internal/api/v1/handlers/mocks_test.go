package handlers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"meeting-insights/internal/app/export"
	"meeting-insights/internal/app/insights"
	"meeting-insights/internal/app/model"
)

// MockServices contains all mock services for testing
type MockServices struct {
	InsightsService     *MockInsightsService
	ExportService       *MockExportService
	NotificationService *MockNotificationService
}

// NewMockServices creates a new instance of mock services
func NewMockServices(t *testing.T) *MockServices {
	return &MockServices{
		InsightsService:     NewMockInsightsService(t),
		ExportService:       NewMockExportService(t),
		NotificationService: NewMockNotificationService(t),
	}
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	mock.Mock
}

func NewMockInsightsService(t *testing.T) *MockInsightsService {
	m := &MockInsightsService{}
	m.Test(t)
	return m
}

func (m *MockInsightsService) Extract(ctx context.Context, req *insights.Request) (*model.ExtractionResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExtractionResult), args.Error(1)
}

// MockExportService is a mock implementation of ExportService
type MockExportService struct {
	mock.Mock
}

func NewMockExportService(t *testing.T) *MockExportService {
	m := &MockExportService{}
	m.Test(t)
	return m
}

func (m *MockExportService) Export(ctx context.Context, result *model.ExtractionResult, format export.Format) ([]byte, error) {
	args := m.Called(ctx, result, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockNotificationService is a mock implementation of NotificationService
type MockNotificationService struct {
	mock.Mock
}

func NewMockNotificationService(t *testing.T) *MockNotificationService {
	m := &MockNotificationService{}
	m.Test(t)
	return m
}

func (m *MockNotificationService) Email(ctx context.Context, result *model.ExtractionResult) error {
	return m.Called(ctx, result).Error(0)
}
