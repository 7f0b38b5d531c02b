package services

import (
	"context"

	"meeting-insights/internal/app/export"
	"meeting-insights/internal/app/insights"
	"meeting-insights/internal/app/model"
)

// InsightsService runs the extraction pipeline
type InsightsService interface {
	Extract(ctx context.Context, req *insights.Request) (*model.ExtractionResult, error)
}

// ExportService renders a result as a downloadable file
type ExportService interface {
	Export(ctx context.Context, result *model.ExtractionResult, format export.Format) ([]byte, error)
}

// NotificationService emails a result
type NotificationService interface {
	Email(ctx context.Context, result *model.ExtractionResult) error
}
