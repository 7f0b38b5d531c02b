package services

import (
	"context"

	"meeting-insights/internal/app/insights"
	"meeting-insights/internal/app/model"
)

// Processor is satisfied by *insights.Extractor
type Processor interface {
	Process(ctx context.Context, req *insights.Request) (*model.ExtractionResult, error)
}

type insightsService struct {
	processor Processor
}

// NewInsightsService creates an insights service backed by processor
func NewInsightsService(processor Processor) InsightsService {
	return &insightsService{processor: processor}
}

// Extract runs one extraction with the caller's context so a dropped client
// cancels the in-flight model calls.
func (s *insightsService) Extract(ctx context.Context, req *insights.Request) (*model.ExtractionResult, error) {
	return s.processor.Process(ctx, req)
}
