package services

import (
	"bytes"
	"context"

	"meeting-insights/internal/app/export"
	"meeting-insights/internal/app/model"
)

// ExportObserver counts produced files
type ExportObserver interface {
	ObserveExport(format string)
}

type exportService struct {
	observer ExportObserver
}

// NewExportService creates an export service. observer may be nil.
func NewExportService(observer ExportObserver) ExportService {
	return &exportService{observer: observer}
}

// Export buffers the whole file so a failure can still be reported as an error response
func (s *exportService) Export(ctx context.Context, result *model.ExtractionResult, format export.Format) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, result); err != nil {
		return nil, err
	}

	if s.observer != nil {
		s.observer.ObserveExport(string(format))
	}
	return buf.Bytes(), nil
}
