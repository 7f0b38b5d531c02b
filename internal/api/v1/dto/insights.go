package dto

import (
	"meeting-insights/internal/app/model"
)

// ExtractRequest is the JSON form of POST /api/v1/insights. Multipart requests carry
// the same transcript as a form field next to an optional "file" upload.
type ExtractRequest struct {
	Transcript   string `json:"transcript" form:"transcript"`
	AudioDataURI string `json:"audioDataUri,omitempty"`
}

// InsightsResponse is an extraction result as sent over the wire
type InsightsResponse struct {
	Summary     string   `json:"summary"`
	Objections  []string `json:"objections"`
	ActionItems []string `json:"actionItems"`
	Transcript  string   `json:"transcript"`
}

// InsightsPayload is a previously returned result posted back for export or email
type InsightsPayload struct {
	Summary     string   `json:"summary"`
	Objections  []string `json:"objections"`
	ActionItems []string `json:"actionItems"`
	Transcript  string   `json:"transcript" binding:"required"`
}

// NewInsightsResponse converts a model result
func NewInsightsResponse(result *model.ExtractionResult) *InsightsResponse {
	return &InsightsResponse{
		Summary:     result.Summary,
		Objections:  result.Objections,
		ActionItems: result.ActionItems,
		Transcript:  result.Transcript,
	}
}

// Result converts the payload to the model type
func (p *InsightsPayload) Result() *model.ExtractionResult {
	return model.NewExtractionResult(model.Transcript(p.Transcript), p.Summary, p.Objections, p.ActionItems)
}

// EmailResponse acknowledges a delivered email
type EmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
