package flows

import "meeting-insights/internal/app/model"

// TranscriptInput is the shared input of the three extraction flows
type TranscriptInput struct {
	Transcript string `json:"transcript" validate:"required"`
}

// TranscribeInput carries the recording as a data URI
type TranscribeInput struct {
	AudioDataURI string `json:"audioDataUri" validate:"required"`
}

// Audio implements MediaInput
func (in TranscribeInput) Audio() (*model.AudioPayload, error) {
	return model.ParseDataURI(in.AudioDataURI)
}

type TranscribeOutput struct {
	Transcription string `json:"transcription"`
}

type SummarizeOutput struct {
	Summary string `json:"summary"`
}

type ObjectionsOutput struct {
	Objections []string `json:"objections"`
}

type ActionItemsOutput struct {
	ActionItems []string `json:"actionItems"`
}
